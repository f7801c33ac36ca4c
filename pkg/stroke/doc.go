// Package stroke joins unit wall segments into polylines that a pen-based
// renderer can draw with few pen lifts.
//
// [Merge] starts from one two-point chain per segment and repeatedly sweeps
// the chains, gluing each onto the first earlier chain that shares an end
// point. Sweeps stop once one of them merges nothing. The result is sorted
// by point count, longest first, keeping sweep order among equals.
//
// Where three or four walls meet at one corner, only one of the incoming
// chains can continue through it. The chain that wins is the first one in
// sweep order; no attempt is made to minimise the total number of strokes.
package stroke
