// Package render maps merged wall polylines onto a drawing surface.
//
// # Frame
//
// A [Frame] fixes the scale and placement of a maze. Lattice point (x, y)
// lands at Origin + (x, y)·CellSize, where the origin centers the maze on a
// canvas whose y axis grows upward:
//
//	origin = (⌊-(W·CellSize)/2⌋, ⌊-(H·CellSize)/2⌋)
//
// Raster sinks flip this into top-left pixel coordinates with
// [Frame.Raster].
//
// # Pen contract
//
// [Draw] walks the polylines in order with a pen-based [Canvas]: the pen is
// lifted before each polyline, moved to its first point, lowered, and then
// moved through the remaining points. A sink only has to turn those calls
// into its own path primitives.
//
// Output formats live in [sink]; the passage-tree diagram lives in
// [nodelink].
//
// [sink]: github.com/matzehuels/mazestroke/pkg/render/sink
// [nodelink]: github.com/matzehuels/mazestroke/pkg/render/nodelink
package render
