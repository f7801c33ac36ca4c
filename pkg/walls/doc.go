// Package walls turns a carved [maze.Grid] into the unit wall segments that
// remain standing on its lattice.
//
// The lattice of a W×H grid has corners (x, y) with 0 ≤ x ≤ W and
// 0 ≤ y ≤ H. Row r of the grid spans y = r to y = r+1 and column c spans
// x = c to x = c+1, so the north side of cell (c, r) runs from (c, r) to
// (c+1, r).
//
// Every closed side becomes a [Segment]. Sides shared by two cells are
// stored once because segments are kept in canonical form. The entrance on
// the west border and the exit on the east border, both at row H/2, are
// removed so the maze can be walked through.
package walls
