// Package maze carves perfect mazes: spanning trees over a rectangular grid
// of cells.
//
// # Generation
//
// [Generate] runs a randomized recursive backtracker. It picks a uniformly
// random start cell, shuffles the four directions at every cell, and carves
// into each in-bounds neighbor that has no open side yet before trying the
// next direction. The traversal is kept on an explicit stack of frames, so a
// snake-shaped tree W·H cells deep never touches the goroutine stack.
//
// The resulting trees are depth-first "growing tree" shapes; they are not
// drawn uniformly from all spanning trees of the grid.
//
// # Retries
//
// [WithMaxDepth] caps the frame stack to emulate an environment with a
// limited recursion depth. An attempt that hits the cap fails with
// DEPTH_EXCEEDED. [GenerateWithRetry] restarts from scratch up to a fixed
// number of attempts and reports MAZE_TOO_LARGE once they are exhausted.
//
// # Validation
//
// [Grid.Validate] checks the two grid invariants: every open side is
// mirrored by the neighbor, and the open relation is a spanning tree.
package maze
