// Package pkg provides the core libraries for mazestroke.
//
// # Overview
//
// Mazestroke carves random perfect mazes and draws them the way a pen
// plotter or turtle would: the wall segments are merged into as few
// polylines as possible so each one is drawn in a single stroke. The pkg
// directory is organized into these areas:
//
//  1. [maze] - Grid model and recursive-backtracker generation with retries
//  2. [walls] - Wall segment extraction, entrance/exit openings and solving
//  3. [stroke] - Fixed-point merging of segments into polylines
//  4. [render] - Drawing frame, pen canvas and output sinks
//  5. [pipeline] - Orchestration (generate → render) with caching
//
// # Architecture
//
// The data flow through mazestroke:
//
//	seed
//	  ↓
//	[maze] package (carve a spanning tree of the grid)
//	  ↓
//	[walls] package (closed cell sides minus entrance and exit)
//	  ↓
//	[stroke] package (merge into polylines, longest first)
//	  ↓
//	[render/sink] package (SVG/PNG/JSON/text) and [render/nodelink] (DOT)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/mazestroke/pkg/maze"
//	    "github.com/matzehuels/mazestroke/pkg/random"
//	    "github.com/matzehuels/mazestroke/pkg/render"
//	    "github.com/matzehuels/mazestroke/pkg/render/sink"
//	    "github.com/matzehuels/mazestroke/pkg/stroke"
//	    "github.com/matzehuels/mazestroke/pkg/walls"
//	)
//
//	// 1. Carve a maze
//	g, _, _ := maze.GenerateWithRetry(ctx, 40, 20, maze.DefaultAttempts, random.New(42))
//
//	// 2. Extract and merge the walls
//	segs, _ := walls.Extract(g)
//	lines := stroke.Merge(segs)
//
//	// 3. Draw
//	svg := sink.RenderSVG(render.NewFrame(40, 20, 15), lines)
//
// # Supporting Packages
//
// [random] - Injectable randomness so every maze is reproducible from a seed.
//
// [errors] - Structured error codes (INVALID_DIMENSIONS, MAZE_TOO_LARGE, ...).
//
// [cache] - File and null caches for layouts and rendered artifacts.
//
// [observability] - Hooks for generation, merge, render and cache events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/maze/...      # Specific package
//	go test -run Example ./...  # Examples only
//
// [maze]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/maze
// [walls]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/walls
// [stroke]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/stroke
// [render]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/pipeline
// [random]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/random
// [errors]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mazestroke/pkg/buildinfo
package pkg
