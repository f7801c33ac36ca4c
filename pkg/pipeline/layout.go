package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/maze"
	"github.com/matzehuels/mazestroke/pkg/observability"
	"github.com/matzehuels/mazestroke/pkg/random"
	"github.com/matzehuels/mazestroke/pkg/stroke"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// LayoutVersion is bumped whenever the serialized layout changes shape.
const LayoutVersion = 1

// Layout is the renderer-independent result of generating one maze.
type Layout struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Seed      uint64            `json:"seed"`
	Attempts  int               `json:"attempts"`
	Segments  int               `json:"segments"`
	Polylines []stroke.Polyline `json:"polylines"`
	Passages  []maze.Edge       `json:"passages"`
	Solution  []walls.Cell      `json:"solution,omitempty"`
}

// Grid rebuilds the carved grid from the stored passages.
func (l Layout) Grid() *maze.Grid {
	g := maze.NewGrid(l.Width, l.Height)
	for _, e := range l.Passages {
		g.Connect(e.C, e.R, e.Dir)
	}
	return g
}

// MarshalLayout serializes a layout to JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLayout parses a layout written by [MarshalLayout].
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout")
	}
	if l.Version != LayoutVersion {
		return Layout{}, errors.New(errors.ErrCodeUnsupported, "layout version %d, want %d", l.Version, LayoutVersion)
	}
	if err := errors.ValidateDimensions(l.Width, l.Height); err != nil {
		return Layout{}, err
	}
	g := maze.NewGrid(l.Width, l.Height)
	for _, e := range l.Passages {
		if (e.Dir != maze.East && e.Dir != maze.South) || !g.Connect(e.C, e.R, e.Dir) {
			return Layout{}, errors.New(errors.ErrCodeInvalidInput,
				"passage %s of (%d,%d) does not fit a %dx%d grid", e.Dir, e.C, e.R, l.Width, l.Height)
		}
	}
	return l, nil
}

// Generate carves, extracts, merges and solves one maze. opts must have been
// through [Options.ValidateForGenerate].
func Generate(ctx context.Context, opts Options) (Layout, error) {
	hooks := observability.Pipeline()
	logger := opts.Logger
	start := time.Now()
	hooks.OnGenerateStart(ctx, opts.Width, opts.Height)

	rng := random.New(opts.Seed)
	g, used, err := maze.GenerateWithRetry(ctx, opts.Width, opts.Height, *opts.Attempts, rng,
		maze.WithMaxDepth(opts.MaxDepth),
		maze.WithAttemptFailed(func(attempt int, err error) {
			logger.Debug("generation attempt failed", "attempt", attempt, "err", err)
			hooks.OnAttemptFailed(ctx, attempt, err)
		}))
	if err != nil {
		hooks.OnGenerateComplete(ctx, opts.Width, opts.Height, used, time.Since(start), err)
		return Layout{}, err
	}

	segs, err := walls.Extract(g)
	if err != nil {
		hooks.OnGenerateComplete(ctx, opts.Width, opts.Height, used, time.Since(start), err)
		return Layout{}, err
	}

	mergeStart := time.Now()
	lines := stroke.Merge(segs)
	hooks.OnMerge(ctx, len(segs), len(lines), time.Since(mergeStart))
	logger.Debug("merged walls", "segments", len(segs), "polylines", len(lines), "pen_moves", stroke.Points(lines))

	path, err := walls.Solve(opts.Width, opts.Height, segs)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeInternal, err, "generated maze is not solvable")
		hooks.OnGenerateComplete(ctx, opts.Width, opts.Height, used, time.Since(start), err)
		return Layout{}, err
	}

	hooks.OnGenerateComplete(ctx, opts.Width, opts.Height, used, time.Since(start), nil)
	return Layout{
		Version:   LayoutVersion,
		Width:     opts.Width,
		Height:    opts.Height,
		Seed:      opts.Seed,
		Attempts:  used,
		Segments:  len(segs),
		Polylines: lines,
		Passages:  g.Edges(),
		Solution:  path,
	}, nil
}
