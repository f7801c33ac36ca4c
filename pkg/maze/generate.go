package maze

import (
	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/random"
)

// Option configures generation.
type Option func(*options)

type options struct {
	maxDepth      int
	onFailedRetry func(attempt int, err error)
}

// WithMaxDepth fails an attempt with DEPTH_EXCEEDED once more than n frames
// are live on the carving stack. Zero or a negative n means no limit.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithAttemptFailed registers a callback invoked by [GenerateWithRetry] after
// every failed attempt. attempt is 1-based.
func WithAttemptFailed(fn func(attempt int, err error)) Option {
	return func(o *options) { o.onFailedRetry = fn }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Generate carves a perfect maze of the given size.
//
// The start cell is drawn as rng.IntN(width) then rng.IntN(height). Each cell
// entered consumes one rng.Shuffle over [Directions].
func Generate(width, height int, rng random.Source, opts ...Option) (*Grid, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	g := NewGrid(width, height)
	c0 := rng.IntN(width)
	r0 := rng.IntN(height)
	if err := g.carve(c0, r0, rng, o.maxDepth); err != nil {
		return nil, err
	}
	return g, nil
}

// frame is one level of the carving stack: the cell being explored, its
// direction order and how far through that order it has got.
type frame struct {
	c, r int
	dirs [4]Direction
	next int
}

func newFrame(c, r int, rng random.Source) frame {
	f := frame{c: c, r: r, dirs: Directions}
	rng.Shuffle(len(f.dirs), func(i, j int) { f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i] })
	return f
}

func (g *Grid) carve(c0, r0 int, rng random.Source, maxDepth int) error {
	stack := make([]frame, 0, min(g.Width*g.Height, 1024))
	stack = append(stack, newFrame(c0, r0, rng))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		nc, nr, ok := g.Neighbor(top.c, top.r, d)
		if !ok || g.At(nc, nr).Visited() {
			continue
		}
		g.Connect(top.c, top.r, d)

		if maxDepth > 0 && len(stack) >= maxDepth {
			return errors.New(errors.ErrCodeDepthExceeded,
				"carving stack exceeded %d frames", maxDepth)
		}
		stack = append(stack, newFrame(nc, nr, rng))
	}
	return nil
}
