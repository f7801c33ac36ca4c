package maze

import (
	"context"

	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/random"
)

// DefaultAttempts is the number of generation attempts made before giving up.
const DefaultAttempts = 10

// GenerateWithRetry calls [Generate] until an attempt succeeds or attempts
// have been used up.
//
// Invalid dimensions are reported immediately without any attempt. Attempts
// that fail with DEPTH_EXCEEDED are retried from scratch with fresh random
// draws; any other error is returned as is. When every attempt fails (or
// attempts is zero) the error has code MAZE_TOO_LARGE and wraps the last
// depth failure.
//
// The returned count is the number of attempts consumed, including the
// successful one.
func GenerateWithRetry(ctx context.Context, width, height, attempts int, rng random.Source, opts ...Option) (*Grid, int, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return nil, 0, err
	}
	if err := errors.ValidateAttempts(attempts); err != nil {
		return nil, 0, err
	}
	o := buildOptions(opts)

	var last error
	for i := 1; i <= attempts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, i - 1, err
		}
		g, err := Generate(width, height, rng, opts...)
		if err == nil {
			return g, i, nil
		}
		if !errors.Is(err, errors.ErrCodeDepthExceeded) {
			return nil, i, err
		}
		last = err
		if o.onFailedRetry != nil {
			o.onFailedRetry(i, err)
		}
	}

	return nil, attempts, errors.Wrap(errors.ErrCodeMazeTooLarge, last,
		"the %dx%d maze could not be created in %d attempts; reduce the size or increase the number of attempts",
		width, height, attempts)
}
