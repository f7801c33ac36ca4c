// Package pipeline provides the generate → render pipeline for mazestroke.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: carve a maze (with retries), extract its walls, merge them
//     into polylines and solve it. The result is a serializable [Layout].
//  2. Render: turn a layout into artifacts (SVG, PNG, JSON, text, DOT and
//     the Graphviz passage tree).
//
// A generation failure, including MAZE_TOO_LARGE, ends the run before any
// artifact is produced.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Width:   40,
//	    Height:  20,
//	    Formats: []string{"svg", "txt"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazestroke/pkg/cache"
	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/maze"
	"github.com/matzehuels/mazestroke/pkg/random"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultWidth is the default maze width in cells.
	DefaultWidth = 40

	// DefaultHeight is the default maze height in cells.
	DefaultHeight = 20

	// DefaultCellSize is the default side of one cell in pixels.
	DefaultCellSize = 15

	// DefaultAttempts is the default number of generation attempts.
	DefaultAttempts = maze.DefaultAttempts
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "txt"
	FormatDOT  = "dot"
	FormatTree = "tree"
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatJSON, FormatText, FormatDOT, FormatTree}

// Extension returns the file extension used when writing format.
func Extension(format string) string {
	switch format {
	case FormatTree:
		return "tree.svg"
	case FormatDOT:
		return "dot"
	}
	return format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Generate options
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Attempts *int   `json:"attempts,omitempty"` // nil selects DefaultAttempts
	MaxDepth int    `json:"max_depth,omitempty"`
	Seed     uint64 `json:"seed,omitempty"` // 0 draws a fresh seed
	Refresh  bool   `json:"refresh,omitempty"`

	// Render options
	CellSize int      `json:"cell_size,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Solution bool     `json:"solution,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// randomSeed records that Seed was drawn here rather than chosen by the
	// caller. Such runs are never cached.
	randomSeed bool
	validated  bool
}

// AttemptsOf returns a pointer to n for [Options.Attempts].
func AttemptsOf(n int) *int { return &n }

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the generated maze.
	Layout Layout

	// LayoutHash is the content hash of the serialized layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Attempts     int
	Segments     int
	Polylines    int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks and defaults every option for a full run.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults fills in generation defaults, drawing a seed if none
// was given.
func (o *Options) SetGenerateDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Attempts == nil {
		o.Attempts = AttemptsOf(DefaultAttempts)
	}
	if o.Seed == 0 {
		o.Seed = random.NewSeed()
		o.randomSeed = true
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForGenerate validates and sets defaults for generation.
//
// Zero width or height selects the default; negative values fail with
// INVALID_DIMENSIONS.
func (o *Options) ValidateForGenerate() error {
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "width must be at least 1, got %d", o.Width)
	}
	if o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "height must be at least 1, got %d", o.Height)
	}
	o.SetGenerateDefaults()
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateAttempts(*o.Attempts); err != nil {
		return err
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max depth cannot be negative, got %d", o.MaxDepth)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := errors.ValidateCellSize(o.CellSize); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// Cacheable reports whether results of these options may be cached: only
// runs with a caller-chosen seed are reproducible.
func (o *Options) Cacheable() bool {
	return o.Seed != 0 && !o.randomSeed
}

// MazeKeyOpts returns cache key options for generation.
func (o *Options) MazeKeyOpts() cache.MazeKeyOpts {
	opts := cache.MazeKeyOpts{
		Width:    o.Width,
		Height:   o.Height,
		Seed:     o.Seed,
		MaxDepth: o.MaxDepth,
	}
	if o.Attempts != nil {
		opts.Attempts = *o.Attempts
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		CellSize: o.CellSize,
		Solution: o.Solution,
	}
}
