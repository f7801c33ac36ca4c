package pipeline

import (
	"testing"

	"github.com/matzehuels/mazestroke/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"txt", false},
		{"dot", false},
		{"tree", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		FormatSVG:  "svg",
		FormatText: "txt",
		FormatDOT:  "dot",
		FormatTree: "tree.svg",
	}
	for format, want := range tests {
		if got := Extension(format); got != want {
			t.Errorf("Extension(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.CellSize != DefaultCellSize {
		t.Errorf("CellSize = %d, want %d", opts.CellSize, DefaultCellSize)
	}
	if opts.Attempts == nil || *opts.Attempts != DefaultAttempts {
		t.Errorf("Attempts = %v, want %d", opts.Attempts, DefaultAttempts)
	}
	if opts.Seed == 0 {
		t.Error("Seed should be drawn when unset")
	}
	if opts.Cacheable() {
		t.Error("drawn seeds must not be cacheable")
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	seed := opts.Seed
	if err := opts.ValidateAndSetDefaults(); err != nil || opts.Seed != seed {
		t.Errorf("second call changed seed or failed: %v", err)
	}
}

func TestOptionsExplicitValues(t *testing.T) {
	opts := Options{Seed: 7, Attempts: AttemptsOf(0)}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if *opts.Attempts != 0 {
		t.Errorf("explicit zero attempts replaced by %d", *opts.Attempts)
	}
	if !opts.Cacheable() {
		t.Error("caller seed should be cacheable")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidDimensions},
		{"negative height", Options{Height: -4}, errors.ErrCodeInvalidDimensions},
		{"negative attempts", Options{Attempts: AttemptsOf(-1)}, errors.ErrCodeInvalidInput},
		{"negative max depth", Options{MaxDepth: -1}, errors.ErrCodeInvalidInput},
		{"negative cell size", Options{CellSize: -2}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestKeyOpts(t *testing.T) {
	opts := Options{Width: 3, Height: 4, Seed: 9, Attempts: AttemptsOf(5), MaxDepth: 2, CellSize: 10, Solution: true}
	mk := opts.MazeKeyOpts()
	if mk.Width != 3 || mk.Height != 4 || mk.Seed != 9 || mk.Attempts != 5 || mk.MaxDepth != 2 {
		t.Errorf("MazeKeyOpts() = %+v", mk)
	}
	ak := opts.ArtifactKeyOpts("png")
	if ak.Format != "png" || ak.CellSize != 10 || !ak.Solution {
		t.Errorf("ArtifactKeyOpts() = %+v", ak)
	}
}
