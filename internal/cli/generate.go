package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/pipeline"
	"github.com/matzehuels/mazestroke/pkg/render"
	"github.com/matzehuels/mazestroke/pkg/render/sink"
)

const (
	// defaultOutput is the base path of written files; the format extension
	// is appended.
	defaultOutput = "maze"

	// mazeTooLargeMessage is shown when every generation attempt failed.
	mazeTooLargeMessage = "Sorry, the maze you tried to create was too big. " +
		"You can try again, changing the size to smaller or the number of attempts to larger."
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	size      string   // "W,H" shorthand for width and height
	width     int      // maze width in cells
	height    int      // maze height in cells
	cellSize  int      // pixels per cell
	attempts  int      // generation attempts before giving up
	maxDepth  int      // carving stack limit per attempt (0 = unlimited)
	seed      uint64   // random seed (0 = random)
	close     bool     // exit right after drawing instead of waiting for enter
	output    string   // output base path
	formats   []string // output formats
	solution  bool     // draw the entrance-to-exit path
	noCache   bool     // disable the layout cache
	refresh   bool     // regenerate even when cached
	noPreview bool     // never show the terminal preview
	config    string   // config file path
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		width:    pipeline.DefaultWidth,
		height:   pipeline.DefaultHeight,
		cellSize: pipeline.DefaultCellSize,
		attempts: pipeline.DefaultAttempts,
		output:   defaultOutput,
	}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a random maze and draw it",
		Long: `Generate a random perfect maze and draw its walls as merged pen strokes.

The entrance is on the west border and the exit on the east border, both in
the middle row. Files are written as <output>.<format>.`,
		Example: `  mazestroke generate --size 30,15
  mazestroke gen -s 80,40 --attempts 20 -f svg,png
  mazestroke gen --seed 42 --solution -f txt --close`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)

			cfg, cfgPath, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			cfg.apply(cmd.Flags(), &opts)
			if cfgPath != "" {
				c.Logger.Debug("loaded config", "path", cfgPath)
			}

			if opts.size != "" {
				w, h, err := parseSize(opts.size)
				if err != nil {
					return err
				}
				opts.width, opts.height = w, h
			}
			if err := opts.validate(); err != nil {
				return err
			}

			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.size, "size", "s", "", "maze size as W,H in cells")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "maze width in cells")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "maze height in cells")
	cmd.Flags().IntVarP(&opts.cellSize, "cell", "c", opts.cellSize, "cell size in pixels")
	cmd.Flags().IntVar(&opts.attempts, "attempts", opts.attempts, "generation attempts before giving up")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "carving depth limit per attempt (0 = unlimited)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible maze (0 = random)")
	cmd.Flags().BoolVar(&opts.close, "close", false, "exit right after drawing instead of waiting for enter")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path (extension is added per format)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, txt, dot, tree (comma-separated)")
	cmd.Flags().BoolVar(&opts.solution, "solution", false, "draw the path from entrance to exit")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even when cached")
	cmd.Flags().BoolVar(&opts.noPreview, "no-preview", false, "do not show the maze in the terminal")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (.toml, .yaml) (default $XDG_CONFIG_HOME/mazestroke/config.toml)")

	cmd.MarkFlagsMutuallyExclusive("size", "width")
	cmd.MarkFlagsMutuallyExclusive("size", "height")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// validate checks the flag values that the pipeline would otherwise replace
// with defaults.
func (o *generateOpts) validate() error {
	if err := errors.ValidateDimensions(o.width, o.height); err != nil {
		return err
	}
	if err := errors.ValidateCellSize(o.cellSize); err != nil {
		return err
	}
	if err := errors.ValidateAttempts(o.attempts); err != nil {
		return err
	}
	if err := errors.ValidatePath(o.output); err != nil {
		return err
	}
	return pipeline.ValidateFormats(o.formats)
}

// pipelineOptions converts the flags into pipeline options.
func (o *generateOpts) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Width:    o.width,
		Height:   o.height,
		Attempts: pipeline.AttemptsOf(o.attempts),
		MaxDepth: o.maxDepth,
		Seed:     o.seed,
		Refresh:  o.refresh,
		CellSize: o.cellSize,
		Formats:  o.formats,
		Solution: o.solution,
	}
}

// runGenerate executes the pipeline, writes one file per format and shows
// the preview.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	ctx = withLogger(ctx, c.Logger)
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)

	var spinner *Spinner
	if isatty.IsTerminal(os.Stderr.Fd()) {
		spinner = newSpinner(ctx, os.Stderr, fmt.Sprintf("Carving %dx%d maze...", opts.width, opts.height))
		spinner.Start()
	}
	result, err := runner.Execute(ctx, opts.pipelineOptions())
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if errors.Is(err, errors.ErrCodeMazeTooLarge) {
			return errors.Wrap(errors.ErrCodeMazeTooLarge, err, mazeTooLargeMessage)
		}
		return err
	}

	paths, err := writeArtifacts(opts.output, opts.formats, result.Artifacts)
	if err != nil {
		return err
	}

	l := result.Layout
	printSuccess("Generated %dx%d maze", l.Width, l.Height)
	printStats(result.Stats, result.CacheInfo.LayoutHit)
	printKeyValue("seed", strconv.FormatUint(l.Seed, 10))
	for _, p := range paths {
		printFile(p)
	}
	prog.done("wrote outputs", "files", len(paths))

	if opts.noPreview || !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil
	}
	f := render.NewFrame(l.Width, l.Height, opts.cellSize)
	var textOpts []sink.TextOption
	if opts.solution {
		textOpts = append(textOpts, sink.WithTextSolution(l.Solution))
	}
	text := string(sink.RenderText(f, l.Polylines, textOpts...))
	return c.showPreview(ctx, text, opts.close)
}

// writeArtifacts writes each rendered format to base.<extension> in format
// order and returns the written paths.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return paths, errors.New(errors.ErrCodeInternal, "no %s output was rendered", format)
		}
		path := base + "." + pipeline.Extension(format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// parseSize parses "W,H" (or "WxH") into a width and height.
func parseSize(s string) (int, int, error) {
	sep := ","
	if !strings.Contains(s, sep) {
		sep = "x"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidDimensions, "invalid size %q (want W,H)", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidDimensions, "invalid width in size %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidDimensions, "invalid height in size %q", s)
	}
	return w, h, nil
}
