package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mazestroke/pkg/errors"
)

// fileConfig is the on-disk form of the generate defaults. Unset keys leave
// the flag defaults alone.
type fileConfig struct {
	Width    *int     `toml:"width" yaml:"width"`
	Height   *int     `toml:"height" yaml:"height"`
	Cell     *int     `toml:"cell" yaml:"cell"`
	Attempts *int     `toml:"attempts" yaml:"attempts"`
	MaxDepth *int     `toml:"max_depth" yaml:"max_depth"`
	Seed     *uint64  `toml:"seed" yaml:"seed"`
	Formats  []string `toml:"formats" yaml:"formats"`
	Output   *string  `toml:"output" yaml:"output"`
	Solution *bool    `toml:"solution" yaml:"solution"`
	Close    *bool    `toml:"close" yaml:"close"`
	Preview  *bool    `toml:"preview" yaml:"preview"`
}

// loadConfig reads the config file at path. An empty path selects
// config.toml in the config directory, which may be absent; a path given
// explicitly must exist.
func loadConfig(path string) (fileConfig, string, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return fileConfig{}, "", nil
		}
		path = filepath.Join(dir, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return fileConfig{}, "", nil
		}
		if os.IsNotExist(err) {
			return fileConfig{}, "", errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return fileConfig{}, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg, err := decodeConfig(path, data)
	if err != nil {
		return fileConfig{}, "", err
	}
	return cfg, path, nil
}

// decodeConfig parses data as TOML or YAML depending on the extension of
// path. Unknown keys are rejected.
func decodeConfig(path string, data []byte) (fileConfig, error) {
	var cfg fileConfig

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return fileConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fileConfig{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return fileConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return fileConfig{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	return cfg, nil
}

// apply copies the configured values into opts for every flag the user did
// not set on the command line.
func (cfg fileConfig) apply(flags *pflag.FlagSet, opts *generateOpts) {
	set := func(name string) bool { return !flags.Changed(name) }
	sizeGiven := flags.Changed("size")

	if cfg.Width != nil && set("width") && !sizeGiven {
		opts.width = *cfg.Width
	}
	if cfg.Height != nil && set("height") && !sizeGiven {
		opts.height = *cfg.Height
	}
	if cfg.Cell != nil && set("cell") {
		opts.cellSize = *cfg.Cell
	}
	if cfg.Attempts != nil && set("attempts") {
		opts.attempts = *cfg.Attempts
	}
	if cfg.MaxDepth != nil && set("max-depth") {
		opts.maxDepth = *cfg.MaxDepth
	}
	if cfg.Seed != nil && set("seed") {
		opts.seed = *cfg.Seed
	}
	if len(cfg.Formats) > 0 && set("format") {
		opts.formats = slices.Clone(cfg.Formats)
	}
	if cfg.Output != nil && set("output") {
		opts.output = *cfg.Output
	}
	if cfg.Solution != nil && set("solution") {
		opts.solution = *cfg.Solution
	}
	if cfg.Close != nil && set("close") {
		opts.close = *cfg.Close
	}
	if cfg.Preview != nil && set("no-preview") {
		opts.noPreview = !*cfg.Preview
	}
}
