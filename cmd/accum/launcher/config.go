// This file maps the config file and CLI context to the launcher config.

package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/rony4d/go-accumulator/bench"
)

// StoreAll selects every backing store, run one after another.
const StoreAll = "all"

// Config aggregates everything the launcher needs for a run.
type Config struct {
	Bench   bench.Config  `yaml:"bench"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics bool          `yaml:"metrics"`
}

type LoggingConfig struct {
	Verbosity int    `yaml:"verbosity"`
	Format    string `yaml:"format"`
	Color     bool   `yaml:"color"`
	SentryDSN string `yaml:"sentry"`
}

// Stores returns the store names the run covers.
func (c Config) Stores() []string {
	if c.Bench.Store == StoreAll {
		return bench.StoreNames
	}
	return []string{c.Bench.Store}
}

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Bench: bench.Config{
			Store:      d.Bench.Store,
			Frames:     d.Bench.Frames,
			MaxPayload: d.Bench.MaxPayload,
			MinRead:    d.Bench.MinRead,
			MaxRead:    d.Bench.MaxRead,
			Seed:       d.Bench.Seed,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
		Metrics: d.Metrics.Enable,
	}
}

// MakeAllConfigs merges defaults, the optional config file and CLI flag
// overrides, in that order, into a single config.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.String("config"); file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := cfg.Bench.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Bench.Store != StoreAll && !slices.Contains(bench.StoreNames, cfg.Bench.Store) {
		return cfg, fmt.Errorf("%w %q, want %s or %s", bench.ErrUnknownStore, cfg.Bench.Store,
			strings.Join(bench.StoreNames, ", "), StoreAll)
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("store") {
		cfg.Bench.Store = ctx.String("store")
	}
	if ctx.IsSet("frames") {
		cfg.Bench.Frames = ctx.Int("frames")
	}
	if ctx.IsSet("payload.max") {
		cfg.Bench.MaxPayload = ctx.Int("payload.max")
	}
	if ctx.IsSet("read.min") {
		cfg.Bench.MinRead = ctx.Int("read.min")
	}
	if ctx.IsSet("read.max") {
		cfg.Bench.MaxRead = ctx.Int("read.max")
	}
	if ctx.IsSet("seed") {
		cfg.Bench.Seed = ctx.Int64("seed")
	}

	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}
	if ctx.IsSet("log.sentry") {
		cfg.Logging.SentryDSN = ctx.String("log.sentry")
	}
	if ctx.IsSet("metrics") {
		cfg.Metrics = ctx.Bool("metrics")
	}
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
