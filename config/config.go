package config

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bolder-engine/bolder/graphics"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

type Config struct {
	Log      LogConfig      `toml:"log"`
	Graphics GraphicsConfig `toml:"graphics"`
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn or error
	Format string `toml:"format"` // "text" or "json"
}

type GraphicsConfig struct {
	Synchronized         bool `toml:"synchronized"`
	IndexBufferCapacity  int  `toml:"index_buffer_capacity"`
	VertexBufferCapacity int  `toml:"vertex_buffer_capacity"`
	TextureCapacity      int  `toml:"texture_capacity"`
}

// Default returns the configuration used for any key a config file leaves out
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Graphics: GraphicsConfig{
			IndexBufferCapacity:  graphics.DefaultCapacity,
			VertexBufferCapacity: graphics.DefaultCapacity,
			TextureCapacity:      graphics.DefaultCapacity,
		},
	}
}

// Load reads a TOML config file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Parse decodes a TOML document on top of Default. Keys that do not belong to Config are an error.
func Parse(data string) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return Config{}, errors.Newf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	_, err := c.Log.SlogLevel()
	if err != nil {
		return err
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.Newf("log format must be \"text\" or \"json\", but was %q", c.Log.Format)
	}

	return c.Graphics.Validate()
}

func (g GraphicsConfig) Validate() error {
	capacities := []struct {
		name  string
		value int
	}{
		{"index_buffer_capacity", g.IndexBufferCapacity},
		{"vertex_buffer_capacity", g.VertexBufferCapacity},
		{"texture_capacity", g.TextureCapacity},
	}

	for _, capacity := range capacities {
		if capacity.value <= 0 || capacity.value > graphics.DefaultCapacity {
			return errors.Newf("graphics.%s must be between 1 and %d, but was %d", capacity.name, graphics.DefaultCapacity, capacity.value)
		}
	}

	return nil
}

// ContextOptions returns the options to create a graphics.Context with
func (g GraphicsConfig) ContextOptions() graphics.ContextCreateOptions {
	options := graphics.ContextCreateOptions{
		IndexBufferCapacity:  g.IndexBufferCapacity,
		VertexBufferCapacity: g.VertexBufferCapacity,
		TextureCapacity:      g.TextureCapacity,
	}

	if g.Synchronized {
		options.Flags |= graphics.ContextCreateSynchronized
	}

	return options
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, errors.Newf("unknown log level %q", l.Level)
}

// NewLogger creates a logger that writes to w at the configured level and format
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}

	options := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, options)), nil
	}

	return slog.New(slog.NewTextHandler(w, options)), nil
}
