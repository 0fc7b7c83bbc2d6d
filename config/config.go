// Package config loads the YAML configuration shared by the waypoint CLI and
// HTTP server. Library packages never read it; they take functional options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/waypoint/route"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultAlgorithm       = "dijkstra"
	DefaultInterval        = 250 * time.Millisecond
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = FormatText
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxInterval     = 5 * time.Second
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SearchConfig holds driver defaults.
type SearchConfig struct {
	Algorithm string        `yaml:"algorithm"`
	Interval  time.Duration `yaml:"interval"`  // pause between steps when animating
	MaxSteps  int           `yaml:"max_steps"` // 0 = unlimited
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// MaxInterval caps the per-step delay a stream client may request.
	MaxInterval time.Duration `yaml:"max_interval"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Search: SearchConfig{
			Algorithm: DefaultAlgorithm,
			Interval:  DefaultInterval,
		},
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxInterval:     DefaultMaxInterval,
		},
	}
}

// Load reads path over Default and validates the result. Unknown keys are
// rejected. An empty file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}

	return buf.Bytes(), nil
}

// Validate reports the first invalid field as ErrInvalidConfig.
func (c Config) Validate() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (want %s or %s)", ErrInvalidConfig, c.Log.Format, FormatText, FormatJSON)
	}

	if _, err := route.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: search.algorithm: %w", ErrInvalidConfig, err)
	}
	if c.Search.Interval < 0 {
		return fmt.Errorf("%w: search.interval must be >= 0 (%s)", ErrInvalidConfig, c.Search.Interval)
	}
	if c.Search.MaxSteps < 0 {
		return fmt.Errorf("%w: search.max_steps must be >= 0 (%d)", ErrInvalidConfig, c.Search.MaxSteps)
	}

	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must be >= 0 (%s)", ErrInvalidConfig, c.Server.ShutdownTimeout)
	}
	if c.Server.MaxInterval < 0 {
		return fmt.Errorf("%w: server.max_interval must be >= 0 (%s)", ErrInvalidConfig, c.Server.MaxInterval)
	}

	return nil
}

// ParsedAlgorithm returns the configured algorithm, Dijkstra when it does
// not parse. Call after Validate.
func (c SearchConfig) ParsedAlgorithm() route.Algorithm {
	a, err := route.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return route.Dijkstra
	}

	return a
}
