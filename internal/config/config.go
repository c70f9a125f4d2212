// Package config loads the fsnav settings.
//
// Sources, lowest precedence first: built-in defaults, the YAML file,
// FSNAV_* environment variables. Command-line flags are applied on top by
// the cmd layer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/fsnav/internal/logging"
)

// EnvPrefix prefixes the environment variable of every key, e.g. FSNAV_LOG_LEVEL.
const EnvPrefix = "FSNAV_"

// Config is the effective configuration of a session.
type Config struct {
	Root               string   `yaml:"root" mapstructure:"root"`
	LogLevel           string   `yaml:"log_level" mapstructure:"log_level"`
	Banner             bool     `yaml:"banner" mapstructure:"banner"`
	Render             bool     `yaml:"render" mapstructure:"render"`
	JSON               bool     `yaml:"json" mapstructure:"json"`
	Prompt             string   `yaml:"prompt" mapstructure:"prompt"`
	Farewell           string   `yaml:"farewell" mapstructure:"farewell"`
	ExcludedExtensions []string `yaml:"excluded_extensions" mapstructure:"excluded_extensions"`
	MaxInputSize       int      `yaml:"max_input_size" mapstructure:"max_input_size"`
	MetricsFile        string   `yaml:"metrics_file,omitempty" mapstructure:"metrics_file"`
}

// Keys lists the recognized configuration keys.
var Keys = []string{
	"root", "log_level", "banner", "render", "json", "prompt", "farewell",
	"excluded_extensions", "max_input_size", "metrics_file",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Root:               ".",
		LogLevel:           "warn",
		Banner:             true,
		Prompt:             "fsnav:{path}> ",
		Farewell:           "Exiting...",
		ExcludedExtensions: []string{".mp3", ".mp4"},
		MaxInputSize:       4096,
	}
}

// DefaultPath is the config file used when none is given.
// It returns "" when the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fsnav", "config.yaml")
}

// Load builds the configuration from defaults, the file at path and the
// environment. A missing file is only an error when explicit is set.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if path == "" && !explicit {
		path = DefaultPath()
	}
	if path != "" {
		raw, err := readFile(path, explicit)
		if err != nil {
			return cfg, err
		}
		if err := decode(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	if err := decode(fromEnv(os.Environ()), &cfg); err != nil {
		return cfg, fmt.Errorf("invalid environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readFile(path string, explicit bool) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return raw, nil
}

// fromEnv collects FSNAV_* variables whose suffix names a known key.
// Empty values are ignored.
func fromEnv(environ []string) map[string]any {
	raw := make(map[string]any)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		for _, known := range Keys {
			if key == known {
				raw[key] = value
				break
			}
		}
	}
	return raw
}

// decode overlays raw onto cfg. Fields absent from raw keep their value;
// lists are replaced, not merged.
func decode(raw map[string]any, cfg *Config) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			trimSliceHook,
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// trimSliceHook drops blanks around comma separated items.
func trimSliceHook(from, to reflect.Kind, data any) (any, error) {
	items, ok := data.([]string)
	if !ok {
		return data, nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out, nil
}

// Validate rejects values no session can run with.
func (c Config) Validate() error {
	if c.Root == "" {
		return errors.New("root must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxInputSize < 0 {
		return fmt.Errorf("max_input_size must not be negative, got %d", c.MaxInputSize)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() slog.Level {
	lvl, _ := logging.ParseLevel(c.LogLevel)
	return lvl
}

// YAML renders the configuration as a YAML document.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
