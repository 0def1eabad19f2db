package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	todoerrors "github.com/dbmrq/todo/internal/errors"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TODO"

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the file at path, applies defaults,
// merges environment variables, and validates the result.
// The file must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, todoerrors.Wrap(err, todoerrors.ErrConfig, "config file not found").
			WithDetails("path", path)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, todoerrors.ConfigParseError(path, err)
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, todoerrors.ConfigParseError(path, err)
	}

	return l.finish(cfg, path)
}

// LoadConfigFromDir loads config.yaml from dataDir. A missing file means
// defaults plus environment overrides. The returned Config has DataDir set.
func (l *Loader) LoadConfigFromDir(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, DefaultConfigFilename)

	var (
		cfg *Config
		err error
	)
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		cfg, err = l.finish(NewConfig(), path)
	} else {
		cfg, err = l.LoadConfig(path)
	}
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dataDir
	return cfg, nil
}

func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) && len(verrs) == 1 {
			v := verrs[0]
			return nil, todoerrors.ConfigValidationError(v.Field, v.Message, v.Options).
				WithDetails("path", path)
		}
		return nil, todoerrors.Wrap(err, todoerrors.ErrConfig, "configuration validation failed").
			WithDetails("path", path)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv(EnvPrefix + "_WORDS_FILE"); v != "" {
		cfg.WordsFile = v
	}
	if v := os.Getenv(EnvPrefix + "_NAME_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.NameAttempts = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_COLOR"); v != "" {
		cfg.Color = ColorMode(strings.ToLower(v))
	}

	// Log settings
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_FILE"); v != "" {
		cfg.Log.File = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Log.MaxAge = d
		}
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(ColorMode("")):
			return ColorMode(strings.ToLower(data.(string))), nil
		}

		return data, nil
	}
}

// Load is a convenience function that creates a new Loader and loads configuration.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadFromDir is a convenience function that loads configuration from a data directory.
func LoadFromDir(dataDir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dataDir)
}

// WriteDefault writes a config file holding the default settings.
// An existing file is left alone unless force is set; the return value
// reports whether the file was written.
func WriteDefault(path string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}

	data, err := yaml.Marshal(NewConfig())
	if err != nil {
		return false, fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	header := []byte("# todo configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
