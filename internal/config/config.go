// Package config provides configuration data structures for todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	todoerrors "github.com/dbmrq/todo/internal/errors"
)

// ColorMode controls whether listings are colourised.
type ColorMode string

const (
	// ColorAuto colours output only when the terminal supports it.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colour even when writing to a pipe.
	ColorAlways ColorMode = "always"
	// ColorNever disables colour.
	ColorNever ColorMode = "never"
)

// ValidColorModes lists the accepted color values.
var ValidColorModes = []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}

// ValidLogLevels lists the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the complete todo configuration loaded from <data dir>/config.yaml.
type Config struct {
	// DataDir holds the data file, word list, config file and logs.
	// It is injected by the caller and never read from the config file.
	DataDir string `yaml:"-" json:"data_dir" mapstructure:"-"`
	// DataFile is the entry store, relative to DataDir unless absolute.
	DataFile string `yaml:"data_file" json:"data_file" mapstructure:"data_file"`
	// WordsFile is the identifier word list, relative to DataDir unless absolute.
	WordsFile string `yaml:"words_file" json:"words_file" mapstructure:"words_file"`
	// NameAttempts bounds how many words are drawn when naming a new entry.
	NameAttempts int `yaml:"name_attempts" json:"name_attempts" mapstructure:"name_attempts"`
	// Color controls listing colours.
	Color ColorMode `yaml:"color" json:"color" mapstructure:"color"`
	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log" json:"log" mapstructure:"log"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is the minimum level written (debug, info, warn, error).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// File enables writing a log file under <data dir>/logs.
	File bool `yaml:"file" json:"file" mapstructure:"file"`
	// MaxFiles is how many log files are kept.
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// MaxAge is how long log files are kept.
	MaxAge time.Duration `yaml:"max_age" json:"max_age" mapstructure:"max_age"`
}

// Default values.
const (
	DefaultDataDirName    = ".todo.d"
	DefaultDataFile       = "data.json"
	DefaultWordsFile      = "nouns.txt"
	DefaultConfigFilename = "config.yaml"
	DefaultNameAttempts   = 100
	DefaultLogLevel       = "warn"
	DefaultLogMaxFiles    = 10
	DefaultLogMaxAge      = 7 * 24 * time.Hour

	// DataDirEnv overrides the default data directory.
	DataDirEnv = "TODO_DATA_DIR"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		DataFile:     DefaultDataFile,
		WordsFile:    DefaultWordsFile,
		NameAttempts: DefaultNameAttempts,
		Color:        ColorAuto,
		Log: LogConfig{
			Level:    DefaultLogLevel,
			File:     false,
			MaxFiles: DefaultLogMaxFiles,
			MaxAge:   DefaultLogMaxAge,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.DataFile == "" {
		c.DataFile = defaults.DataFile
	}
	if c.WordsFile == "" {
		c.WordsFile = defaults.WordsFile
	}
	if c.NameAttempts == 0 {
		c.NameAttempts = defaults.NameAttempts
	}
	if c.Color == "" {
		c.Color = defaults.Color
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// DataPath returns the path of the entry store.
func (c *Config) DataPath() string {
	return c.resolve(c.DataFile)
}

// WordsPath returns the path of the word list.
func (c *Config) WordsPath() string {
	return c.resolve(c.WordsFile)
}

// ConfigPath returns the default config file path inside DataDir.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.DataDir, DefaultConfigFilename)
}

// LogDir returns the directory log files are written to.
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// ResolveDataDir picks the data directory: an explicit value wins, then
// $TODO_DATA_DIR, then ~/.todo.d. The home directory is only consulted
// when nothing was injected.
func ResolveDataDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if v := os.Getenv(DataDirEnv); v != "" {
		return v, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", todoerrors.HomeDirNotFound(err)
	}
	if home == "" {
		return "", todoerrors.HomeDirNotFound(fmt.Errorf("home directory is empty"))
	}
	return filepath.Join(home, DefaultDataDirName), nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	// Options lists accepted values, if the field is an enumeration.
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.DataFile == "" {
		errs = append(errs, &ValidationError{Field: "data_file", Message: "must not be empty"})
	}
	if c.WordsFile == "" {
		errs = append(errs, &ValidationError{Field: "words_file", Message: "must not be empty"})
	}
	if c.NameAttempts < 1 {
		errs = append(errs, &ValidationError{Field: "name_attempts", Message: "must be at least 1"})
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		errs = append(errs, &ValidationError{
			Field:   "color",
			Message: "must be 'auto', 'always', or 'never'",
			Options: ValidColorModes,
		})
	}

	if !contains(ValidLogLevels, c.Log.Level) {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
			Options: ValidLogLevels,
		})
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
