package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	todoerrors "github.com/dbmrq/todo/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, todoerrors.ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
	te, ok := todoerrors.As(err)
	if !ok {
		t.Fatalf("expected *TodoError, got %T", err)
	}
	if te.Details["path"] != "nonexistent/config.yaml" {
		t.Errorf("path detail = %q", te.Details["path"])
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
data_file: tasks.json
words_file: /usr/share/dict/nouns
name_attempts: 25
color: never
log:
  level: debug
  file: true
  max_files: 3
  max_age: 48h
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.DataFile != "tasks.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.WordsFile != "/usr/share/dict/nouns" {
		t.Errorf("WordsFile = %q", cfg.WordsFile)
	}
	if cfg.NameAttempts != 25 {
		t.Errorf("NameAttempts = %d", cfg.NameAttempts)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q", cfg.Color)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.File || cfg.Log.MaxFiles != 3 {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Log.MaxAge != 48*time.Hour {
		t.Errorf("Log.MaxAge = %v, want 48h", cfg.Log.MaxAge)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "color: always\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want always", cfg.Color)
	}
	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile = %q, want default", cfg.DataFile)
	}
	if cfg.NameAttempts != DefaultNameAttempts {
		t.Errorf("NameAttempts = %d, want default", cfg.NameAttempts)
	}
	if cfg.Log.MaxAge != DefaultLogMaxAge {
		t.Errorf("Log.MaxAge = %v, want default", cfg.Log.MaxAge)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
color: never
name_attempts: 10
log:
  level: error
`)

	t.Setenv("TODO_COLOR", "ALWAYS")
	t.Setenv("TODO_NAME_ATTEMPTS", "42")
	t.Setenv("TODO_WORDS_FILE", "words.txt")
	t.Setenv("TODO_LOG_LEVEL", "debug")
	t.Setenv("TODO_LOG_FILE", "yes")
	t.Setenv("TODO_LOG_MAX_AGE", "2h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want always from env", cfg.Color)
	}
	if cfg.NameAttempts != 42 {
		t.Errorf("NameAttempts = %d, want 42 from env", cfg.NameAttempts)
	}
	if cfg.WordsFile != "words.txt" {
		t.Errorf("WordsFile = %q, want words.txt from env", cfg.WordsFile)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug from env", cfg.Log.Level)
	}
	if !cfg.Log.File {
		t.Error("Log.File should be true from env")
	}
	if cfg.Log.MaxAge != 2*time.Hour {
		t.Errorf("Log.MaxAge = %v, want 2h from env", cfg.Log.MaxAge)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "color: sometimes\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	te, ok := todoerrors.As(err)
	if !ok {
		t.Fatalf("expected *TodoError, got %T", err)
	}
	if te.Details["field"] != "color" {
		t.Errorf("field detail = %q, want color", te.Details["field"])
	}
	if !strings.Contains(te.Suggestion, "auto, always, never") {
		t.Errorf("Suggestion = %q, want valid options", te.Suggestion)
	}
}

func TestLoad_MultipleValidationErrors(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "color: sometimes\nlog:\n  level: loud\n")

	_, err := Load(path)
	if !errors.Is(err, todoerrors.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 2 {
		t.Errorf("expected two wrapped validation errors, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "color: [invalid yaml\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	te, ok := todoerrors.As(err)
	if !ok {
		t.Fatalf("expected *TodoError, got %T", err)
	}
	if !strings.Contains(te.Message, "failed to parse configuration") {
		t.Errorf("Message = %q", te.Message)
	}
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("empty config should load: %v", err)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want default", cfg.Color)
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "data_file: other.json\n")

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("failed to load config from dir: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.DataPath() != filepath.Join(dir, "other.json") {
		t.Errorf("DataPath() = %q", cfg.DataPath())
	}
}

func TestLoadFromDir_NoConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODO_COLOR", "never")

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("missing config file should mean defaults: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile = %q, want default", cfg.DataFile)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want never from env", cfg.Color)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{" yes ", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseBool(tt.input); got != tt.want {
				t.Errorf("parseBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if !written {
		t.Error("first WriteDefault should write")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"data_file: data.json", "words_file: nouns.txt", "name_attempts: 100", "color: auto", "level: warn"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("config.yaml missing %q:\n%s", key, data)
		}
	}
	if strings.Contains(string(data), "data_dir") {
		t.Error("config.yaml should not contain data_dir")
	}

	// The written file must load back to the defaults.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if cfg.Log.MaxAge != DefaultLogMaxAge {
		t.Errorf("Log.MaxAge = %v, want %v", cfg.Log.MaxAge, DefaultLogMaxAge)
	}
}

func TestWriteDefault_KeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "color: never\n")

	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if written {
		t.Error("WriteDefault should not overwrite without force")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "color: never\n" {
		t.Errorf("file changed: %q", data)
	}

	written, err = WriteDefault(path, true)
	if err != nil || !written {
		t.Fatalf("forced WriteDefault = %v, %v", written, err)
	}
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "color: auto") {
		t.Errorf("forced write should reset color: %q", data)
	}
}
