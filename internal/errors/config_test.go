package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigParseError(t *testing.T) {
	parseErr := errors.New("unexpected end of file")
	err := ConfigParseError("/path/config.yaml", parseErr)

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigParseError should return ErrConfig")
	}
	if !errors.Is(err.Cause, parseErr) {
		t.Error("Should wrap the parse error")
	}
	if !strings.Contains(err.Suggestion, "YAML") {
		t.Error("Suggestion should mention YAML syntax")
	}
}

func TestConfigValidationError(t *testing.T) {
	err := ConfigValidationError("color", "unknown mode", []string{"auto", "always", "never"})

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigValidationError should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "auto, always, never") {
		t.Error("Suggestion should list valid options")
	}
	if err.Details["field"] != "color" {
		t.Error("Should include field name")
	}
}

func TestConfigValidationError_NoOptions(t *testing.T) {
	err := ConfigValidationError("name_attempts", "must be positive", nil)

	if !strings.Contains(err.Suggestion, "Fix the") {
		t.Error("Should still provide suggestion without options")
	}
	if strings.Contains(err.Suggestion, "Valid options") {
		t.Error("Should not list options when none given")
	}
}

func TestHomeDirNotFound(t *testing.T) {
	cause := errors.New("$HOME is not defined")
	err := HomeDirNotFound(cause)

	if !errors.Is(err, ErrConfig) {
		t.Error("HomeDirNotFound should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "--data-dir") {
		t.Error("Suggestion should mention --data-dir")
	}
}
