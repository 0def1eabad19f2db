package logging

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func TestGlobal_DefaultsToNoop(t *testing.T) {
	SetGlobal(nil)

	logger := Global()
	if logger == nil {
		t.Fatal("Global() returned nil")
	}
	if logger != noop {
		t.Error("Global() should be the no-op logger before InitGlobal")
	}

	// Should not panic
	logger.Info("test message")
}

func TestSetGlobal(t *testing.T) {
	logger, err := New(&Config{Level: LevelInfo, LogDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	SetGlobal(logger)
	defer SetGlobal(nil)

	if Global() != logger {
		t.Error("Global() should return the logger set by SetGlobal()")
	}
}

func TestInitGlobal(t *testing.T) {
	tmpDir := t.TempDir()

	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: tmpDir}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	defer CloseGlobal()

	Global().Info("test message")

	entries, _ := os.ReadDir(tmpDir)
	found := false
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".log") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Log file should have been created")
	}
}

func TestInitGlobal_ReplacesPrevious(t *testing.T) {
	var first, second bytes.Buffer

	if err := InitGlobal(&Config{Level: LevelInfo, Console: true, ConsoleWriter: &first}); err != nil {
		t.Fatal(err)
	}
	if err := InitGlobal(&Config{Level: LevelInfo, Console: true, ConsoleWriter: &second}); err != nil {
		t.Fatal(err)
	}
	defer CloseGlobal()

	Global().Info("hello")
	if first.Len() != 0 || !strings.Contains(second.String(), "hello") {
		t.Errorf("first = %q, second = %q", first.String(), second.String())
	}
}

func TestCloseGlobal(t *testing.T) {
	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}
	if Global() != noop {
		t.Error("Global() should fall back to the no-op logger after CloseGlobal()")
	}

	// Closing twice is harmless.
	if err := CloseGlobal(); err != nil {
		t.Errorf("second CloseGlobal() error = %v", err)
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	if err := InitGlobal(&Config{Level: LevelDebug, Console: true, ConsoleWriter: &buf}); err != nil {
		t.Fatal(err)
	}
	defer CloseGlobal()

	ctx := WithEntryID(WithCommand(context.Background(), "add"), "lantern")
	FromContext(ctx).Debug("entry added")

	out := buf.String()
	for _, want := range []string{"entry added", "command=add", "entry_id=lantern"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %q", want, out)
		}
	}
}
