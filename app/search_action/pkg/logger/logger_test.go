package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitLogger_WithConsole(t *testing.T) {
	t.Cleanup(func() { _ = InitLogger("info", "") })

	var buf bytes.Buffer
	if err := InitLogger("warn", "", WithConsole(&buf)); err != nil {
		t.Fatalf("InitLogger() error = %v", err)
	}

	Log.Info("hidden")
	Log.WithField("attempt", 1).Warn("retry")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info line written at warn level: %q", got)
	}
	if !strings.Contains(got, "[WARN]") || !strings.HasSuffix(got, "retry attempt=1\n") {
		t.Errorf("output = %q", got)
	}
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	t.Cleanup(func() { _ = InitLogger("info", "") })

	if err := InitLogger("bogus", ""); err != nil {
		t.Fatalf("InitLogger() error = %v", err)
	}
	if Log.GetLevel().String() != "info" {
		t.Errorf("level = %s, want info", Log.GetLevel())
	}
}
