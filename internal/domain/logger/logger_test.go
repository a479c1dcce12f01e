package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgramLogger_DebugLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pl := New(&buf, 1)

	pl.D(2, "hidden %d", 2)
	if buf.Len() != 0 {
		t.Fatalf("expected level 2 debug line to be dropped, got %q", buf.String())
	}

	pl.D(1, "shown %d", 1)
	if !strings.Contains(buf.String(), "shown 1") {
		t.Fatalf("expected level 1 debug line, got %q", buf.String())
	}

	pl.SetLevel(99)
	if pl.Level() != 5 {
		t.Fatalf("expected level clamped to 5, got %d", pl.Level())
	}
	pl.SetLevel(-3)
	if pl.Level() != 0 {
		t.Fatalf("expected level clamped to 0, got %d", pl.Level())
	}
}

func TestProgramLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	parent := New(&buf, 0)
	child := parent.With("request", "abc-123")

	child.I("Downloading: %s", "https://youtu.be/x")
	out := buf.String()
	if !strings.Contains(out, "abc-123") || !strings.Contains(out, "Downloading: https://youtu.be/x") {
		t.Fatalf("expected request field and message, got %q", out)
	}

	// Child follows the parent's level.
	parent.SetLevel(3)
	if child.Level() != 3 {
		t.Fatalf("expected child level 3, got %d", child.Level())
	}
}
