package rbez

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestLoggerRejectedInput(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	c := Curve{Points: []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}}
	if _, err := Reduce(c); err == nil {
		t.Fatal("expected error")
	}
	out := buf.String()
	if !strings.Contains(out, "rejected input") || !strings.Contains(out, "op=reduce") {
		t.Errorf("unexpected log output %q", out)
	}

	SetLogger(nil)
	buf.Reset()
	if _, err := Elevate(Curve{}); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("logged %q after logger was reset", buf.String())
	}
}
