package apphost

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil, want a silent logger")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger is enabled at error level, want all levels disabled")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	Logger().Info("frame loop started", "target", 120)
	if !strings.Contains(buf.String(), "frame loop started") {
		t.Errorf("log output = %q, want the logged message", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Info("should be discarded")
	if buf.Len() != 0 {
		t.Errorf("log output = %q after SetLogger(nil), want none", buf.String())
	}
}
