package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"DEBUG":   logrus.DebugLevel,
		" info ":  logrus.InfoLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"warn":    logrus.WarnLevel,
		"":        logrus.WarnLevel,
		"verbose": logrus.WarnLevel,
	}
	for input, want := range tests {
		if got := GetLevel(input); got != want {
			t.Fatalf("GetLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSetupWritesToStderrWriter(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	buf := &bytes.Buffer{}
	if err := Setup(Params{Level: "info", Stderr: buf}); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	logrus.Debug("hidden")
	logrus.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("info line missing: %q", out)
	}
}

func TestSetupWritesToLogFile(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "pushups.txt")
	if err := Setup(Params{Level: "warn", File: path, JSONFormat: true}); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	logrus.Warn("save failed")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"save failed"`) {
		t.Fatalf("log file contents = %q, want JSON message", data)
	}
}
