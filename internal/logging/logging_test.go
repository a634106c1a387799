package logging

import (
	"bytes"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetQuiet(false)
		SetVerbose(false)
	})
	return &buf
}

func TestDebugAndWarn(t *testing.T) {
	buf := captureLogs(t)
	SetVerbose(true)

	Debug("copy", "path", "/tmp/app")
	Warn("chmod failed", "dir", "application/logs")

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "path=/tmp/app") {
		t.Errorf("missing debug record:\n%s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "dir=application/logs") {
		t.Errorf("missing warn record:\n%s", out)
	}
}

func TestQuietKeepsWarnings(t *testing.T) {
	buf := captureLogs(t)
	SetQuiet(true)

	SetVerbose(true)
	Debug("hidden too")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("quiet mode leaked a debug record:\n%s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("quiet mode suppressed a warning:\n%s", out)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	buf := captureLogs(t)

	Debug("before")
	SetVerbose(true)
	Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("debug record written without verbose:\n%s", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("debug record missing with verbose:\n%s", out)
	}
}
