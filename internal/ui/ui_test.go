package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestError_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Error("failed to write %s: %v", "result", "broken pipe")

	got := buf.String()
	if !strings.Contains(got, "failed to write result: broken pipe") {
		t.Errorf("Error() output = %q, want message", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Error() output = %q, want trailing newline", got)
	}
}

func TestWarn_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Warn("unknown log level %q", "loud")

	if !strings.Contains(buf.String(), `unknown log level "loud"`) {
		t.Errorf("Warn() output = %q", buf.String())
	}
}
