package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sftools/sferd/pkg/sferd"
)

// Both implementations must satisfy the public interface.
var (
	_ sferd.Logger = (*ConsoleLogger)(nil)
	_ sferd.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_VerboseGate(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewConsoleLoggerTo(&buf, false)
	quiet.Verbose("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Verbose output should be suppressed, got %q", buf.String())
	}

	buf.Reset()
	loud := NewConsoleLoggerTo(&buf, true)
	loud.Verbose("shown %d", 2)
	if got := buf.String(); got != "[VERBOSE] shown 2\n" {
		t.Errorf("Unexpected verbose output: %q", got)
	}
}

func TestConsoleLogger_InfoAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, false)

	l.Info("loaded %d objects", 3)
	l.Error("bad descriptor: %s", "Account")

	out := buf.String()
	if !strings.Contains(out, "loaded 3 objects\n") {
		t.Errorf("Info line missing from output: %q", out)
	}
	if !strings.Contains(out, "[ERROR] bad descriptor: Account\n") {
		t.Errorf("Error line missing from output: %q", out)
	}
}

func TestConsoleLogger_NoArgsLiteralPercent(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, false)

	// A message with no args must not be interpreted as a format string.
	l.Info("progress 100%")
	if got := buf.String(); got != "progress 100%\n" {
		t.Errorf("Literal percent mangled: %q", got)
	}
}
