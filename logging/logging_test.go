package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// captureLogger installs a debug-level text logger and returns its output buffer.
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.DebugLevel)

	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		pkg      string
		function string
	}{
		{"basic function", "digest", "Sum"},
		{"empty function", "mac", ""},
		{"long function name", "asymmetric", "GenerateKeyPairContext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.pkg, tt.function)

			if logger.function != tt.function {
				t.Errorf("NewLogger() function = %v, want %v", logger.function, tt.function)
			}
			if logger.pkg != tt.pkg {
				t.Errorf("NewLogger() pkg = %v, want %v", logger.pkg, tt.pkg)
			}
			if logger.fields["function"] != tt.function {
				t.Errorf("NewLogger() fields[function] = %v, want %v", logger.fields["function"], tt.function)
			}
			if logger.fields["package"] != tt.pkg {
				t.Errorf("NewLogger() fields[package] = %v, want %v", logger.fields["package"], tt.pkg)
			}
		})
	}
}

func TestLoggerHelper_WithCaller(t *testing.T) {
	logger := NewLogger("digest", "Sum")
	withCaller := logger.WithCaller()

	caller, ok := withCaller.fields["caller"].(string)
	if !ok || !strings.HasPrefix(caller, "logging_test.go:") {
		t.Errorf("WithCaller() caller = %v, want logging_test.go:line", withCaller.fields["caller"])
	}
	if fn, ok := withCaller.fields["caller_func"].(string); !ok || fn == "" {
		t.Error("WithCaller() should add a non-empty caller_func field")
	}
	if _, ok := logger.fields["caller"]; ok {
		t.Error("WithCaller() should not modify the receiver")
	}
}

func TestLoggerHelper_WithFieldAndFields(t *testing.T) {
	base := NewLogger("mac", "Sum")
	logger := base.WithField("algorithm", "sha256").WithFields(logrus.Fields{
		"message_size": 28,
		"key_size":     4,
	})

	want := logrus.Fields{
		"algorithm":    "sha256",
		"message_size": 28,
		"key_size":     4,
	}
	for k, v := range want {
		if logger.fields[k] != v {
			t.Errorf("fields[%s] = %v, want %v", k, logger.fields[k], v)
		}
	}
	if len(base.fields) != 2 {
		t.Errorf("base helper was modified: %v", base.fields)
	}
}

func TestLoggerHelper_WithError(t *testing.T) {
	err := errors.New("bad decrypt")
	logger := NewLogger("symmetric", "Decrypt").WithError(err, "integrity", "unpad")

	if logger.fields["error"] != "bad decrypt" {
		t.Errorf("error field = %v", logger.fields["error"])
	}
	if logger.fields["error_type"] != "integrity" {
		t.Errorf("error_type field = %v", logger.fields["error_type"])
	}
	if logger.fields["operation"] != "unpad" {
		t.Errorf("operation field = %v", logger.fields["operation"])
	}
}

func TestLoggerHelper_LoggingMethods(t *testing.T) {
	tests := []struct {
		name        string
		method      func(*LoggerHelper, string)
		message     string
		expectLevel string
	}{
		{"Entry method", (*LoggerHelper).Entry, "test message", "level=debug"},
		{"Debug method", (*LoggerHelper).Debug, "debug message", "level=debug"},
		{"Info method", (*LoggerHelper).Info, "info message", "level=info"},
		{"Warn method", (*LoggerHelper).Warn, "warn message", "level=warning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogger(t)
			logger := NewLogger("credential", "CreateRecord")

			tt.method(logger, tt.message)

			output := buf.String()
			if !strings.Contains(output, tt.expectLevel) {
				t.Errorf("Expected log level %s in output: %s", tt.expectLevel, output)
			}
			if !strings.Contains(output, "function=CreateRecord") {
				t.Errorf("Expected function field in output: %s", output)
			}
			if !strings.Contains(output, "package=credential") {
				t.Errorf("Expected package field in output: %s", output)
			}
			if !strings.Contains(output, tt.message) {
				t.Errorf("Expected message in output: %s", output)
			}
		})
	}
}

func TestLoggerHelper_Exit(t *testing.T) {
	buf := captureLogger(t)

	NewLogger("asymmetric", "Sign").Exit()

	output := buf.String()
	if !strings.Contains(output, "exit Sign") {
		t.Errorf("Expected exit format in output: %s", output)
	}
}

func TestLoggerHelper_WithNilError(t *testing.T) {
	logger := NewLogger("digest", "Sum").WithError(nil, "none", "noop")
	if logger.fields["error"] != "<nil>" {
		t.Errorf("error field = %v, want <nil>", logger.fields["error"])
	}
}

func TestSetLogger_NilResets(t *testing.T) {
	SetLogger(logrus.New())
	SetLogger(nil)

	if Logger() != logrus.StandardLogger() {
		t.Error("SetLogger(nil) should restore logrus.StandardLogger()")
	}
}

func TestSizeFields(t *testing.T) {
	fields := SizeFields("password", 12)

	if len(fields) != 1 {
		t.Fatalf("SizeFields() returned %d fields, want 1", len(fields))
	}
	if fields["password_size"] != 12 {
		t.Errorf("password_size = %v, want 12", fields["password_size"])
	}
}

func TestOperationFields(t *testing.T) {
	fields := OperationFields("encrypt", "failed", logrus.Fields{"key_size": 32}, SizeFields("iv", 16))

	if fields["operation"] != "encrypt" || fields["status"] != "failed" {
		t.Errorf("OperationFields() = %v", fields)
	}
	if fields["key_size"] != 32 || fields["iv_size"] != 16 {
		t.Errorf("OperationFields() did not merge extras: %v", fields)
	}
}
