package errors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("invalid document path").Build(), 2},
		{"config", ConfigError("bad config").Build(), 7},
		{"filesystem", FileSystemError("write failed").Build(), 11},
		{"template", TemplateError("bad template").Build(), 11},
		{"internal", InternalError("boom").Build(), 10},
		{"wrapped classified", fmt.Errorf("generate: %w", ValidationError("bad").Build()), 2},
		{"context canceled", fmt.Errorf("run: %w", context.Canceled), 130},
		{"unclassified", errors.New("unknown error"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	err := WrapError(errors.New("disk full"), CategoryFileSystem, "write directory index").
		WithContext("path", "guide/_index.md").
		Build()

	quiet := NewCLIErrorAdapter(false, slog.Default())
	if got, want := quiet.FormatError(err), "Error: write directory index path=guide/_index.md"; got != want {
		t.Errorf("FormatError() = %q, want %q", got, want)
	}

	verbose := NewCLIErrorAdapter(true, slog.Default())
	if got, want := verbose.FormatError(err), "Error: [filesystem:error] write directory index: disk full"; got != want {
		t.Errorf("FormatError() = %q, want %q", got, want)
	}

	if got := quiet.FormatError(InternalError("boom").Build()); got != "Internal error occurred (use -v for details)" {
		t.Errorf("FormatError() = %q", got)
	}

	if got := quiet.FormatError(errors.New("plain")); got != "Error: plain" {
		t.Errorf("FormatError() = %q", got)
	}
}

func TestCLIErrorAdapter_LogError(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&buf, nil)))

	adapter.logError(WrapError(errors.New("permission denied"), CategoryFileSystem, "write summary").
		WithContext("path", "SUMMARY.md").
		Build())

	out := buf.String()
	for _, want := range []string{"level=ERROR", "msg=\"write summary\"", "category=filesystem", "path=SUMMARY.md", "cause=\"permission denied\""} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestCLIErrorAdapter_ShouldLog(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())
	if adapter.shouldLog(FileSystemError("x").Warning().Build()) {
		t.Error("expected non-fatal classified error not to be logged")
	}
	if !adapter.shouldLog(ConfigError("x").Build()) {
		t.Error("expected fatal error to be logged")
	}
	if !NewCLIErrorAdapter(true, nil).shouldLog(FileSystemError("x").Build()) {
		t.Error("expected verbose adapter to log everything")
	}
}
