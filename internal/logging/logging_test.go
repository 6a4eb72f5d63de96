package logging

import (
	"errors"
	"testing"

	pserrors "github.com/FocuswithJustin/PngStash/core/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{input: "debug", want: LevelDebug},
		{input: "info", want: LevelInfo},
		{input: "warn", want: LevelWarn},
		{input: "error", want: LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("ParseLevel(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseLevel("verbose"); !errors.Is(err, pserrors.ErrInvalidInput) {
		t.Errorf("ParseLevel(\"verbose\") = %v, want validation error", err)
	}
}

func TestParseFormat(t *testing.T) {
	if got, err := ParseFormat("text"); err != nil || got != FormatText {
		t.Errorf("ParseFormat(\"text\") = %v, %v", got, err)
	}
	if got, err := ParseFormat("json"); err != nil || got != FormatJSON {
		t.Errorf("ParseFormat(\"json\") = %v, %v", got, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, pserrors.ErrInvalidInput) {
		t.Errorf("ParseFormat(\"xml\") = %v, want validation error", err)
	}
}

func TestInitLogger(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		for _, format := range []Format{FormatText, FormatJSON} {
			InitLogger(level, format)
			if GetLogger() == nil {
				t.Fatalf("GetLogger() is nil after InitLogger(%v, %v)", level, format)
			}
		}
	}

	// Helpers must not panic regardless of configuration.
	InitLogger(LevelError, FormatText)
	Debug("debug message", "key", "value")
	Info("info message")
	Warn("warn message")
	Error("error message", "err", "boom")
}
