// Package validation provides input validation for user-supplied CLI
// arguments before they reach the filesystem.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Limits on user-supplied inputs.
const (
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
	// MaxMessageLength is the maximum allowed hidden-message length (16 MB).
	// The chunk length field allows 4 GB; this is a sanity cap for a tool
	// whose payloads are text messages.
	MaxMessageLength = 16 << 20
)

// Common validation errors.
var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrMessageTooLong   = errors.New("message too long")
)

// ValidatePath checks a user-supplied file path for emptiness, excessive
// length, null bytes, and control characters. It does not check existence;
// that is left to the open that follows.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// ValidateMessage checks a message payload against the size cap.
func ValidateMessage(message string) error {
	if len(message) > MaxMessageLength {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrMessageTooLong, len(message), MaxMessageLength)
	}
	return nil
}
