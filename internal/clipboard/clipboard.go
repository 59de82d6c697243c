// Package clipboard wraps system clipboard access behind a small interface
// so actions can be tested without a display server.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrEmptyText is returned when asked to copy nothing.
var ErrEmptyText = errors.New("clipboard text must not be empty")

// Clipboard reads and writes text on the system clipboard.
type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
}

// System is the real system clipboard.
type System struct{}

// NewSystem creates a system clipboard.
func NewSystem() *System {
	return &System{}
}

// WriteText copies text to the clipboard. Blank text is rejected.
func (*System) WriteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// ReadText returns the current clipboard text.
func (*System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}
