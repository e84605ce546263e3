package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported indicates that no clipboard tool is available.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Replaced in tests.
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if unsupported() {
		return ErrUnsupported
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
