// Package clipboard adapts the system clipboard to domain.Clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure System implements domain.Clipboard.
var _ domain.Clipboard = System{}

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API).
type System struct{}

// WriteAll copies text to the clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return domain.ErrNoClipboard
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
