// Package clipboard wraps system clipboard access for CLI mode. The GUI
// goes through the Wails runtime clipboard instead; this path exists so
// --copy works without a window.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/logger"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

// Write places text on the system clipboard.
func Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		logger.Error("clipboard write failed", err)
		return types.NewAppError(types.ErrClipboard, "failed to write to clipboard", err)
	}
	logger.Debug("clipboard updated", logger.Int("length", len(text)))
	return nil
}
