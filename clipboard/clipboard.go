// Package clipboard gives menu actions access to the system clipboard.
package clipboard

import (
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// Writer writes text to the system clipboard of a Wails application.
type Writer struct {
	app *application.App
}

// NewWriter returns a Writer bound to app.
func NewWriter(app *application.App) *Writer {
	return &Writer{app: app}
}

// SetText replaces the clipboard contents with text.
func (w *Writer) SetText(text string) {
	if w.app == nil {
		return
	}
	if ok := w.app.Clipboard.SetText(text); !ok {
		slog.Warn("clipboard write failed", "length", len(text))
	}
}

