// internal/core/clipboard.go
package core

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/lorikeet/reef/internal/logger"
)

// ErrNoSelection is returned when a clipboard operation needs a selection
// and none is active.
var ErrNoSelection = errors.New("no selection active")

// CopySelection copies the selected text to the system clipboard when
// enabled, falling back to the internal register if the system clipboard is
// unavailable. The selection stays active.
func (e *Editor) CopySelection() error {
	text := e.SelectedText()
	if text == nil {
		return ErrNoSelection
	}

	e.register = text
	if e.systemClipboard {
		if err := clipboard.WriteAll(string(text)); err != nil {
			logger.DebugTagf("clipboard", "system clipboard write failed, using register: %v", err)
		}
	}
	return nil
}

// Paste inserts clipboard content at the cursor. The system clipboard is
// consulted first when enabled; the internal register is the fallback.
func (e *Editor) Paste() error {
	text := e.register
	if e.systemClipboard {
		if s, err := clipboard.ReadAll(); err == nil && s != "" {
			text = []byte(s)
		}
	}
	if len(text) == 0 {
		return nil
	}
	return e.InsertText(text)
}
