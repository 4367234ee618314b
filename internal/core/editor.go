// internal/core/editor.go
package core

import (
	"fmt"

	"github.com/lorikeet/reef/internal/buffer"
	"github.com/lorikeet/reef/internal/event"
	"github.com/lorikeet/reef/internal/types"
)

// Editor owns one open buffer plus its edit-session state: cursor, scroll
// offset and optional selection. It is single-threaded by contract; the app
// loop invokes one operation at a time.
type Editor struct {
	buffer       buffer.Buffer
	Cursor       types.Position
	ScrollOffset int // first visible line index

	viewWidth  int
	viewHeight int

	selecting      bool
	selectionStart types.Position
	selectionEnd   types.Position

	register        []byte // internal clipboard fallback
	systemClipboard bool

	eventManager *event.Manager
}

// NewEditor creates an Editor around an existing buffer.
func NewEditor(buf buffer.Buffer) *Editor {
	return &Editor{
		buffer:         buf,
		Cursor:         types.Position{Line: 0, Col: 0},
		selectionStart: types.Position{Line: -1, Col: -1},
		selectionEnd:   types.Position{Line: -1, Col: -1},
	}
}

// SetEventManager wires the editor to the session event bus.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetSystemClipboard selects the system clipboard over the internal register.
func (e *Editor) SetSystemClipboard(enabled bool) {
	e.systemClipboard = enabled
}

// SetViewSize caches the terminal area available to the editor view.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	e.viewHeight = height
}

// Buffer exposes the underlying buffer for rendering.
func (e *Editor) Buffer() buffer.Buffer {
	return e.buffer
}

// IsModified reports whether the buffer holds unsaved changes.
func (e *Editor) IsModified() bool {
	return e.buffer.IsModified()
}

// Load replaces the buffer content with the file at path. On failure the
// previous content, cursor and scroll state are left unchanged. On success
// the cursor moves to the origin and the scroll offset resets.
func (e *Editor) Load(path string) error {
	if err := e.buffer.Load(path); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	e.Cursor = types.Position{Line: 0, Col: 0}
	e.ScrollOffset = 0
	e.ClearSelection()
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	}
	return nil
}

// Save persists the buffer to its backing file. A buffer with no backing
// path saves as a successful no-op; the caller decides whether to prompt for
// one. The modified flag is cleared by the buffer only on a successful write.
func (e *Editor) Save() error {
	if e.buffer.FilePath() == "" {
		return nil
	}
	if err := e.buffer.Save(""); err != nil {
		return err
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	}
	return nil
}
