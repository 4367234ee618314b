// internal/modehandler/editor_mode.go
package modehandler

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lorikeet/reef/internal/core"
	"github.com/lorikeet/reef/internal/input"
	"github.com/lorikeet/reef/internal/logger"
)

// handleEditor interprets actions while a file is open for editing. The raw
// tcell event rides along for the Shift-selection check.
func (mh *ModeHandler) handleEditor(actionEvent input.ActionEvent, ev *tcell.EventKey) bool {
	isShift := ev.Modifiers()&tcell.ModShift != 0

	isMovement := false
	switch actionEvent.Action {
	case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight,
		input.ActionMovePageUp, input.ActionMovePageDown, input.ActionMoveHome, input.ActionMoveEnd:
		isMovement = true
	}

	if isMovement && isShift && !mh.shiftSelecting {
		mh.editor.StartSelection()
		mh.shiftSelecting = true
	}
	if isMovement && !isShift {
		mh.editor.ClearSelection()
		mh.shiftSelecting = false
	}

	switch actionEvent.Action {
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.pageMove(-1)
	case input.ActionMovePageDown:
		mh.pageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()

	case input.ActionInsertRune:
		if err := mh.editor.InsertRune(actionEvent.Rune); err != nil {
			logger.Debugf("insert rune: %v", err)
			return false
		}
	case input.ActionInsertNewLine:
		if err := mh.editor.InsertNewLine(); err != nil {
			logger.Debugf("insert newline: %v", err)
			return false
		}
	case input.ActionDeleteCharBackward:
		if err := mh.editor.DeleteBackward(); err != nil {
			logger.Debugf("delete backward: %v", err)
			return false
		}

	case input.ActionCopy:
		if err := mh.editor.CopySelection(); err != nil {
			if errors.Is(err, core.ErrNoSelection) {
				mh.statusBar.SetTemporaryMessage("Nothing selected")
			} else {
				mh.statusBar.SetTemporaryMessage("Copy failed: %v", err)
			}
			return true
		}
		mh.statusBar.SetTemporaryMessage("Selection copied")
		mh.editor.ClearSelection()
		mh.shiftSelecting = false

	case input.ActionPaste:
		if err := mh.editor.Paste(); err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			return true
		}

	case input.ActionSave:
		mh.saveBuffer()

	case input.ActionQuit:
		mh.leaveEditor()

	case input.ActionForceQuit:
		close(mh.quitSignal)
		return false

	default:
		return false
	}

	mh.leavePendingReset(actionEvent.Action)
	return true
}

// pageMove jumps a screenful of lines, clamping at the buffer edges instead
// of refusing the move the way single-line movement does.
func (mh *ModeHandler) pageMove(direction int) {
	page := mh.viewHeight
	if page < 1 {
		page = 1
	}
	mh.editor.ClampCursor(mh.editor.Cursor.Line+direction*page, mh.editor.Cursor.Col)
}

func (mh *ModeHandler) saveBuffer() {
	path := mh.editor.Buffer().FilePath()
	if path == "" {
		mh.statusBar.SetTemporaryMessage("No file name; nothing saved")
		return
	}
	if err := mh.editor.Save(); err != nil {
		mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		return
	}
	mh.statusBar.SetTemporaryMessage("Saved %s", path)
}

// leaveEditor returns to the browser. Unsaved changes require a second
// Escape; the buffer content survives until another file is opened.
func (mh *ModeHandler) leaveEditor() {
	if mh.editor.IsModified() && !mh.leavePending {
		mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again to discard the warning.")
		mh.leavePending = true
		return
	}
	mh.editor.ClearSelection()
	mh.shiftSelecting = false
	mh.listing.Refresh()
	mh.clampSelection()
	mh.switchMode(ModeBrowser)
}

func (mh *ModeHandler) leavePendingReset(action input.Action) {
	if action != input.ActionQuit && action != input.ActionUnknown {
		mh.leavePending = false
	}
}
