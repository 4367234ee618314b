// internal/modehandler/viewer_mode.go
package modehandler

import (
	"github.com/lorikeet/reef/internal/input"
)

// handleViewer interprets actions in the read-only preview viewer. Movement
// scrolls; Escape returns to the mode the viewer was opened from.
func (mh *ModeHandler) handleViewer(actionEvent input.ActionEvent) bool {
	page := mh.viewHeight - 1
	if page < 1 {
		page = 1
	}

	switch actionEvent.Action {
	case input.ActionMoveUp:
		mh.scrollViewer(-1)
	case input.ActionMoveDown:
		mh.scrollViewer(1)
	case input.ActionMovePageUp:
		mh.scrollViewer(-page)
	case input.ActionMovePageDown:
		mh.scrollViewer(page)
	case input.ActionMoveHome:
		mh.viewScroll = 0
	case input.ActionMoveEnd:
		mh.scrollViewer(len(mh.viewLines))
	case input.ActionInsertRune:
		switch actionEvent.Rune {
		case 'j':
			mh.scrollViewer(1)
		case 'k':
			mh.scrollViewer(-1)
		case 'q':
			mh.switchMode(mh.viewReturn)
		default:
			return false
		}
	case input.ActionQuit, input.ActionInsertNewLine:
		mh.switchMode(mh.viewReturn)
	default:
		return false
	}
	return true
}

// scrollViewer moves the viewer window, keeping at least one line on screen.
func (mh *ModeHandler) scrollViewer(delta int) {
	mh.viewScroll += delta
	max := len(mh.viewLines) - 1
	if mh.viewScroll > max {
		mh.viewScroll = max
	}
	if mh.viewScroll < 0 {
		mh.viewScroll = 0
	}
}
