// internal/modehandler/search_mode.go
package modehandler

import (
	"github.com/lorikeet/reef/internal/event"
	"github.com/lorikeet/reef/internal/input"
)

// handleSearch interprets actions while the filter prompt is active. Every
// keystroke re-filters the listing immediately.
func (mh *ModeHandler) handleSearch(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.searchBuffer = append(mh.searchBuffer, actionEvent.Rune)
		mh.applySearch()

	case input.ActionDeleteCharBackward:
		if len(mh.searchBuffer) == 0 {
			mh.exitSearch(true)
			return true
		}
		mh.searchBuffer = mh.searchBuffer[:len(mh.searchBuffer)-1]
		mh.applySearch()

	case input.ActionInsertNewLine: // Enter keeps the filter
		mh.exitSearch(false)

	case input.ActionQuit: // Escape discards it
		mh.exitSearch(true)

	default:
		return false
	}
	return true
}

func (mh *ModeHandler) applySearch() {
	mh.listing.Search(string(mh.searchBuffer))
	mh.selectedIndex = 0
	mh.listScroll = 0
	mh.statusBar.SetTemporaryMessage("/%s", string(mh.searchBuffer))
	mh.eventManager.Dispatch(event.TypeFilterChanged, nil)
}

func (mh *ModeHandler) exitSearch(discard bool) {
	if discard && mh.listing.Filter != "" {
		mh.listing.Search("")
		mh.selectedIndex = 0
		mh.listScroll = 0
		mh.eventManager.Dispatch(event.TypeFilterChanged, nil)
	}
	mh.statusBar.ResetTemporaryMessage()
	mh.switchMode(ModeBrowser)
}
