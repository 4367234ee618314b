// internal/modehandler/browser_mode.go
package modehandler

import (
	"fmt"
	"strings"

	"github.com/lorikeet/reef/internal/event"
	"github.com/lorikeet/reef/internal/input"
	"github.com/lorikeet/reef/internal/logger"
	"github.com/lorikeet/reef/internal/preview"
)

// handleBrowser interprets actions while the file list has focus.
func (mh *ModeHandler) handleBrowser(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionMoveUp:
		mh.moveSelection(-1)
	case input.ActionMoveDown:
		mh.moveSelection(1)
	case input.ActionMovePageUp:
		mh.moveSelection(-(mh.viewHeight - 1))
	case input.ActionMovePageDown:
		mh.moveSelection(mh.viewHeight - 1)
	case input.ActionMoveHome:
		mh.moveSelection(-len(mh.listing.Entries))
	case input.ActionMoveEnd:
		mh.moveSelection(len(mh.listing.Entries))
	case input.ActionMoveLeft, input.ActionDeleteCharBackward:
		mh.navigateUp()
	case input.ActionMoveRight:
		mh.openSelected()
	case input.ActionInsertNewLine: // Enter
		mh.openSelected()
	case input.ActionInsertRune:
		return mh.handleBrowserRune(actionEvent.Rune)
	case input.ActionQuit:
		mh.requestQuit()
	case input.ActionForceQuit:
		close(mh.quitSignal)
	default:
		return false
	}
	return true
}

// handleBrowserRune interprets the browser's single-letter commands.
func (mh *ModeHandler) handleBrowserRune(r rune) bool {
	switch r {
	case 'j':
		mh.moveSelection(1)
	case 'k':
		mh.moveSelection(-1)
	case '.':
		mh.navigateUp()
	case ' ':
		mh.openSelected()
	case 'e':
		mh.editSelected()
	case 'g':
		mh.enterGitMode()
	case 'h':
		mh.listing.ToggleHidden()
		mh.clampSelection()
		mh.statusBar.SetTemporaryMessage("hidden files: %v", mh.listing.ShowHidden)
	case 's':
		mh.listing.SetSortKey(mh.listing.SortKey.Next())
		mh.clampSelection()
		mh.statusBar.SetTemporaryMessage("sort: %s", mh.listing.SortKey)
		mh.eventManager.Dispatch(event.TypeSortChanged, nil)
	case '/':
		mh.searchBuffer = mh.searchBuffer[:0]
		mh.switchMode(ModeSearch)
		mh.statusBar.SetTemporaryMessage("/")
	case 'r':
		mh.listing.Refresh()
		mh.clampSelection()
	case 'q':
		mh.requestQuit()
	default:
		return false
	}
	return true
}

func (mh *ModeHandler) moveSelection(delta int) {
	if len(mh.listing.Entries) == 0 {
		return
	}
	mh.selectedIndex += delta
	mh.clampSelection()
}

func (mh *ModeHandler) navigateUp() {
	prev := mh.listing.CurrentPath
	mh.listing.NavigateUp()
	if mh.listing.CurrentPath != prev {
		mh.selectedIndex = 0
		mh.listScroll = 0
		mh.eventManager.Dispatch(event.TypeDirectoryChanged, event.DirectoryChangedData{Path: mh.listing.CurrentPath})
	}
}

// openSelected descends into a directory or previews a file. Enter and Space
// behave identically; directories always descend.
func (mh *ModeHandler) openSelected() {
	entry, ok := mh.selectedEntry()
	if !ok {
		return
	}
	if entry.IsDir {
		mh.listing.NavigateTo(entry.Path)
		mh.selectedIndex = 0
		mh.listScroll = 0
		mh.eventManager.Dispatch(event.TypeDirectoryChanged, event.DirectoryChangedData{Path: mh.listing.CurrentPath})
		return
	}
	mh.previewFile(entry.Path)
}

// previewFile resolves a preview and enters the viewer.
func (mh *ModeHandler) previewFile(path string) {
	content := mh.resolver.Resolve(path)

	var lines []string
	switch content.Kind() {
	case preview.KindText, preview.KindBinary, preview.KindError:
		lines = strings.Split(content.Text(), "\n")
	case preview.KindImage:
		lines = []string{fmt.Sprintf("[image data: %d bytes, no terminal renderer available]", len(content.Image()))}
	}

	mh.viewTitle = path
	mh.viewLines = lines
	mh.viewScroll = 0
	mh.viewReturn = ModeBrowser
	mh.switchMode(ModePreview)
	logger.DebugTagf("preview", "%s resolved as %s, %d lines", path, content.Kind(), len(lines))
}

// editSelected loads the selected file into the editor.
func (mh *ModeHandler) editSelected() {
	entry, ok := mh.selectedEntry()
	if !ok || entry.IsDir {
		return
	}
	if err := mh.editor.Load(entry.Path); err != nil {
		mh.statusBar.SetTemporaryMessage("cannot open %s: %v", entry.Name, err)
		return
	}
	mh.switchMode(ModeEditor)
}

func (mh *ModeHandler) requestQuit() {
	if mh.editor.IsModified() && !mh.forceQuitPending {
		mh.statusBar.SetTemporaryMessage("Unsaved changes! Press again or Ctrl+Q to force quit.")
		mh.forceQuitPending = true
		return
	}
	close(mh.quitSignal)
}
