package modehandler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lorikeet/reef/internal/buffer"
	"github.com/lorikeet/reef/internal/core"
	"github.com/lorikeet/reef/internal/event"
	"github.com/lorikeet/reef/internal/fsnav"
	"github.com/lorikeet/reef/internal/input"
	"github.com/lorikeet/reef/internal/preview"
	"github.com/lorikeet/reef/internal/statusbar"
)

func newTestHandler(t *testing.T, dir string) (*ModeHandler, chan struct{}) {
	t.Helper()

	listing := fsnav.NewListing(dir)
	editor := core.NewEditor(buffer.NewSliceBuffer())
	quit := make(chan struct{})

	mh := New(Config{
		Listing:        listing,
		Editor:         editor,
		Resolver:       preview.NewResolver(preview.DefaultLimits()),
		InputProcessor: input.NewProcessor(),
		EventManager:   event.NewManager(),
		StatusBar:      statusbar.New(statusbar.Config{MessageTimeout: time.Second}),
		QuitSignal:     quit,
		ListScrollOff:  2,
	})
	mh.SetViewSize(80, 24)
	return mh, quit
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("first line\nsecond line"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "beta.txt"), []byte("beta"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "subdir", "nested.txt"), []byte("nested"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func keyRune(mh *ModeHandler, r rune) bool {
	return mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func key(mh *ModeHandler, k tcell.Key) bool {
	return mh.HandleKeyEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func TestBrowserSelectionMovesAndClamps(t *testing.T) {
	mh, _ := newTestHandler(t, fixtureDir(t))

	if sel, _ := mh.BrowserState(); sel != 0 {
		t.Fatalf("initial selection = %d, want 0", sel)
	}

	keyRune(mh, 'j')
	if sel, _ := mh.BrowserState(); sel != 1 {
		t.Errorf("after j: selection = %d, want 1", sel)
	}

	// Past the last entry the selection stays on the last entry.
	for i := 0; i < 10; i++ {
		keyRune(mh, 'j')
	}
	if sel, _ := mh.BrowserState(); sel != 2 {
		t.Errorf("after many j: selection = %d, want 2", sel)
	}

	for i := 0; i < 10; i++ {
		keyRune(mh, 'k')
	}
	if sel, _ := mh.BrowserState(); sel != 0 {
		t.Errorf("after many k: selection = %d, want 0", sel)
	}
}

func TestBrowserDescendAndParent(t *testing.T) {
	dir := fixtureDir(t)
	mh, _ := newTestHandler(t, dir)

	// Entries sort name-ascending: alpha.txt, beta.txt, subdir.
	keyRune(mh, 'j')
	keyRune(mh, 'j')
	key(mh, tcell.KeyEnter)

	if mh.CurrentMode() != ModeBrowser {
		t.Fatalf("descending should stay in browser mode, got %v", mh.CurrentMode())
	}
	if got := mh.listing.CurrentPath; got != filepath.Join(dir, "subdir") {
		t.Fatalf("CurrentPath = %q, want subdir", got)
	}

	keyRune(mh, '.')
	if got := mh.listing.CurrentPath; got != dir {
		t.Errorf("after '.': CurrentPath = %q, want %q", got, dir)
	}
	if sel, scroll := mh.BrowserState(); sel != 0 || scroll != 0 {
		t.Errorf("selection/scroll = %d/%d, want 0/0 after navigation", sel, scroll)
	}
}

func TestSearchFiltersLive(t *testing.T) {
	mh, _ := newTestHandler(t, fixtureDir(t))

	keyRune(mh, '/')
	if mh.CurrentMode() != ModeSearch {
		t.Fatalf("mode = %v, want ModeSearch", mh.CurrentMode())
	}

	keyRune(mh, 'b')
	keyRune(mh, 'e')
	if len(mh.listing.Entries) != 1 || mh.listing.Entries[0].Name != "beta.txt" {
		t.Fatalf("filtered entries = %v, want only beta.txt", mh.listing.Entries)
	}

	// Enter keeps the filter applied.
	key(mh, tcell.KeyEnter)
	if mh.CurrentMode() != ModeBrowser {
		t.Errorf("mode after Enter = %v, want ModeBrowser", mh.CurrentMode())
	}
	if mh.listing.Filter != "be" {
		t.Errorf("filter after Enter = %q, want kept", mh.listing.Filter)
	}

	// Escape from a fresh search discards it.
	keyRune(mh, '/')
	key(mh, tcell.KeyEscape)
	if mh.listing.Filter != "" {
		t.Errorf("filter after Escape = %q, want cleared", mh.listing.Filter)
	}
	if len(mh.listing.Entries) != 3 {
		t.Errorf("entries after clearing = %d, want 3", len(mh.listing.Entries))
	}
}

func TestSortCycleKey(t *testing.T) {
	mh, _ := newTestHandler(t, fixtureDir(t))

	if mh.listing.SortKey != fsnav.SortByName {
		t.Fatalf("initial sort = %v, want name", mh.listing.SortKey)
	}
	keyRune(mh, 's')
	if mh.listing.SortKey != fsnav.SortBySize {
		t.Errorf("after s: sort = %v, want size", mh.listing.SortKey)
	}
}

func TestPreviewTextFile(t *testing.T) {
	mh, _ := newTestHandler(t, fixtureDir(t))

	keyRune(mh, ' ')
	if mh.CurrentMode() != ModePreview {
		t.Fatalf("mode = %v, want ModePreview", mh.CurrentMode())
	}
	_, lines, _ := mh.ViewerState()
	if len(lines) == 0 || lines[0] != "first line" {
		t.Fatalf("viewer lines = %v, want alpha.txt content", lines)
	}

	key(mh, tcell.KeyEscape)
	if mh.CurrentMode() != ModeBrowser {
		t.Errorf("mode after Escape = %v, want ModeBrowser", mh.CurrentMode())
	}
}

func TestEditRoundTrip(t *testing.T) {
	mh, _ := newTestHandler(t, fixtureDir(t))

	keyRune(mh, 'e')
	if mh.CurrentMode() != ModeEditor {
		t.Fatalf("mode = %v, want ModeEditor", mh.CurrentMode())
	}

	keyRune(mh, 'X')
	if !mh.editor.IsModified() {
		t.Fatal("buffer should be modified after typing")
	}

	mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if mh.editor.IsModified() {
		t.Fatal("buffer should be clean after save")
	}

	key(mh, tcell.KeyEscape)
	if mh.CurrentMode() != ModeBrowser {
		t.Errorf("mode after Escape = %v, want ModeBrowser", mh.CurrentMode())
	}
}

func TestEditorEscapeWarnsOnUnsaved(t *testing.T) {
	mh, _ := newTestHandler(t, fixtureDir(t))

	keyRune(mh, 'e')
	keyRune(mh, 'X')

	key(mh, tcell.KeyEscape)
	if mh.CurrentMode() != ModeEditor {
		t.Fatal("first Escape with unsaved changes must stay in the editor")
	}
	key(mh, tcell.KeyEscape)
	if mh.CurrentMode() != ModeBrowser {
		t.Fatal("second Escape must leave the editor")
	}
}

func TestQuitSignal(t *testing.T) {
	mh, quit := newTestHandler(t, fixtureDir(t))

	keyRune(mh, 'q')
	select {
	case <-quit:
	default:
		t.Fatal("quit channel should be closed after q in browser mode")
	}
}

func TestEditIgnoresDirectories(t *testing.T) {
	mh, _ := newTestHandler(t, fixtureDir(t))

	keyRune(mh, 'j')
	keyRune(mh, 'j') // subdir
	keyRune(mh, 'e')
	if mh.CurrentMode() != ModeBrowser {
		t.Errorf("editing a directory should be ignored, mode = %v", mh.CurrentMode())
	}
}
