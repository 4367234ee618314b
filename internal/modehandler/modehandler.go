// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lorikeet/reef/internal/core"
	"github.com/lorikeet/reef/internal/event"
	"github.com/lorikeet/reef/internal/fsnav"
	"github.com/lorikeet/reef/internal/gitstatus"
	"github.com/lorikeet/reef/internal/input"
	"github.com/lorikeet/reef/internal/logger"
	"github.com/lorikeet/reef/internal/preview"
	"github.com/lorikeet/reef/internal/statusbar"
)

// Mode is the input state the session is in. Every key event is interpreted
// relative to the current mode.
type Mode int

const (
	ModeBrowser Mode = iota
	ModeSearch
	ModePreview
	ModeEditor
	ModeGit
)

func (m Mode) String() string {
	switch m {
	case ModeBrowser:
		return "BROWSE"
	case ModeSearch:
		return "SEARCH"
	case ModePreview:
		return "PREVIEW"
	case ModeEditor:
		return "EDIT"
	case ModeGit:
		return "GIT"
	default:
		return "?"
	}
}

// ModeHandler owns mode state and routes decoded actions to the listing,
// editor and preview components. It is driven entirely by the app's event
// loop; no internal goroutines.
type ModeHandler struct {
	listing        *fsnav.Listing
	editor         *core.Editor
	resolver       *preview.Resolver
	inputProcessor *input.Processor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}

	listScrollOff int
	viewWidth     int
	viewHeight    int // rows available above the status bar

	currentMode Mode

	// Browser state
	selectedIndex int
	listScroll    int

	// Search state
	searchBuffer []rune

	// Viewer state (preview and git diff share it)
	viewTitle  string
	viewLines  []string
	viewScroll int
	viewReturn Mode

	// Git state
	gitManager  *gitstatus.Manager
	gitStatuses []gitstatus.FileStatus
	gitBranch   string
	gitSelected int
	gitScroll   int

	forceQuitPending bool
	leavePending     bool // editor Esc pressed once with unsaved changes
	shiftSelecting   bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Listing        *fsnav.Listing
	Editor         *core.Editor
	Resolver       *preview.Resolver
	InputProcessor *input.Processor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{}
	ListScrollOff  int
}

// New creates a ModeHandler starting in browser mode.
func New(cfg Config) *ModeHandler {
	if cfg.Listing == nil || cfg.Editor == nil || cfg.Resolver == nil ||
		cfg.InputProcessor == nil || cfg.EventManager == nil ||
		cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: missing required dependencies in Config")
	}
	return &ModeHandler{
		listing:        cfg.Listing,
		editor:         cfg.Editor,
		resolver:       cfg.Resolver,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		listScrollOff:  cfg.ListScrollOff,
		currentMode:    ModeBrowser,
	}
}

// SetViewSize caches the drawable area, minus the status bar, for paging and
// scroll-follow calculations.
func (mh *ModeHandler) SetViewSize(width, height int) {
	mh.viewWidth = width
	mh.viewHeight = height - 1
	if mh.viewHeight < 1 {
		mh.viewHeight = 1
	}
	mh.editor.SetViewSize(width, mh.viewHeight)
}

// HandleKeyEvent decodes a key event and applies it in the current mode.
// It reports whether a redraw is needed.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	switch mh.currentMode {
	case ModeBrowser:
		return mh.handleBrowser(actionEvent)
	case ModeSearch:
		return mh.handleSearch(actionEvent)
	case ModePreview:
		return mh.handleViewer(actionEvent)
	case ModeEditor:
		return mh.handleEditor(actionEvent, ev)
	case ModeGit:
		return mh.handleGit(actionEvent)
	default:
		logger.Warnf("unknown input mode: %v", mh.currentMode)
		return false
	}
}

// CurrentMode returns the active mode.
func (mh *ModeHandler) CurrentMode() Mode {
	return mh.currentMode
}

// BrowserState exposes the selection and scroll positions for drawing.
func (mh *ModeHandler) BrowserState() (selected, scroll int) {
	return mh.selectedIndex, mh.listScroll
}

// ViewerState exposes the viewer title, lines and scroll for drawing.
func (mh *ModeHandler) ViewerState() (title string, lines []string, scroll int) {
	return mh.viewTitle, mh.viewLines, mh.viewScroll
}

// GitState exposes the git view content for drawing.
func (mh *ModeHandler) GitState() (branch string, statuses []gitstatus.FileStatus, selected, scroll int) {
	return mh.gitBranch, mh.gitStatuses, mh.gitSelected, mh.gitScroll
}

// SearchBuffer returns the live search input.
func (mh *ModeHandler) SearchBuffer() string {
	return string(mh.searchBuffer)
}

func (mh *ModeHandler) switchMode(m Mode) {
	if mh.currentMode == m {
		return
	}
	mh.currentMode = m
	mh.leavePending = false
	mh.statusBar.SetMode(m.String())
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: m.String()})
}

// clampSelection keeps the browser selection and scroll inside the entry
// slice after any refresh or navigation.
func (mh *ModeHandler) clampSelection() {
	last := len(mh.listing.Entries) - 1
	if mh.selectedIndex > last {
		mh.selectedIndex = last
	}
	if mh.selectedIndex < 0 {
		mh.selectedIndex = 0
	}
	mh.followListScroll()
}

// followListScroll adjusts the list scroll so the selection stays visible
// with the configured margin. The header row costs one line of the view.
func (mh *ModeHandler) followListScroll() {
	visible := mh.viewHeight - 1
	if visible < 1 {
		visible = 1
	}
	off := mh.listScrollOff
	if off*2 >= visible {
		off = 0
	}
	if mh.selectedIndex < mh.listScroll+off {
		mh.listScroll = mh.selectedIndex - off
	}
	if mh.selectedIndex > mh.listScroll+visible-1-off {
		mh.listScroll = mh.selectedIndex - visible + 1 + off
	}
	if mh.listScroll < 0 {
		mh.listScroll = 0
	}
}

func (mh *ModeHandler) selectedEntry() (fsnav.Entry, bool) {
	if mh.selectedIndex < 0 || mh.selectedIndex >= len(mh.listing.Entries) {
		return fsnav.Entry{}, false
	}
	return mh.listing.Entries[mh.selectedIndex], true
}
