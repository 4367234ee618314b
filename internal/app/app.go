// internal/app/app.go
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/lorikeet/reef/internal/buffer"
	"github.com/lorikeet/reef/internal/config"
	"github.com/lorikeet/reef/internal/core"
	"github.com/lorikeet/reef/internal/event"
	"github.com/lorikeet/reef/internal/fsnav"
	"github.com/lorikeet/reef/internal/input"
	"github.com/lorikeet/reef/internal/logger"
	"github.com/lorikeet/reef/internal/modehandler"
	"github.com/lorikeet/reef/internal/preview"
	"github.com/lorikeet/reef/internal/statusbar"
	"github.com/lorikeet/reef/internal/theme"
	"github.com/lorikeet/reef/internal/tui"
)

// App wires the session components together and runs the main loop. One
// listing, one editor and one resolver exist per session; everything holds
// them by reference.
type App struct {
	cfg         *config.Config
	tuiManager  *tui.TUI
	listing     *fsnav.Listing
	editor      *core.Editor
	resolver    *preview.Resolver
	statusBar   *statusbar.StatusBar
	eventMgr    *event.Manager
	modeHandler *modehandler.ModeHandler
	activeTheme *theme.Theme

	quit          chan struct{}
	redrawRequest chan struct{}
}

// New creates and initializes an application instance rooted at startPath.
func New(cfg *config.Config, startPath string) (*App, error) {
	activeTheme := loadTheme(cfg)

	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve start path %q: %w", startPath, err)
	}
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("start path %q is not a directory", absPath)
	}

	tuiManager, err := tui.New(activeTheme.GetStyle("Default"))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	listing := fsnav.NewListing(absPath)
	listing.ShowHidden = cfg.Browser.ShowHidden
	if key, ok := fsnav.ParseSortKey(cfg.Browser.SortKey); ok {
		listing.SortKey = key
	}
	listing.Refresh()

	editor := core.NewEditor(buffer.NewSliceBuffer())
	editor.SetSystemClipboard(cfg.Editor.SystemClipboard)

	resolver := preview.NewResolver(preview.Limits{
		TextLines:     cfg.Preview.TextLines,
		TextLineWidth: cfg.Preview.TextLineWidth,
		CodeLines:     cfg.Preview.CodeLines,
		DocumentPages: cfg.Preview.DocumentPages,
		ImageCols:     cfg.Preview.ImageCols,
		ImageRows:     cfg.Preview.ImageRows,
		FallbackBytes: preview.DefaultLimits().FallbackBytes,
	})

	eventMgr := event.NewManager()
	editor.SetEventManager(eventMgr)

	statusBar := statusbar.New(statusbar.Config{
		StyleDefault:   activeTheme.GetStyle("StatusBar"),
		StyleModified:  activeTheme.GetStyle("StatusBarModified"),
		StyleMessage:   activeTheme.GetStyle("StatusBarMessage"),
		MessageTimeout: config.MessageTimeout,
	})

	quitChan := make(chan struct{})
	modeHandler := modehandler.New(modehandler.Config{
		Listing:        listing,
		Editor:         editor,
		Resolver:       resolver,
		InputProcessor: input.NewProcessor(),
		EventManager:   eventMgr,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
		ListScrollOff:  cfg.Browser.ListScrollOff,
	})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		listing:       listing,
		editor:        editor,
		resolver:      resolver,
		statusBar:     statusBar,
		eventMgr:      eventMgr,
		modeHandler:   modeHandler,
		activeTheme:   activeTheme,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	eventMgr.Subscribe(event.TypeCursorMoved, a.handleCursorMoved)
	eventMgr.Subscribe(event.TypeBufferModified, a.handleBufferChanged)
	eventMgr.Subscribe(event.TypeBufferSaved, a.handleBufferChanged)
	eventMgr.Subscribe(event.TypeBufferLoaded, a.handleBufferChanged)
	eventMgr.Subscribe(event.TypeDirectoryChanged, a.handleDirectoryChanged)

	width, height := tuiManager.Size()
	modeHandler.SetViewSize(width, height)
	statusBar.SetMode(modeHandler.CurrentMode().String())

	return a, nil
}

// loadTheme returns the configured theme file, or the built-in theme when no
// file is configured or loading fails.
func loadTheme(cfg *config.Config) *theme.Theme {
	if cfg.Theme.File == "" {
		return &theme.ReefDark
	}
	t, err := theme.LoadFromFile(cfg.Theme.File)
	if err != nil {
		logger.Warnf("theme load failed, using built-in: %v", err)
		return &theme.ReefDark
	}
	logger.Infof("loaded theme %q from %s", t.Name, cfg.Theme.File)
	return t
}

// Run starts the event loop and blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.statusBar.SetTemporaryMessage("reef - Enter open | Space preview | e edit | g git | q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventMgr.Dispatch(event.TypeAppQuit, nil)
			if a.editor.IsModified() {
				logger.Warnf("exited with unsaved changes in %s", a.editor.Buffer().FilePath())
			}
			logger.Infof("exiting")
			return nil
		case <-a.redrawRequest:
			w, h := a.tuiManager.Size()
			a.modeHandler.SetViewSize(w, h)
			a.draw()
		}
	}
}

// eventLoop polls terminal events and delegates keys to the mode handler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// requestRedraw schedules a redraw without blocking; a pending request is
// enough.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleBufferChanged(e event.Event) bool {
	a.statusBar.SetFileInfo(a.editor.Buffer().FilePath(), a.editor.IsModified())
	return false
}

func (a *App) handleDirectoryChanged(e event.Event) bool {
	if data, ok := e.Data.(event.DirectoryChangedData); ok {
		logger.DebugTagf("fsnav", "now browsing %s", data.Path)
	}
	return false
}
