// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/lorikeet/reef/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// StatusBar is the single-row status line at the bottom of the screen. All
// setters are safe for concurrent use; the event loop and draw loop both
// touch it.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	mode       string
	filePath   string
	cursorPos  types.Position
	isModified bool
	itemInfo   string // browser: "12 items", preview: file name

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// SetMode updates the displayed mode name.
func (sb *StatusBar) SetMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetFileInfo updates the file path and modified indicator.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown in editor mode.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetItemInfo updates the trailing context text (entry counts and the like).
func (sb *StatusBar) SetItemInfo(info string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.itemInfo = info
}

// SetTemporaryMessage displays a message until the configured timeout lapses.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message immediately.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the normal status line. Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	text := fmt.Sprintf(" %s", sb.mode)
	if sb.filePath != "" {
		text += fmt.Sprintf(" | %s", sb.filePath)
		if sb.isModified {
			text += " [Modified]"
		}
		text += fmt.Sprintf(" | %d:%d", sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	}
	if sb.itemInfo != "" {
		text += fmt.Sprintf(" | %s", sb.itemInfo)
	}
	return text
}

// Draw renders the status bar onto the bottom row of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	switch {
	case isTempMsgActive:
		text = sb.tempMessage
		style = sb.config.StyleMessage
	case sb.isModified:
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleModified
	default:
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDefault
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
