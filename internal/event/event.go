// internal/event/event.go
package event

import "github.com/lorikeet/reef/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editor events
	TypeBufferModified
	TypeBufferLoaded
	TypeBufferSaved
	TypeCursorMoved

	// Browser events
	TypeDirectoryChanged
	TypeSortChanged
	TypeFilterChanged

	// Application lifecycle
	TypeModeChanged
	TypeAppQuit
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData carries the cursor position at the time of the edit.
type BufferModifiedData struct {
	Cursor types.Position
}

// BufferLoadedData identifies the file that was loaded.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData identifies the file that was written.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData carries the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// DirectoryChangedData identifies the newly browsed path.
type DirectoryChangedData struct {
	Path string
}

// ModeChangedData names the mode being entered.
type ModeChangedData struct {
	Mode string
}
