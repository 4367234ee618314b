// internal/input/action.go
package input

// Action represents a command decoded from a key event. The processor only
// produces the base action; the mode handler decides what it means in the
// current mode.
type Action int

const (
	ActionUnknown Action = iota

	// Meta
	ActionQuit      // Escape: leave the current view, or quit from the browser
	ActionForceQuit // Ctrl+Q: quit regardless of unsaved state
	ActionSave      // Ctrl+S

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	// Text entry
	ActionInsertRune // carries Rune
	ActionInsertNewLine
	ActionDeleteCharBackward

	// Clipboard
	ActionCopy
	ActionPaste
)

// ActionEvent is a decoded input event plus its payload.
type ActionEvent struct {
	Action Action
	Rune   rune // valid for ActionInsertRune
}
