// Package tui provides the terminal user interface for todo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeInput  Mode = iota // New-task input field focused
	ModeNormal             // Task list focused
	ModeEdit               // Edit dialog open; the list ignores keys
	ModeHelp               // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInput, ModeEdit:
		return true
	case ModeNormal, ModeHelp:
		return false
	}
	return false
}

// EditFocus is the focused control inside the edit dialog.
type EditFocus int

const (
	EditFocusField  EditFocus = iota // Text field
	EditFocusSave                    // Save button
	EditFocusCancel                  // Cancel button
)

// editFocusCount is the number of focusable controls in the edit dialog.
const editFocusCount = 3

// Next returns the control after f, wrapping around.
func (f EditFocus) Next() EditFocus {
	return (f + 1) % editFocusCount
}

// Prev returns the control before f, wrapping around.
func (f EditFocus) Prev() EditFocus {
	return (f + editFocusCount - 1) % editFocusCount
}

// String returns a human-readable name of the control.
func (f EditFocus) String() string {
	switch f {
	case EditFocusField:
		return "field"
	case EditFocusSave:
		return "save"
	case EditFocusCancel:
		return "cancel"
	}
	return ""
}
