package tui

import "github.com/runoshun/todo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTaskAdded is sent after a task was appended.
type MsgTaskAdded struct {
	Task *domain.Task
}

func (MsgTaskAdded) sealed() {}

// MsgTaskEdited is sent after an edit was saved.
type MsgTaskEdited struct {
	Task *domain.Task
}

func (MsgTaskEdited) sealed() {}

// MsgEditCancelled is sent when the edit dialog is closed without saving.
type MsgEditCancelled struct {
	TaskID string
}

func (MsgEditCancelled) sealed() {}

// MsgTaskDeleted is sent after a task was removed.
type MsgTaskDeleted struct {
	Task *domain.Task
}

func (MsgTaskDeleted) sealed() {}

// MsgTaskToggled is sent after a task's done flag changed.
type MsgTaskToggled struct {
	Task *domain.Task
}

func (MsgTaskToggled) sealed() {}

// MsgTextCopied is sent after a task's text was put on the clipboard.
type MsgTextCopied struct {
	Text string
}

func (MsgTextCopied) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
