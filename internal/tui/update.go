package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// noticeCopied is shown in the footer after a successful copy.
const noticeCopied = "Copied to clipboard"

// Update handles messages and updates the model.
// Controller operations run synchronously here so the list always reflects
// key presses in the order they arrived; the outcome is reported as a Msg.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case MsgTaskAdded:
		m.reload(msg.Task.ID)
		return m, nil

	case MsgTaskEdited:
		m.reload(msg.Task.ID)
		return m, nil

	case MsgTaskToggled:
		m.reload(msg.Task.ID)
		return m, nil

	case MsgTaskDeleted:
		m.reload("")
		return m, nil

	case MsgEditCancelled:
		return m, nil

	case MsgTextCopied:
		m.notice = noticeCopied
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	// Forward everything else (cursor blink, ...) to the focused text field.
	if !m.mode.IsInputMode() {
		return m, nil
	}
	var cmd tea.Cmd
	if m.mode == ModeEdit {
		m.editInput, cmd = m.editInput.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// reload re-reads the rows and, if id is set, selects that task.
func (m *Model) reload(id string) {
	if err := m.refresh(); err != nil {
		m.err = err
		return
	}
	if id != "" {
		m.selectTask(id)
	}
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Errors and notices last until the next key press.
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

// handleInputMode handles keys while the new-task field is focused.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m.addTask()
	case key.Matches(msg, m.keys.FocusList):
		return m, m.setMode(ModeNormal)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addTask runs AddTask with the field's text. Blank input is ignored
// silently and the field keeps its content. Focus does not move.
func (m *Model) addTask() (tea.Model, tea.Cmd) {
	out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
		Text:     m.input.Value(),
		MaxRunes: m.config.UI.CharLimit,
	})
	if errors.Is(err, domain.ErrEmptyText) {
		return m, nil
	}
	if err != nil {
		return m, emit(MsgError{Err: err})
	}

	m.input.Reset()
	return m, emit(MsgTaskAdded{Task: out.Task})
}

// handleNormalMode handles keys while the task list is focused.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m, m.setMode(ModeHelp)

	case key.Matches(msg, m.keys.Input):
		return m, m.setMode(ModeInput)

	// Enter adds whatever the field holds, wherever focus is.
	case key.Matches(msg, m.keys.Add):
		return m.addTask()

	case key.Matches(msg, m.keys.Up):
		m.taskList.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.taskList.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task := m.SelectedTask(); task != nil {
			return m.toggleDone(task)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if task := m.SelectedTask(); task != nil {
			return m.beginEdit(task)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); task != nil {
			return m.deleteTask(task)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if task := m.SelectedTask(); task != nil {
			return m.copyText(task)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m *Model) toggleDone(task *domain.Task) (tea.Model, tea.Cmd) {
	out, err := m.container.ToggleDoneUseCase().Execute(context.Background(), usecase.ToggleDoneInput{
		TaskID: task.ID,
		Done:   !task.Done,
	})
	if err != nil {
		return m, emit(MsgError{Err: err})
	}
	return m, emit(MsgTaskToggled{Task: out.Task})
}

func (m *Model) deleteTask(task *domain.Task) (tea.Model, tea.Cmd) {
	out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
		TaskID: task.ID,
	})
	if err != nil {
		return m, emit(MsgError{Err: err})
	}
	return m, emit(MsgTaskDeleted{Task: out.Task})
}

func (m *Model) copyText(task *domain.Task) (tea.Model, tea.Cmd) {
	out, err := m.container.CopyTextUseCase().Execute(context.Background(), usecase.CopyTextInput{
		TaskID: task.ID,
	})
	if err != nil {
		return m, emit(MsgError{Err: err})
	}
	return m, emit(MsgTextCopied{Text: out.Text})
}

// beginEdit opens the edit dialog seeded with the task's current text.
func (m *Model) beginEdit(task *domain.Task) (tea.Model, tea.Cmd) {
	out, err := m.container.BeginEditUseCase().Execute(context.Background(), usecase.BeginEditInput{
		TaskID: task.ID,
	})
	if err != nil {
		return m, emit(MsgError{Err: err})
	}

	session := out.Session
	m.editSession = &session
	m.editInput.SetValue(session.InitialText)
	m.editInput.CursorEnd()
	return m, m.setMode(ModeEdit)
}

// handleEditMode handles keys while the edit dialog is open.
// Nothing reaches the task list until the dialog closes.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelEdit()

	case key.Matches(msg, m.keys.NextField):
		return m, m.setEditFocus(m.editFocus.Next())

	case key.Matches(msg, m.keys.PrevField):
		return m, m.setEditFocus(m.editFocus.Prev())

	case key.Matches(msg, m.keys.Save):
		if m.editFocus == EditFocusCancel {
			return m.cancelEdit()
		}
		return m.commitEdit()
	}

	if m.editFocus != EditFocusField {
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// setEditFocus moves focus between the text field and the dialog buttons.
func (m *Model) setEditFocus(f EditFocus) tea.Cmd {
	m.editFocus = f
	if f == EditFocusField {
		return m.editInput.Focus()
	}
	m.editInput.Blur()
	return nil
}

// commitEdit saves the dialog's text. Blank text keeps the dialog open
// and leaves the task unchanged.
func (m *Model) commitEdit() (tea.Model, tea.Cmd) {
	if m.editSession == nil {
		return m, m.setMode(ModeNormal)
	}

	out, err := m.container.CommitEditUseCase().Execute(context.Background(), usecase.CommitEditInput{
		Session:  *m.editSession,
		Text:     m.editInput.Value(),
		MaxRunes: m.config.UI.CharLimit,
	})
	if errors.Is(err, domain.ErrEmptyText) {
		return m, nil
	}
	if errors.Is(err, domain.ErrTextTooLong) {
		return m, emit(MsgError{Err: err})
	}

	cmd := m.closeEdit()
	if err != nil {
		return m, tea.Batch(cmd, emit(MsgError{Err: err}))
	}
	return m, tea.Batch(cmd, emit(MsgTaskEdited{Task: out.Task}))
}

// cancelEdit closes the dialog without touching the task.
func (m *Model) cancelEdit() (tea.Model, tea.Cmd) {
	session := m.editSession
	cmd := m.closeEdit()
	if session == nil {
		return m, cmd
	}

	if err := m.container.CancelEditUseCase().Execute(context.Background(), usecase.CancelEditInput{
		Session: *session,
	}); err != nil {
		return m, tea.Batch(cmd, emit(MsgError{Err: err}))
	}
	return m, tea.Batch(cmd, emit(MsgEditCancelled{TaskID: session.TaskID}))
}

// closeEdit drops the session and returns focus to the list.
func (m *Model) closeEdit() tea.Cmd {
	m.editSession = nil
	m.editInput.Reset()
	return m.setMode(ModeNormal)
}

// handleHelpMode handles keys while the help overlay is shown.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		return m, m.setMode(ModeNormal)
	}
	return m, nil
}
