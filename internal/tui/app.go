package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container   *app.Container
	config      *domain.Config
	err         error
	editSession *domain.EditSession // Open edit; nil when the dialog is closed

	// State (slices - contain pointers)
	tasks []*domain.Task

	// Components (structs with pointers)
	keys       KeyMap
	styles     Styles
	help       help.Model
	taskList   list.Model
	statusLine *StatusLine

	// Input state (large structs)
	input     textinput.Model
	editInput textinput.Model

	// Transient notice shown in the footer ("Copied", ...)
	notice string

	// Numeric state (smaller types last)
	summary   domain.TaskSummary
	mode      Mode
	editFocus EditFocus
	width     int
	height    int
}

// New creates a new TUI Model with the given container.
// The input field starts focused, so typing and Enter add a task right away.
func New(c *app.Container) *Model {
	cfg := c.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	ti := textinput.New()
	ti.Placeholder = cfg.UI.Placeholder
	ti.Prompt = "> "
	ti.Focus()

	ei := textinput.New()
	ei.Prompt = ""

	keys := DefaultKeyMap()
	keys.ApplyConfig(cfg.Keys)

	styles := DefaultStyles()

	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	taskList := list.New([]list.Item{}, newTaskDelegate(styles, keys, false), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	m := &Model{
		container:  c,
		config:     cfg,
		mode:       ModeInput,
		keys:       keys,
		styles:     styles,
		help:       h,
		taskList:   taskList,
		statusLine: NewStatusLine(0, &styles),
		input:      ti,
		editInput:  ei,
	}

	// The first load is synchronous like every later one, so no stale
	// snapshot can arrive after a mutation.
	if err := m.refresh(); err != nil {
		m.err = err
	}
	return m
}

// Init initializes the model and returns the initial command.
// Tasks are already loaded by New.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-reads the list synchronously after a mutation.
func (m *Model) refresh() error {
	out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
	if err != nil {
		return err
	}
	m.setTasks(out.Tasks, out.Summary)
	return nil
}

// setTasks replaces the rendered rows, keeping the selection in range.
func (m *Model) setTasks(tasks []*domain.Task, summary domain.TaskSummary) {
	m.tasks = tasks
	m.summary = summary

	idx := m.taskList.Index()
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)

	switch {
	case len(items) == 0:
		m.taskList.ResetSelected()
	case idx >= len(items):
		m.taskList.Select(len(items) - 1)
	}
}

// selectTask moves the selection to the task with the given ID.
func (m *Model) selectTask(id string) {
	for i, task := range m.tasks {
		if task.ID == id {
			m.taskList.Select(i)
			return
		}
	}
}

// SelectedTask returns the currently selected task, or nil if none.
// The row index is resolved to a task at the moment of the action.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task
	}
	return nil
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// setMode switches modes and moves keyboard focus with it.
func (m *Model) setMode(mode Mode) tea.Cmd {
	m.mode = mode
	m.taskList.SetDelegate(newTaskDelegate(m.styles, m.keys, mode == ModeNormal))

	var cmd tea.Cmd
	switch mode {
	case ModeInput:
		m.editInput.Blur()
		cmd = m.input.Focus()
	case ModeEdit:
		m.input.Blur()
		m.editFocus = EditFocusField
		cmd = m.editInput.Focus()
	case ModeNormal, ModeHelp:
		m.input.Blur()
		m.editInput.Blur()
	}
	return cmd
}

// updateLayoutSizes resizes components after a window size change.
func (m *Model) updateLayoutSizes() {
	contentWidth := m.width - m.styles.App.GetHorizontalFrameSize()
	if contentWidth < 20 {
		contentWidth = 20
	}

	// header(2) + input box(3) + blank(1) + footer(2) + app padding
	listHeight := m.height - 8 - m.styles.App.GetVerticalFrameSize()
	if listHeight < 3 {
		listHeight = 3
	}

	m.taskList.SetSize(contentWidth, listHeight)
	m.input.Width = contentWidth - lenAddButton - 6
	m.editInput.Width = dialogWidth(contentWidth) - 6
	m.help.Width = contentWidth
	m.statusLine.SetWidth(contentWidth)
}

// emit wraps a message in a command.
func emit(msg Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
