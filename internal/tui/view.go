package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/todo/internal/domain"
)

// Button labels.
const (
	labelAdd    = "Add Task"
	labelSave   = "Save"
	labelCancel = "Cancel"
	labelEdit   = "Edit Task:"
)

// lenAddButton is the rendered width of the Add Task button and its gap.
var lenAddButton = lipgloss.Width(DefaultStyles().AddButton.Render(labelAdd)) + 1

// dialogWidth returns the edit dialog width for the available content width.
func dialogWidth(contentWidth int) int {
	w := contentWidth * 2 / 3
	if w < 30 {
		w = 30
	}
	if w > 72 {
		w = 72
	}
	return w
}

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeInput, ModeNormal, ModeEdit:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the header, input row, task list and footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	b.WriteString(m.viewInput())
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.taskList.View())
	}
	b.WriteString("\n")

	if m.mode == ModeEdit {
		b.WriteString("\n")
		b.WriteString(m.viewEditDialog())
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n")
	case m.notice != "":
		b.WriteString(m.styles.StatusMsg.Render(m.notice) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title and task counts.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render(m.config.UI.Title)
	count := m.styles.HeaderInfo.Render(countText(m.summary))

	contentWidth := m.width - m.styles.App.GetHorizontalFrameSize()
	spacing := contentWidth - lipgloss.Width(title) - lipgloss.Width(count)
	if spacing < 2 {
		spacing = 2
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + count)
}

// viewInput renders the new-task field next to the Add Task button.
func (m *Model) viewInput() string {
	box := m.styles.Input
	if m.mode == ModeInput {
		box = m.styles.InputFocused
	}
	field := box.Render(m.input.View())

	button := lipgloss.NewStyle().
		PaddingTop(1).
		Render(m.styles.AddButton.Render(labelAdd))

	return lipgloss.JoinHorizontal(lipgloss.Top, field, " ", button)
}

// viewEmptyState renders the placeholder shown when the list is empty.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString(m.styles.Empty.Render("No tasks yet"))
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  Type a task and press "))
	b.WriteString(m.styles.FooterKey.Render(m.keys.Add.Help().Key))
	return b.String()
}

// viewEditDialog renders the modal edit dialog.
func (m *Model) viewEditDialog() string {
	contentWidth := m.width - m.styles.App.GetHorizontalFrameSize()
	width := dialogWidth(contentWidth)

	title := m.styles.DialogTitle.Render(labelEdit)

	box := m.styles.Input
	if m.editFocus == EditFocusField {
		box = m.styles.InputFocused
	}
	field := box.Width(width - 4).Render(m.editInput.View())

	buttons := lipgloss.JoinHorizontal(lipgloss.Left,
		m.renderButton(labelSave, m.styles.ButtonSave, m.editFocus == EditFocusSave),
		"  ",
		m.renderButton(labelCancel, m.styles.ButtonCancel, m.editFocus == EditFocusCancel),
	)

	hint := m.styles.FooterKey.Render(m.keys.Save.Help().Key) + m.styles.Footer.Render(" save  ") +
		m.styles.FooterKey.Render(m.keys.Cancel.Help().Key) + m.styles.Footer.Render(" cancel  ") +
		m.styles.FooterKey.Render(m.keys.NextField.Help().Key) + m.styles.Footer.Render(" next")

	content := lipgloss.JoinVertical(lipgloss.Left, title, field, "", buttons, "", hint)
	return m.styles.Dialog.Width(width).Render(content)
}

// renderButton renders a dialog button; the focused one is underlined.
func (m *Model) renderButton(label string, style lipgloss.Style, focused bool) string {
	if focused {
		return style.Underline(true).Render(label)
	}
	return m.styles.Button.Render(label)
}

// viewFooter renders the status line.
func (m *Model) viewFooter() string {
	return m.statusLine.Render(m.GetStatusInfo())
}

// viewHelp renders the keyboard shortcut overlay.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	body := m.help.View(m.keys)
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body)
	return m.styles.Help.Render(content) + "\n\n" + m.viewFooter()
}

// countText renders "N tasks" for the header.
func countText(s domain.TaskSummary) string {
	if s.Total == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", s.Total)
}

// summaryText renders "O open, D/N done" for the status line; empty for an empty list.
func summaryText(s domain.TaskSummary) string {
	if s.Total == 0 {
		return ""
	}
	return fmt.Sprintf("%d open, %d/%d done", s.Open(), s.Done, s.Total)
}
