package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/todo/internal/domain"
)

type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Text
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// Row layout: "  > [x] text ... [e] Edit  [d] Delete"
const (
	rowPrefixWidth = 8 // indent, indicator, checkbox
	minTextWidth   = 10
)

// checkbox returns the plain checkbox text for a task.
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// taskDelegate renders one row per task. Rows are pure renders of the
// task; every action goes back through Model.Update.
type taskDelegate struct {
	styles  Styles
	editKey string
	delKey  string
	focused bool
}

func newTaskDelegate(styles Styles, keys KeyMap, focused bool) taskDelegate {
	return taskDelegate{
		styles:  styles,
		editKey: firstKey(keys.Edit),
		delKey:  firstKey(keys.Delete),
		focused: focused,
	}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// rowButtons returns the plain and styled Edit/Delete hints.
func (d taskDelegate) rowButtons() (string, string) {
	edit := "[" + d.editKey + "] Edit"
	del := "[" + d.delKey + "] Delete"
	plain := "  " + edit + "  " + del
	styled := "  " + d.styles.RowButtonEdit.Render(edit) + "  " + d.styles.RowButtonDelete.Render(del)
	return plain, styled
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index() && d.focused

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	var buttonsPlain, buttonsStyled string
	if selected {
		buttonsPlain, buttonsStyled = d.rowButtons()
	}

	listWidth := m.Width()
	maxTextLen := listWidth - rowPrefixWidth - runewidth.StringWidth(buttonsPlain)
	if maxTextLen < minTextWidth {
		maxTextLen = minTextWidth
	}

	text := escapeNewlines(task.Text)
	if runewidth.StringWidth(text) > maxTextLen {
		text = runewidth.Truncate(text, maxTextLen, "...")
	}

	boxStyle := d.styles.Checkbox
	if task.Done {
		boxStyle = d.styles.CheckboxDone
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicatorChar) + " " +
		boxStyle.Render(checkbox(task.Done)) + " " +
		d.styles.TextStyle(task.Done, selected).Render(text)

	if buttonsPlain != "" {
		used := rowPrefixWidth + runewidth.StringWidth(text)
		if pad := listWidth - used - runewidth.StringWidth(buttonsPlain); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		line += buttonsStyled
	}

	_, _ = fmt.Fprint(w, line)
}

// firstKey returns the help label of a binding's first key.
func firstKey(b key.Binding) string {
	keys := b.Keys()
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}
