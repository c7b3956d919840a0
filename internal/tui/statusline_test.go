package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusLine_Render(t *testing.T) {
	styles := DefaultStyles()
	s := NewStatusLine(80, &styles)

	out := s.Render(StatusLineInfo{
		Mode:     ModeNormal,
		Summary:  "1/2 done",
		KeyHints: []KeyHint{{Key: "e", Desc: "edit"}, {Key: "d", Desc: "delete"}},
	})

	assert.Contains(t, out, "e edit")
	assert.Contains(t, out, "d delete")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "focus:normal"))
	assert.Contains(t, out, "1/2 done")
	assert.Equal(t, 80, lipgloss.Width(out))
}

func TestStatusLine_Render_Truncates(t *testing.T) {
	styles := DefaultStyles()
	s := NewStatusLine(30, &styles)

	out := s.Render(StatusLineInfo{
		Mode:     ModeInput,
		KeyHints: []KeyHint{{Key: "enter", Desc: "add task"}, {Key: "tab", Desc: "list"}, {Key: "ctrl+c", Desc: "quit"}},
	})

	assert.Contains(t, out, "...")
	assert.Contains(t, out, "focus:input")
}

func TestHintsFor_SkipsDisabled(t *testing.T) {
	on := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "on"))
	off := key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "off"), key.WithDisabled())

	assert.Equal(t, []KeyHint{{Key: "a", Desc: "on"}}, hintsFor([]key.Binding{on, off}))
}

func TestModel_GetStatusInfo(t *testing.T) {
	m, _ := newTestModel(t, nil)

	info := m.GetStatusInfo()
	assert.Equal(t, ModeInput, info.Mode)
	assert.Equal(t, hintsFor(m.keys.InputHelp()), info.KeyHints)

	m = press(t, m, keyTab)
	info = m.GetStatusInfo()
	assert.Equal(t, hintsFor(m.keys.ShortHelp()), info.KeyHints)
}
