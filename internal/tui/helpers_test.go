package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
)

// newTestModel returns a sized model backed by an in-memory store.
func newTestModel(t *testing.T, cfg *domain.Config) (*Model, *testutil.MockClipboard) {
	t.Helper()
	clip := &testutil.MockClipboard{}
	m := New(app.NewWithDeps(cfg, memstore.New(), &testutil.SeqIDGenerator{}, &testutil.MockClock{}, clip, nil))
	m.input.Cursor.SetMode(cursor.CursorStatic)
	m.editInput.Cursor.SetMode(cursor.CursorStatic)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, clip
}

func newTestContainer() *app.Container {
	return app.NewWithDeps(nil, memstore.New(), &testutil.SeqIDGenerator{}, &testutil.MockClock{}, &testutil.MockClipboard{}, nil)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

// press sends a key and delivers the resulting Msg, if any.
// Cursors are static in tests, so no command blocks on a blink timer.
func press(t *testing.T, m *Model, k tea.KeyMsg) *Model {
	t.Helper()
	updated, cmd := m.Update(k)
	result, ok := updated.(*Model)
	require.True(t, ok, "Update should return *Model")
	if cmd == nil {
		return result
	}
	return deliver(result, cmd())
}

func deliver(m *Model, msg tea.Msg) *Model {
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, cmd := range msg {
			if cmd != nil {
				m = deliver(m, cmd())
			}
		}
	case Msg:
		updated, _ := m.Update(msg)
		m = updated.(*Model)
	}
	return m
}

// addTasks types each text into the input field and presses enter.
func addTasks(t *testing.T, m *Model, items ...string) *Model {
	t.Helper()
	for _, text := range items {
		m.input.SetValue(text)
		m = press(t, m, keyEnter)
	}
	return m
}

func texts(m *Model) []string {
	out := make([]string, 0, len(m.tasks))
	for _, task := range m.tasks {
		out = append(out, task.Text)
	}
	return out
}
