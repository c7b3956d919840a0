package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Buy milk", "Buy milk"},
		{"surrounding spaces", "  Buy bread  ", "Buy bread"},
		{"tabs and newlines", "\tWalk dog\n", "Walk dog"},
		{"inner whitespace kept", "a   b", "a   b"},
		{"case kept", "MiXeD", "MiXeD"},
		{"only spaces", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{"  x  ", "x", " \t y z\n", ""}
	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "input %q", in)
	}
}

func TestValidateText(t *testing.T) {
	text, err := ValidateText("  Buy milk ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", text)

	_, err = ValidateText(" \t\n ")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestTask_Clone(t *testing.T) {
	orig := &Task{ID: "a", Text: "Buy milk"}
	c := orig.Clone()
	c.Text = "changed"
	c.Done = true

	assert.Equal(t, "Buy milk", orig.Text)
	assert.False(t, orig.Done)
}

func TestNewTaskSummary(t *testing.T) {
	tasks := []*Task{
		{ID: "1", Text: "A", Done: true},
		{ID: "2", Text: "B"},
		{ID: "3", Text: "C", Done: true},
	}

	s := NewTaskSummary(tasks)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Done)
	assert.Equal(t, 1, s.Open())

	assert.Equal(t, TaskSummary{}, NewTaskSummary(nil))
}

func TestEditSession_Changed(t *testing.T) {
	s := EditSession{TaskID: "1", InitialText: "Buy milk"}

	assert.False(t, s.Changed("Buy milk"))
	assert.False(t, s.Changed("  Buy milk "))
	assert.True(t, s.Changed("Buy bread"))
}

func TestCheckLength(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		limit   int
		wantErr bool
	}{
		{"unlimited", strings.Repeat("a", 1000), 0, false},
		{"at limit", "abcde", 5, false},
		{"over limit", "abcdef", 5, true},
		{"counts runes not bytes", "日本語", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLength(tt.text, tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTextTooLong)
				return
			}
			assert.NoError(t, err)
		})
	}
}
