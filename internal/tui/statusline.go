package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// StatusLineInfo contains information for rendering the status line.
// Fields are ordered to minimize memory padding.
type StatusLineInfo struct {
	Summary  string // Right-aligned counts (e.g., "1/3 done")
	KeyHints []KeyHint
	Mode     Mode
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// hintsFor converts bindings to key hints, skipping disabled ones.
func hintsFor(bindings []key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, KeyHint{Key: h.Key, Desc: h.Desc})
	}
	return hints
}

// StatusLine renders a single status line at the bottom of the screen.
// Fields are ordered to minimize memory padding.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
func (s *StatusLine) Render(info StatusLineInfo) string {
	keyStyle := s.styles.FooterKey
	mutedStyle := lipgloss.NewStyle().Foreground(Colors.Muted)

	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, keyStyle.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")

	rightContent := mutedStyle.Render("focus:" + info.Mode.String())
	if info.Summary != "" {
		rightContent = info.Summary + "  " + rightContent
	}
	rightLen := lipgloss.Width(rightContent)
	contentLen := lipgloss.Width(content)

	maxContentWidth := s.width - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := s.width - contentLen - rightLen
	if spacing < 1 {
		spacing = 1
	}

	return s.styles.Footer.Render(content + strings.Repeat(" ", spacing) + rightContent)
}

// GetStatusInfo returns status line info for the current mode.
func (m *Model) GetStatusInfo() StatusLineInfo {
	info := StatusLineInfo{
		Mode:    m.mode,
		Summary: summaryText(m.summary),
	}

	if !m.config.UI.ShowHelp {
		return info
	}

	switch m.mode {
	case ModeInput:
		info.KeyHints = hintsFor(m.keys.InputHelp())
	case ModeNormal:
		info.KeyHints = hintsFor(m.keys.ShortHelp())
	case ModeEdit:
		info.KeyHints = hintsFor(m.keys.EditHelp())
	case ModeHelp:
		info.KeyHints = []KeyHint{{Key: "esc", Desc: "close"}}
	}

	return info
}
