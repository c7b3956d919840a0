package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	TextDone      lipgloss.Color

	// Buttons
	ButtonEdit   lipgloss.Color
	ButtonDelete lipgloss.Color
	ButtonSave   lipgloss.Color
	ButtonCancel lipgloss.Color
	ButtonText   lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	TextDone:      lipgloss.Color("#636E72"), // Gray

	ButtonEdit:   lipgloss.Color("#FDCB6E"), // Yellow
	ButtonDelete: lipgloss.Color("#D63031"), // Red
	ButtonSave:   lipgloss.Color("#00B894"), // Green
	ButtonCancel: lipgloss.Color("#D63031"), // Red
	ButtonText:   lipgloss.Color("#2D3436"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderInfo lipgloss.Style

	// Input row
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	AddButton    lipgloss.Style

	// Task rows
	TaskText           lipgloss.Style
	TaskTextSelected   lipgloss.Style
	TaskDone           lipgloss.Style
	TaskDoneSelected   lipgloss.Style
	Checkbox           lipgloss.Style
	CheckboxDone       lipgloss.Style
	SelectionIndicator lipgloss.Style
	RowButtonEdit      lipgloss.Style
	RowButtonDelete    lipgloss.Style

	// Empty state
	Empty lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	Button       lipgloss.Style
	ButtonSave   lipgloss.Style
	ButtonCancel lipgloss.Style

	// Messages
	ErrorMsg  lipgloss.Style
	StatusMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(Colors.TitleNormal).
		Background(Colors.Muted)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		InputFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		AddButton: button.
			Foreground(Colors.ButtonText).
			Background(Colors.Secondary),

		TaskText: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTextSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskDone: lipgloss.NewStyle().
			Foreground(Colors.TextDone).
			Strikethrough(true),

		TaskDoneSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Strikethrough(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CheckboxDone: lipgloss.NewStyle().
			Foreground(Colors.Success),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		RowButtonEdit: lipgloss.NewStyle().
			Foreground(Colors.ButtonEdit),

		RowButtonDelete: lipgloss.NewStyle().
			Foreground(Colors.ButtonDelete),

		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true).
			PaddingLeft(2),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Button: button,

		ButtonSave: button.
			Foreground(Colors.ButtonText).
			Background(Colors.ButtonSave).
			Bold(true),

		ButtonCancel: button.
			Foreground(Colors.ButtonText).
			Background(Colors.ButtonCancel).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		StatusMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),
	}
}

// TextStyle returns the style for a task's text.
func (s Styles) TextStyle(done, selected bool) lipgloss.Style {
	switch {
	case done && selected:
		return s.TaskDoneSelected
	case done:
		return s.TaskDone
	case selected:
		return s.TaskTextSelected
	default:
		return s.TaskText
	}
}
