package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/runoshun/todo/internal/domain"
)

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task actions (list focused)
	Toggle key.Binding // Mark done / not done
	Edit   key.Binding // Open edit dialog
	Delete key.Binding // Delete task
	Copy   key.Binding // Copy text to clipboard

	// Input field
	Add       key.Binding // Add the typed task
	Input     key.Binding // Focus the input field
	FocusList key.Binding // Leave the input field

	// Edit dialog
	Save      key.Binding // Save edit
	Cancel    key.Binding // Cancel edit
	NextField key.Binding // Cycle dialog focus forward
	PrevField key.Binding // Cycle dialog focus backward

	// General
	Help      key.Binding // Show help
	Quit      key.Binding // Quit application (list focused)
	ForceQuit key.Binding // Quit from any mode
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "done"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add task"),
		),
		Input: key.NewBinding(
			key.WithKeys("i", "a", "tab"),
			key.WithHelp("i/a", "new task"),
		),
		FocusList: key.NewBinding(
			key.WithKeys("tab", "down", "esc"),
			key.WithHelp("tab", "list"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ApplyConfig replaces bindings with the non-empty lists from [keys].
// "space" is accepted as an alias for the space bar.
func (k *KeyMap) ApplyConfig(cfg domain.KeysConfig) {
	if cfg.IsEmpty() {
		return
	}
	override(&k.Toggle, cfg.Toggle)
	override(&k.Edit, cfg.Edit)
	override(&k.Delete, cfg.Delete)
	override(&k.Copy, cfg.Copy)
	override(&k.Input, cfg.Input)
	override(&k.Help, cfg.Help)
	override(&k.Quit, cfg.Quit)
}

func override(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	bound := make([]string, 0, len(keys))
	for _, s := range keys {
		if s == "space" {
			s = " "
		}
		bound = append(bound, s)
	}
	b.SetKeys(bound...)
	b.SetHelp(strings.Join(keys, "/"), b.Help().Desc)
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Edit, k.Delete, k.Input, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Input, k.FocusList},
		{k.Add, k.Toggle, k.Edit, k.Delete, k.Copy},
		{k.Save, k.Cancel, k.NextField, k.PrevField},
		{k.Help, k.Quit},
	}
}

// InputHelp returns the bindings shown while the input field is focused.
func (k KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Add, k.FocusList, k.ForceQuit}
}

// EditHelp returns the bindings shown while the edit dialog is open.
func (k KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel, k.NextField}
}
