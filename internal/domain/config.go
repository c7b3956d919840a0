package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string   `toml:"-" yaml:"-"`
	UI       UIConfig   `toml:"ui" yaml:"ui"`
	Log      LogConfig  `toml:"log" yaml:"log"`
	Keys     KeysConfig `toml:"keys" yaml:"keys"`
	Edit     EditConfig `toml:"edit" yaml:"edit"`
}

// UIConfig holds view settings from [ui] section.
type UIConfig struct {
	Title       string `toml:"title" yaml:"title"`             // Header text
	Placeholder string `toml:"placeholder" yaml:"placeholder"` // Prompt shown in the empty input field
	CharLimit   int    `toml:"char_limit" yaml:"char_limit"`   // Max runes of trimmed task text; 0 means unlimited
	ShowHelp    bool   `toml:"show_help" yaml:"show_help"`     // Show the short help bar
}

// EditConfig holds edit behavior from [edit] section.
type EditConfig struct {
	// KeepDone keeps the done flag when a task's text is edited.
	// When false, a committed edit clears the flag.
	KeepDone bool `toml:"keep_done" yaml:"keep_done"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`                   // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty" yaml:"file,omitempty"` // Log file path; empty disables logging
}

// KeysConfig overrides default keybindings from [keys] section.
// Empty lists keep the defaults.
type KeysConfig struct {
	Toggle []string `toml:"toggle,omitempty" yaml:"toggle,omitempty"`
	Edit   []string `toml:"edit,omitempty" yaml:"edit,omitempty"`
	Delete []string `toml:"delete,omitempty" yaml:"delete,omitempty"`
	Copy   []string `toml:"copy,omitempty" yaml:"copy,omitempty"`
	Input  []string `toml:"input,omitempty" yaml:"input,omitempty"`
	Help   []string `toml:"help,omitempty" yaml:"help,omitempty"`
	Quit   []string `toml:"quit,omitempty" yaml:"quit,omitempty"`
}

// IsEmpty reports whether no key overrides are set.
func (k KeysConfig) IsEmpty() bool {
	return len(k.Toggle) == 0 && len(k.Edit) == 0 && len(k.Delete) == 0 &&
		len(k.Copy) == 0 && len(k.Input) == 0 && len(k.Help) == 0 && len(k.Quit) == 0
}

// Default configuration values.
const (
	DefaultTitle       = "To-Do List"
	DefaultPlaceholder = "Enter a new task"
	DefaultCharLimit   = 0 // unlimited
	DefaultLogLevel    = "info"
)

// Directory and file names.
const (
	AppDirName         = "todo"        // Directory name under the config home
	ConfigFileName     = "config.toml" // TOML config file name
	ConfigYAMLFileName = "config.yaml" // YAML config file name
)

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Title:       DefaultTitle,
			Placeholder: DefaultPlaceholder,
			CharLimit:   DefaultCharLimit,
			ShowHelp:    true,
		},
		Edit: EditConfig{
			KeepDone: true,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ValidLogLevel reports whether level is one of debug, info, warn, error.
func ValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Title       string
	Placeholder string
	LogLevel    string
	CharLimit   int
	ShowHelp    bool
	KeepDone    bool
}

// RenderConfigTemplate renders a commented config template from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Title:       cfg.UI.Title,
		Placeholder: cfg.UI.Placeholder,
		CharLimit:   cfg.UI.CharLimit,
		ShowHelp:    cfg.UI.ShowHelp,
		KeepDone:    cfg.Edit.KeepDone,
		LogLevel:    cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
