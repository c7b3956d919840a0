// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML or YAML files.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
	explicitPath  string // File passed with --config; must exist when set
}

// NewLoader creates a new Loader.
// explicitPath may be empty.
func NewLoader(explicitPath string) *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
		explicitPath:  explicitPath,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir, explicitPath string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		explicitPath:  explicitPath,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration: defaults <- global <- explicit file.
// A missing global file is not an error; a missing explicit file is.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	global, err := l.loadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		global.applyTo(base)
	}

	if l.explicitPath != "" {
		explicit, err := l.loadFile(l.explicitPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", l.explicitPath, err)
		}
		explicit.applyTo(base)
	}

	sort.Strings(base.Warnings)
	return base, nil
}

// loadGlobal returns only the global configuration overrides.
// config.toml wins over config.yaml when both exist.
func (l *Loader) loadGlobal() (*fileConfig, error) {
	path := l.GlobalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(path)
}

// GlobalPath returns the global config file in use, or the TOML path when none exists.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	tomlPath := filepath.Join(l.globalConfDir, domain.ConfigFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath
	}
	yamlPath := filepath.Join(l.globalConfDir, domain.ConfigYAMLFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	return tomlPath
}

// loadFile reads a config file and decodes it by extension.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw, err := decodeRaw(path, data)
	if err != nil {
		return nil, err
	}
	return convertRaw(raw), nil
}

// decodeRaw decodes TOML or YAML into a generic map.
func decodeRaw(path string, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnknownFormat)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// fileConfig holds the values a single file sets.
// Pointers distinguish "unset" from an explicit zero value such as keep_done = false.
type fileConfig struct {
	Title       *string
	Placeholder *string
	CharLimit   *int
	ShowHelp    *bool
	KeepDone    *bool
	LogLevel    *string
	LogFile     *string
	Keys        domain.KeysConfig
	Warnings    []string
}

// applyTo overlays the set values onto cfg.
func (f *fileConfig) applyTo(cfg *domain.Config) {
	if f.Title != nil {
		cfg.UI.Title = *f.Title
	}
	if f.Placeholder != nil {
		cfg.UI.Placeholder = *f.Placeholder
	}
	if f.CharLimit != nil {
		cfg.UI.CharLimit = *f.CharLimit
	}
	if f.ShowHelp != nil {
		cfg.UI.ShowHelp = *f.ShowHelp
	}
	if f.KeepDone != nil {
		cfg.Edit.KeepDone = *f.KeepDone
	}
	if f.LogLevel != nil {
		cfg.Log.Level = *f.LogLevel
	}
	if f.LogFile != nil {
		cfg.Log.File = *f.LogFile
	}
	mergeKeys(&cfg.Keys, f.Keys)
	cfg.Warnings = append(cfg.Warnings, f.Warnings...)
}

// mergeKeys overrides only the bindings that are set.
func mergeKeys(dst *domain.KeysConfig, src domain.KeysConfig) {
	if len(src.Toggle) > 0 {
		dst.Toggle = src.Toggle
	}
	if len(src.Edit) > 0 {
		dst.Edit = src.Edit
	}
	if len(src.Delete) > 0 {
		dst.Delete = src.Delete
	}
	if len(src.Copy) > 0 {
		dst.Copy = src.Copy
	}
	if len(src.Input) > 0 {
		dst.Input = src.Input
	}
	if len(src.Help) > 0 {
		dst.Help = src.Help
	}
	if len(src.Quit) > 0 {
		dst.Quit = src.Quit
	}
}

// convertRaw converts the raw map to a fileConfig and collects warnings.
func convertRaw(raw map[string]any) *fileConfig {
	res := &fileConfig{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "ui":
			for k, v := range m {
				switch k {
				case "title":
					res.Title = stringValue(v)
				case "placeholder":
					res.Placeholder = stringValue(v)
				case "char_limit":
					res.CharLimit = intValue(v)
				case "show_help":
					res.ShowHelp = boolValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
				}
			}
		case "edit":
			for k, v := range m {
				switch k {
				case "keep_done":
					res.KeepDone = boolValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [edit]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.LogLevel = stringValue(v)
					if res.LogLevel != nil && !domain.ValidLogLevel(*res.LogLevel) {
						warnings = append(warnings, fmt.Sprintf("invalid log level %q, using info", *res.LogLevel))
						res.LogLevel = nil
					}
				case "file":
					res.LogFile = stringValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "keys":
			for k, v := range m {
				keys := stringList(v)
				switch k {
				case "toggle":
					res.Keys.Toggle = keys
				case "edit":
					res.Keys.Edit = keys
				case "delete":
					res.Keys.Delete = keys
				case "copy":
					res.Keys.Copy = keys
				case "input":
					res.Keys.Input = keys
				case "help":
					res.Keys.Help = keys
				case "quit":
					res.Keys.Quit = keys
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [keys]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func stringValue(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// intValue accepts int64 (TOML) and int (YAML).
func intValue(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	}
	return nil
}

func boolValue(v any) *bool {
	if b, ok := v.(bool); ok {
		return &b
	}
	return nil
}

// stringList accepts a single string or a list of strings.
func stringList(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
