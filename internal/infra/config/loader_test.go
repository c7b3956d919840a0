package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_NoFiles_ReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), "")

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_GlobalTOML(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[ui]
title = "Groceries"
char_limit = 80
show_help = false

[edit]
keep_done = false

[log]
level = "debug"
file = "/tmp/todo.log"

[keys]
toggle = ["x"]
quit = "Q"
`)

	cfg, err := NewLoaderWithGlobalDir(globalDir, "").Load()
	require.NoError(t, err)

	assert.Equal(t, "Groceries", cfg.UI.Title)
	assert.Equal(t, domain.DefaultPlaceholder, cfg.UI.Placeholder)
	assert.Equal(t, 80, cfg.UI.CharLimit)
	assert.False(t, cfg.UI.ShowHelp)
	assert.False(t, cfg.Edit.KeepDone)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/todo.log", cfg.Log.File)
	assert.Equal(t, []string{"x"}, cfg.Keys.Toggle)
	assert.Equal(t, []string{"Q"}, cfg.Keys.Quit)
	assert.Empty(t, cfg.Keys.Edit)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_GlobalYAML(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigYAMLFileName), `
ui:
  placeholder: "What next?"
  char_limit: 42
edit:
  keep_done: false
keys:
  edit: ["E", "enter"]
`)

	cfg, err := NewLoaderWithGlobalDir(globalDir, "").Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTitle, cfg.UI.Title)
	assert.Equal(t, "What next?", cfg.UI.Placeholder)
	assert.Equal(t, 42, cfg.UI.CharLimit)
	assert.False(t, cfg.Edit.KeepDone)
	assert.Equal(t, []string{"E", "enter"}, cfg.Keys.Edit)
}

func TestLoader_Load_TOMLWinsOverYAML(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[ui]\ntitle = \"from toml\"\n")
	writeFile(t, filepath.Join(globalDir, domain.ConfigYAMLFileName), "ui:\n  title: from yaml\n")

	loader := NewLoaderWithGlobalDir(globalDir, "")
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "from toml", cfg.UI.Title)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), loader.GlobalPath())
}

func TestLoader_Load_ExplicitOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[ui]
title = "global"
placeholder = "global placeholder"

[edit]
keep_done = false
`)
	explicit := filepath.Join(t.TempDir(), "custom.yml")
	writeFile(t, explicit, "ui:\n  title: explicit\nedit:\n  keep_done: true\n")

	cfg, err := NewLoaderWithGlobalDir(globalDir, explicit).Load()
	require.NoError(t, err)

	assert.Equal(t, "explicit", cfg.UI.Title)
	assert.Equal(t, "global placeholder", cfg.UI.Placeholder)
	assert.True(t, cfg.Edit.KeepDone)
}

func TestLoader_Load_MissingExplicitFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, err := NewLoaderWithGlobalDir(t.TempDir(), missing).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeFile(t, path, "title=x")

	_, err := NewLoaderWithGlobalDir(t.TempDir(), path).Load()
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[ui\ntitle = ")

	_, err := NewLoaderWithGlobalDir(globalDir, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse toml")
}

func TestLoader_Load_Warnings(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[ui]
colour = "red"

[log]
level = "verbose"

[keys]
launch = ["l"]

[tasks]
store = "json"
`)

	cfg, err := NewLoaderWithGlobalDir(globalDir, "").Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		`invalid log level "verbose", using info`,
		"unknown key in [keys]: launch",
		"unknown key in [ui]: colour",
		"unknown section: tasks",
	}, cfg.Warnings)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigYAMLFileName), "")

	cfg, err := NewLoaderWithGlobalDir(globalDir, "").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_GlobalPath_NoDir(t *testing.T) {
	loader := NewLoaderWithGlobalDir("", "")
	assert.Empty(t, loader.GlobalPath())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTitle, cfg.UI.Title)
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{"a"}, stringList("a"))
	assert.Equal(t, []string{"a", "b"}, stringList([]any{"a", "", "b", 3}))
	assert.Nil(t, stringList(42))
}

func TestIntValue(t *testing.T) {
	assert.Equal(t, 3, *intValue(3))
	assert.Equal(t, 4, *intValue(int64(4)))
	assert.Nil(t, intValue("5"))
}
