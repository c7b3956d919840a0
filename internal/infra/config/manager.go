package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager inspects and creates configuration files.
type Manager struct {
	loader *Loader
}

// NewManager creates a Manager that shares the loader's paths.
func NewManager(loader *Loader) *Manager {
	return &Manager{loader: loader}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	path := m.loader.GlobalPath()
	if path == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(path)
}

// GetFileConfigInfo returns information about the file passed with --config.
func (m *Manager) GetFileConfigInfo() domain.ConfigInfo {
	if m.loader.explicitPath == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(m.loader.explicitPath)
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig writes a commented template to the global TOML path and
// returns that path. An existing file is kept unless force is set.
func (m *Manager) InitGlobalConfig(cfg *domain.Config, force bool) (string, error) {
	if m.loader.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	path := filepath.Join(m.loader.globalConfDir, domain.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		return path, domain.ErrConfigExists
	}

	if err := os.MkdirAll(m.loader.globalConfDir, 0o700); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	content := domain.RenderConfigTemplate(cfg)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
