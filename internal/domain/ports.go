package domain

import "time"

// TaskRepository holds the ordered task list.
// Insertion order is display order.
type TaskRepository interface {
	// List returns copies of all tasks in insertion order.
	List() ([]*Task, error)

	// Get retrieves a task by ID. Returns nil if not found.
	Get(id string) (*Task, error)

	// IndexOf returns the current position of a task, or -1.
	IndexOf(id string) (int, error)

	// Append adds a task to the end of the list.
	Append(task *Task) error

	// Replace overwrites the task with the same ID, keeping its position.
	Replace(task *Task) error

	// Delete removes a task by ID.
	Delete(id string) error
}

// IDGenerator produces stable task identifiers.
type IDGenerator interface {
	NewID() string
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- explicit file).
	Load() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetFileConfigInfo returns information about the file passed with --config.
	GetFileConfigInfo() ConfigInfo

	// InitGlobalConfig writes a commented template to the global config path.
	InitGlobalConfig(cfg *Config, force bool) (string, error)
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger writes leveled, categorized log lines.
// taskID may be empty for entries not tied to a task.
type Logger interface {
	Info(taskID, category, msg string)
	Debug(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}
