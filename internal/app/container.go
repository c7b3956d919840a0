// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/clipboard"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/idgen"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/usecase"
)

// Options holds command-line overrides applied on top of the loaded config.
type Options struct {
	ConfigPath string // Explicit config file (--config)
	LogFile    string // Log file path (--log-file), overrides [log] file
	LogLevel   string // Log level (--log-level), overrides [log] level
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	IDs           domain.IDGenerator
	Clock         domain.Clock
	Clipboard     domain.Clipboard
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	Config *domain.Config

	closer func() error
}

// New creates a Container with an empty in-memory task list.
// The configuration is loaded once here; a missing --config file is an error.
func New(opts Options) (*Container, error) {
	loader := config.NewLoader(opts.ConfigPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.LogLevel != "" {
		if !domain.ValidLogLevel(opts.LogLevel) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLogLevel, opts.LogLevel)
		}
		cfg.Log.Level = opts.LogLevel
	}

	logger := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	for _, w := range cfg.Warnings {
		logger.Warn("", "config", w)
	}

	return &Container{
		Tasks:         memstore.New(),
		IDs:           idgen.UUID{},
		Clock:         domain.RealClock{},
		Clipboard:     clipboard.System{},
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(loader),
		Logger:        logger,
		Config:        cfg,
		closer:        logger.Close,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// A nil cfg is replaced with the defaults; a nil logger discards output.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, clip domain.Clipboard, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Tasks:     tasks,
		IDs:       ids,
		Clock:     clock,
		Clipboard: clip,
		Logger:    logger,
		Config:    cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.IDs, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Logger)
}

// BeginEditUseCase returns a new BeginEdit use case.
func (c *Container) BeginEditUseCase() *usecase.BeginEdit {
	return usecase.NewBeginEdit(c.Tasks, c.Logger)
}

// CommitEditUseCase returns a new CommitEdit use case.
// The done-flag policy comes from [edit] keep_done.
func (c *Container) CommitEditUseCase() *usecase.CommitEdit {
	return usecase.NewCommitEdit(c.Tasks, c.Logger, c.Config.Edit.KeepDone)
}

// CancelEditUseCase returns a new CancelEdit use case.
func (c *Container) CancelEditUseCase() *usecase.CancelEdit {
	return usecase.NewCancelEdit(c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ToggleDoneUseCase returns a new ToggleDone use case.
func (c *Container) ToggleDoneUseCase() *usecase.ToggleDone {
	return usecase.NewToggleDone(c.Tasks, c.Logger)
}

// CopyTextUseCase returns a new CopyText use case.
func (c *Container) CopyTextUseCase() *usecase.CopyText {
	return usecase.NewCopyText(c.Tasks, c.Clipboard, c.Logger)
}
