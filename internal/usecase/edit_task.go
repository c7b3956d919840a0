package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// BeginEditInput contains the parameters for opening an edit.
type BeginEditInput struct {
	TaskID string
}

// BeginEditOutput contains the session the view keeps while the edit surface is open.
type BeginEditOutput struct {
	Session domain.EditSession
}

// BeginEdit is the use case for starting an edit of one task.
// It has no side effects on the list.
type BeginEdit struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewBeginEdit creates a new BeginEdit use case.
func NewBeginEdit(tasks domain.TaskRepository, logger domain.Logger) *BeginEdit {
	return &BeginEdit{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute captures the task's current text and position.
func (uc *BeginEdit) Execute(_ context.Context, in BeginEditInput) (*BeginEditOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	idx, err := uc.tasks.IndexOf(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("locate task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Debug(task.ID, "edit", "begin")
	}

	return &BeginEditOutput{
		Session: domain.EditSession{
			TaskID:      task.ID,
			Index:       idx,
			InitialText: task.Text,
		},
	}, nil
}

// CommitEditInput contains the parameters for saving an edit.
type CommitEditInput struct {
	Session  domain.EditSession
	Text     string // Raw input; trimmed before storing
	MaxRunes int    // Limit on the trimmed text; 0 means unlimited
}

// CommitEditOutput contains the result of saving an edit.
type CommitEditOutput struct {
	Task *domain.Task // The updated task
}

// CommitEdit is the use case for saving an edit.
// Fields are ordered to minimize memory padding.
type CommitEdit struct {
	tasks    domain.TaskRepository
	logger   domain.Logger
	keepDone bool
}

// NewCommitEdit creates a new CommitEdit use case.
// keepDone selects whether the done flag survives an edit.
func NewCommitEdit(tasks domain.TaskRepository, logger domain.Logger, keepDone bool) *CommitEdit {
	return &CommitEdit{
		tasks:    tasks,
		logger:   logger,
		keepDone: keepDone,
	}
}

// Execute replaces the task's text in place.
// Returns domain.ErrEmptyText and leaves the task unchanged when nothing
// remains after trimming; the caller keeps the edit surface open.
// Saving the text the session started with writes nothing unless the
// done flag has to be reset.
func (uc *CommitEdit) Execute(_ context.Context, in CommitEditInput) (*CommitEditOutput, error) {
	if in.Session.TaskID == "" {
		return nil, domain.ErrNoEditSession
	}

	text, err := domain.ValidateText(in.Text)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckLength(text, in.MaxRunes); err != nil {
		return nil, err
	}

	task, err := uc.tasks.Get(in.Session.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if !in.Session.Changed(text) && (uc.keepDone || !task.Done) {
		if uc.logger != nil {
			uc.logger.Debug(task.ID, "edit", "unchanged")
		}
		return &CommitEditOutput{Task: task}, nil
	}

	task.Text = text
	if !uc.keepDone {
		task.Done = false
	}

	if err := uc.tasks.Replace(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("edited: %q -> %q", in.Session.InitialText, text))
	}

	return &CommitEditOutput{Task: task}, nil
}

// CancelEditInput contains the session being abandoned.
type CancelEditInput struct {
	Session domain.EditSession
}

// CancelEdit is the use case for closing the edit surface without saving.
type CancelEdit struct {
	logger domain.Logger
}

// NewCancelEdit creates a new CancelEdit use case.
func NewCancelEdit(logger domain.Logger) *CancelEdit {
	return &CancelEdit{logger: logger}
}

// Execute discards the session. The list is never touched.
func (uc *CancelEdit) Execute(_ context.Context, in CancelEditInput) error {
	if in.Session.TaskID == "" {
		return domain.ErrNoEditSession
	}
	if uc.logger != nil {
		uc.logger.Debug(in.Session.TaskID, "edit", "cancelled")
	}
	return nil
}
