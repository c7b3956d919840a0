// Package usecase contains application use cases.
// Together they form the task list controller: every mutation of the list
// goes through one of these and nothing else touches the repository.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text     string // Raw input; trimmed before storing
	MaxRunes int    // Limit on the trimmed text; 0 means unlimited
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task *domain.Task // The appended task
}

// AddTask is the use case for appending a task to the list.
type AddTask struct {
	tasks  domain.TaskRepository
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute appends a new, not-done task with the trimmed text.
// Returns domain.ErrEmptyText and leaves the list untouched when nothing
// remains after trimming, and domain.ErrTextTooLong when the trimmed text
// exceeds MaxRunes.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	text, err := domain.ValidateText(in.Text)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckLength(text, in.MaxRunes); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:      uc.ids.NewID(),
		Text:    text,
		Created: uc.clock.Now(),
	}

	if err := uc.tasks.Append(task); err != nil {
		return nil, fmt.Errorf("append task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("added: %q", text))
	}

	return &AddTaskOutput{Task: task}, nil
}
