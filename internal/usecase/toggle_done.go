package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ToggleDoneInput contains the parameters for setting the done flag.
type ToggleDoneInput struct {
	TaskID string
	Done   bool
}

// ToggleDoneOutput contains the updated task.
type ToggleDoneOutput struct {
	Task *domain.Task
}

// ToggleDone is the use case for marking a task done or not done.
// Only the flag changes; text and position stay the same.
type ToggleDone struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewToggleDone creates a new ToggleDone use case.
func NewToggleDone(tasks domain.TaskRepository, logger domain.Logger) *ToggleDone {
	return &ToggleDone{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute sets the done flag.
func (uc *ToggleDone) Execute(_ context.Context, in ToggleDoneInput) (*ToggleDoneOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if task.Done == in.Done {
		return &ToggleDoneOutput{Task: task}, nil
	}

	task.Done = in.Done
	if err := uc.tasks.Replace(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("done=%t", in.Done))
	}

	return &ToggleDoneOutput{Task: task}, nil
}
