package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the list in display order.
type ListTasksOutput struct {
	Tasks   []*domain.Task
	Summary domain.TaskSummary
}

// ListTasks is the use case for reading the current list.
type ListTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, logger domain.Logger) *ListTasks {
	return &ListTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute returns all tasks in insertion order.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	summary := domain.NewTaskSummary(tasks)
	if uc.logger != nil {
		uc.logger.Debug("", "list", fmt.Sprintf("%d tasks, %d done", summary.Total, summary.Done))
	}

	return &ListTasksOutput{
		Tasks:   tasks,
		Summary: summary,
	}, nil
}
