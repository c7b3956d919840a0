package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// CopyTextInput contains the parameters for copying a task's text.
type CopyTextInput struct {
	TaskID string
}

// CopyTextOutput contains the copied text.
type CopyTextOutput struct {
	Text string
}

// CopyText is the use case for putting a task's text on the clipboard.
type CopyText struct {
	tasks     domain.TaskRepository
	clipboard domain.Clipboard
	logger    domain.Logger
}

// NewCopyText creates a new CopyText use case.
func NewCopyText(tasks domain.TaskRepository, clipboard domain.Clipboard, logger domain.Logger) *CopyText {
	return &CopyText{
		tasks:     tasks,
		clipboard: clipboard,
		logger:    logger,
	}
}

// Execute copies the task text.
func (uc *CopyText) Execute(_ context.Context, in CopyTextInput) (*CopyTextOutput, error) {
	if uc.clipboard == nil {
		return nil, domain.ErrNoClipboard
	}

	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if err := uc.clipboard.WriteAll(task.Text); err != nil {
		if uc.logger != nil {
			uc.logger.Warn(task.ID, "clipboard", err.Error())
		}
		return nil, fmt.Errorf("copy text: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Debug(task.ID, "clipboard", "copied")
	}

	return &CopyTextOutput{Text: task.Text}, nil
}
