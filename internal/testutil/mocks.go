// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.IDGenerator    = (*SeqIDGenerator)(nil)
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.Clipboard      = (*MockClipboard)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// SeqIDGenerator returns "task-1", "task-2", ...
type SeqIDGenerator struct {
	N int
}

// NewID returns the next sequential ID.
func (g *SeqIDGenerator) NewID() string {
	g.N++
	return fmt.Sprintf("task-%d", g.N)
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks     []*domain.Task
	ListErr   error
	GetErr    error
	AppendErr error
	SaveErr   error
	DeleteErr error
}

// NewMockTaskRepository creates an empty MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

// Texts returns the stored texts in order.
func (m *MockTaskRepository) Texts() []string {
	out := make([]string, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		out = append(out, t.Text)
	}
	return out
}

// List returns copies of all tasks.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		out = append(out, t.Clone())
	}
	return out, nil
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id string) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if i := m.index(id); i >= 0 {
		return m.Tasks[i].Clone(), nil
	}
	return nil, nil
}

// IndexOf returns the position of a task, or -1.
func (m *MockTaskRepository) IndexOf(id string) (int, error) {
	return m.index(id), nil
}

// Append adds a task.
func (m *MockTaskRepository) Append(task *domain.Task) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Tasks = append(m.Tasks, task.Clone())
	return nil
}

// Replace overwrites a task in place.
func (m *MockTaskRepository) Replace(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	i := m.index(task.ID)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	m.Tasks[i] = task.Clone()
	return nil
}

// Delete removes a task.
func (m *MockTaskRepository) Delete(id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	i := m.index(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	m.Tasks = slices.Delete(m.Tasks, i, i+1)
	return nil
}

func (m *MockTaskRepository) index(id string) int {
	return slices.IndexFunc(m.Tasks, func(t *domain.Task) bool { return t.ID == id })
}

// MockClipboard records written text.
type MockClipboard struct {
	Err     error
	Written []string
}

// WriteAll records text or returns Err.
func (m *MockClipboard) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Written = append(m.Written, text)
	return nil
}

// LogEntry is one line captured by MockLogger.
type LogEntry struct {
	Level    string
	TaskID   string
	Category string
	Msg      string
}

// MockLogger captures log calls.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) add(level, taskID, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID, category, msg string) { m.add("info", taskID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID, category, msg string) { m.add("debug", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID, category, msg string) { m.add("warn", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID, category, msg string) { m.add("error", taskID, category, msg) }
