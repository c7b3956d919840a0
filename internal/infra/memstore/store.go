// Package memstore provides an in-memory, insertion-ordered implementation of TaskRepository.
// Nothing is written anywhere; the list lives as long as the process.
package memstore

import (
	"fmt"
	"slices"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store implements domain.TaskRepository on a slice.
// Tasks are stored and returned as copies so callers cannot mutate the list
// behind the store's back.
type Store struct {
	tasks []*domain.Task
	mu    sync.Mutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// List returns copies of all tasks in insertion order.
func (s *Store) List() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func() error {
		tasks = make([]*domain.Task, 0, len(s.tasks))
		for _, t := range s.tasks {
			tasks = append(tasks, t.Clone())
		}
		return nil
	})
	return tasks, err
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id string) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func() error {
		if i := s.indexOf(id); i >= 0 {
			task = s.tasks[i].Clone()
		}
		return nil
	})
	return task, err
}

// IndexOf returns the current position of a task, or -1 when absent.
func (s *Store) IndexOf(id string) (int, error) {
	idx := -1
	err := s.withLock(func() error {
		idx = s.indexOf(id)
		return nil
	})
	return idx, err
}

// Append adds a task to the end of the list.
func (s *Store) Append(task *domain.Task) error {
	return s.withLock(func() error {
		if task.ID == "" {
			return fmt.Errorf("append task: empty id")
		}
		if s.indexOf(task.ID) >= 0 {
			return fmt.Errorf("append task %s: duplicate id", task.ID)
		}
		s.tasks = append(s.tasks, task.Clone())
		return nil
	})
}

// Replace overwrites the task with the same ID, keeping its position.
func (s *Store) Replace(task *domain.Task) error {
	return s.withLock(func() error {
		i := s.indexOf(task.ID)
		if i < 0 {
			return domain.ErrTaskNotFound
		}
		s.tasks[i] = task.Clone()
		return nil
	})
}

// Delete removes a task by ID. The order of the remaining tasks is preserved.
func (s *Store) Delete(id string) error {
	return s.withLock(func() error {
		i := s.indexOf(id)
		if i < 0 {
			return domain.ErrTaskNotFound
		}
		s.tasks = slices.Delete(s.tasks, i, i+1)
		return nil
	})
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t *domain.Task) bool {
		return t.ID == id
	})
}

func (s *Store) withLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
