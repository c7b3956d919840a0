package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepo(texts ...string) *testutil.MockTaskRepository {
	repo := testutil.NewMockTaskRepository()
	gen := &testutil.SeqIDGenerator{}
	for _, text := range texts {
		repo.Tasks = append(repo.Tasks, &domain.Task{ID: gen.NewID(), Text: text})
	}
	return repo
}

func TestBeginEdit_Execute(t *testing.T) {
	repo := seededRepo("A", "B", "C")
	uc := NewBeginEdit(repo, &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), BeginEditInput{TaskID: "task-2"})

	require.NoError(t, err)
	assert.Equal(t, domain.EditSession{TaskID: "task-2", Index: 1, InitialText: "B"}, out.Session)
	assert.Equal(t, []string{"A", "B", "C"}, repo.Texts())
}

func TestBeginEdit_Execute_NotFound(t *testing.T) {
	uc := NewBeginEdit(seededRepo("A"), nil)

	_, err := uc.Execute(context.Background(), BeginEditInput{TaskID: "missing"})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestBeginEdit_Execute_GetError(t *testing.T) {
	repo := seededRepo("A")
	repo.GetErr = assert.AnError
	uc := NewBeginEdit(repo, nil)

	_, err := uc.Execute(context.Background(), BeginEditInput{TaskID: "task-1"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "get task")
}

func TestCommitEdit_Execute_TrimsAndKeepsPosition(t *testing.T) {
	repo := seededRepo("Buy milk")
	uc := NewCommitEdit(repo, &testutil.MockLogger{}, true)
	session := domain.EditSession{TaskID: "task-1", InitialText: "Buy milk"}

	out, err := uc.Execute(context.Background(), CommitEditInput{Session: session, Text: "  Buy bread  "})

	require.NoError(t, err)
	assert.Equal(t, "Buy bread", out.Task.Text)
	assert.Equal(t, []string{"Buy bread"}, repo.Texts())
}

func TestCommitEdit_Execute_MiddleOfList(t *testing.T) {
	repo := seededRepo("A", "B", "C")
	uc := NewCommitEdit(repo, nil, true)

	_, err := uc.Execute(context.Background(), CommitEditInput{
		Session: domain.EditSession{TaskID: "task-2", Index: 1, InitialText: "B"},
		Text:    "B2",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B2", "C"}, repo.Texts())
}

func TestCommitEdit_Execute_EmptyTextRejected(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		repo := seededRepo("Buy milk")
		logger := &testutil.MockLogger{}
		uc := NewCommitEdit(repo, logger, true)

		out, err := uc.Execute(context.Background(), CommitEditInput{
			Session: domain.EditSession{TaskID: "task-1", InitialText: "Buy milk"},
			Text:    text,
		})

		assert.ErrorIs(t, err, domain.ErrEmptyText)
		assert.Nil(t, out)
		assert.Equal(t, []string{"Buy milk"}, repo.Texts())
		assert.Empty(t, logger.Entries)
	}
}

func TestCommitEdit_Execute_DoneFlagPolicy(t *testing.T) {
	tests := []struct {
		name     string
		keepDone bool
		wantDone bool
	}{
		{"keep done", true, true},
		{"reset done", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seededRepo("A")
			repo.Tasks[0].Done = true
			uc := NewCommitEdit(repo, nil, tt.keepDone)

			out, err := uc.Execute(context.Background(), CommitEditInput{
				Session: domain.EditSession{TaskID: "task-1", InitialText: "A"},
				Text:    "A2",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantDone, out.Task.Done)
			assert.Equal(t, tt.wantDone, repo.Tasks[0].Done)
		})
	}
}

func TestCommitEdit_Execute_TaskDeletedMeanwhile(t *testing.T) {
	repo := seededRepo("A")
	uc := NewCommitEdit(repo, nil, true)

	_, err := uc.Execute(context.Background(), CommitEditInput{
		Session: domain.EditSession{TaskID: "task-9", InitialText: "gone"},
		Text:    "new",
	})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestCommitEdit_Execute_NoSession(t *testing.T) {
	uc := NewCommitEdit(seededRepo("A"), nil, true)

	_, err := uc.Execute(context.Background(), CommitEditInput{Text: "x"})

	assert.ErrorIs(t, err, domain.ErrNoEditSession)
}

func TestCommitEdit_Execute_SaveError(t *testing.T) {
	repo := seededRepo("A")
	repo.SaveErr = assert.AnError
	uc := NewCommitEdit(repo, nil, true)

	_, err := uc.Execute(context.Background(), CommitEditInput{
		Session: domain.EditSession{TaskID: "task-1"},
		Text:    "B",
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "save task")
}

func TestCancelEdit_Execute(t *testing.T) {
	logger := &testutil.MockLogger{}
	uc := NewCancelEdit(logger)

	err := uc.Execute(context.Background(), CancelEditInput{Session: domain.EditSession{TaskID: "task-1"}})

	require.NoError(t, err)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "debug", logger.Entries[0].Level)

	assert.ErrorIs(t, uc.Execute(context.Background(), CancelEditInput{}), domain.ErrNoEditSession)
}

func TestCommitEdit_Execute_UnchangedTextSkipsWrite(t *testing.T) {
	repo := seededRepo("Buy milk")
	repo.Tasks[0].Done = true
	repo.SaveErr = assert.AnError
	logger := &testutil.MockLogger{}
	uc := NewCommitEdit(repo, logger, true)

	out, err := uc.Execute(context.Background(), CommitEditInput{
		Session: domain.EditSession{TaskID: "task-1", InitialText: "Buy milk"},
		Text:    "  Buy milk ",
	})

	require.NoError(t, err, "no write means the save error is never hit")
	assert.Equal(t, "Buy milk", out.Task.Text)
	assert.True(t, out.Task.Done)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "debug", logger.Entries[0].Level)
}

func TestCommitEdit_Execute_UnchangedTextStillResetsDone(t *testing.T) {
	repo := seededRepo("Buy milk")
	repo.Tasks[0].Done = true
	uc := NewCommitEdit(repo, nil, false)

	out, err := uc.Execute(context.Background(), CommitEditInput{
		Session: domain.EditSession{TaskID: "task-1", InitialText: "Buy milk"},
		Text:    "Buy milk",
	})

	require.NoError(t, err)
	assert.False(t, out.Task.Done)
	assert.False(t, repo.Tasks[0].Done)
}

func TestCommitEdit_Execute_TooLong(t *testing.T) {
	repo := seededRepo("A")
	uc := NewCommitEdit(repo, nil, true)

	_, err := uc.Execute(context.Background(), CommitEditInput{
		Session:  domain.EditSession{TaskID: "task-1", InitialText: "A"},
		Text:     "   abcdef   ",
		MaxRunes: 5,
	})

	assert.ErrorIs(t, err, domain.ErrTextTooLong)
	assert.Equal(t, []string{"A"}, repo.Texts())
}
