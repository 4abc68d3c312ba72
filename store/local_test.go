package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

func newTestLocal(t *testing.T) (*LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	require.NoError(t, err)
	return s, dir
}

func TestLocalCreateAndSubscribe(t *testing.T) {
	s, _ := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})

	feed, cancel := repo.Subscribe(context.Background())
	defer cancel()

	initial := <-feed
	assert.Empty(t, initial)

	goal, err := repo.Create(GoalFields{
		Career:     "Nursing",
		Title:      "Apply to program",
		TargetDate: "2026-01-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, goal.ID)
	assert.Empty(t, goal.Tasks)

	updated := <-feed
	require.Len(t, updated, 1)
	assert.Equal(t, "Apply to program", updated[0].Title)
	assert.Equal(t, "Nursing", updated[0].Career)
	assert.Empty(t, updated[0].Tasks)
}

func TestLocalCreateValidation(t *testing.T) {
	s, _ := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})

	_, err := repo.Create(GoalFields{Career: "  ", Title: "x", TargetDate: "2026-01-01"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "career")

	// details are optional
	_, err = repo.Create(GoalFields{Career: "Tech", Title: "Learn Go", TargetDate: "2026-01-01"})
	assert.NoError(t, err)

	goals, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, goals, 1, "failed create must not leave partial state")
}

func TestLocalSurvivesReload(t *testing.T) {
	s, dir := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})

	created, err := repo.Create(GoalFields{
		Career:     "Nursing",
		Title:      "Apply to program",
		Details:    "",
		TargetDate: "2026-01-01",
	})
	require.NoError(t, err)

	// a fresh store over the same directory sees the same record
	reopened, err := NewLocalStore(dir)
	require.NoError(t, err)
	goals, err := reopened.Scope(Owner{DeviceKey: "dev1"}).List()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, created.ID, goals[0].ID)
	assert.Equal(t, "Apply to program", goals[0].Title)
	assert.Len(t, goals[0].Tasks, 0)
}

func TestLocalMalformedFileReadsEmpty(t *testing.T) {
	s, dir := newTestLocal(t)
	path := filepath.Join(dir, "goals_dev1.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	goals, err := s.Scope(Owner{DeviceKey: "dev1"}).List()
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestLocalUpdate(t *testing.T) {
	s, _ := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})

	goal, err := repo.Create(GoalFields{Career: "Tech", Title: "Learn Go", TargetDate: "2026-01-01"})
	require.NoError(t, err)

	t.Run("merges fields", func(t *testing.T) {
		updated, err := repo.Update(goal.ID, GoalFields{
			Career:     "Tech",
			Title:      "Learn Go well",
			Details:    "stdlib first",
			TargetDate: "2026-02-01",
		})
		require.NoError(t, err)
		assert.Equal(t, "Learn Go well", updated.Title)
		assert.Equal(t, "stdlib first", updated.Details)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.Update("nope", GoalFields{Career: "x", Title: "y", TargetDate: "2026-01-01"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLocalDeleteIdempotent(t *testing.T) {
	s, _ := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})

	goal, err := repo.Create(GoalFields{Career: "Tech", Title: "Learn Go", TargetDate: "2026-01-01"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(goal.ID))
	require.NoError(t, repo.Delete(goal.ID), "second delete is a no-op")

	goals, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestLocalTaskOperations(t *testing.T) {
	s, _ := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})

	goal, err := repo.Create(GoalFields{Career: "Tech", Title: "Learn Go", TargetDate: "2026-01-01"})
	require.NoError(t, err)

	require.NoError(t, repo.AddTask(goal.ID, "read the tour"))
	require.NoError(t, repo.AddTask(goal.ID, "write a program"))

	t.Run("double toggle restores state", func(t *testing.T) {
		require.NoError(t, repo.ToggleTask(goal.ID, 0, true))
		require.NoError(t, repo.ToggleTask(goal.ID, 0, false))

		goals, err := repo.List()
		require.NoError(t, err)
		require.Len(t, goals[0].Tasks, 2)
		assert.False(t, goals[0].Tasks[0].Completed)
	})

	t.Run("stale index is ignored", func(t *testing.T) {
		require.NoError(t, repo.ToggleTask(goal.ID, 99, true))
		require.NoError(t, repo.DeleteTask(goal.ID, -1))
		require.NoError(t, repo.AddTask("vanished-goal", "text"))
	})

	t.Run("delete task", func(t *testing.T) {
		require.NoError(t, repo.DeleteTask(goal.ID, 0))
		goals, err := repo.List()
		require.NoError(t, err)
		require.Len(t, goals[0].Tasks, 1)
		assert.Equal(t, "write a program", goals[0].Tasks[0].Text)
	})
}

func TestLocalClearAll(t *testing.T) {
	s, _ := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})
	other := s.Scope(Owner{DeviceKey: "dev2"})

	_, err := repo.Create(GoalFields{Career: "Tech", Title: "a", TargetDate: "2026-01-01"})
	require.NoError(t, err)
	_, err = other.Create(GoalFields{Career: "Tech", Title: "b", TargetDate: "2026-01-01"})
	require.NoError(t, err)

	require.NoError(t, repo.ClearAll())

	goals, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, goals)

	kept, err := other.List()
	require.NoError(t, err)
	assert.Len(t, kept, 1, "other device scope is untouched")
}

func TestLocalFileShape(t *testing.T) {
	// the on-disk format is one JSON array holding the whole list
	s, dir := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})

	_, err := repo.Create(GoalFields{Career: "Nursing", Title: "Apply to program", TargetDate: "2026-01-01"})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "goals_dev1.json"))
	require.NoError(t, err)

	var goals []models.Goal
	require.NoError(t, json.Unmarshal(raw, &goals))
	require.Len(t, goals, 1)
	assert.Equal(t, "Apply to program", goals[0].Title)
	assert.NotNil(t, goals[0].Tasks)
	assert.Len(t, goals[0].Tasks, 0)
}

func TestSubscribeCancelStopsFeed(t *testing.T) {
	s, _ := newTestLocal(t)
	repo := s.Scope(Owner{DeviceKey: "dev1"})

	ctx, stop := context.WithCancel(context.Background())
	feed, cancel := repo.Subscribe(ctx)
	<-feed

	stop()
	cancel()

	// after teardown the channel closes instead of delivering stale pushes
	select {
	case _, open := <-feed:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("feed did not close after cancel")
	}
}
