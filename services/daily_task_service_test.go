package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

// memRecords is an in-memory DailyRecordStore for tests.
type memRecords struct {
	recs map[string]models.DailyTaskRecord
}

func newMemRecords() *memRecords {
	return &memRecords{recs: make(map[string]models.DailyTaskRecord)}
}

func (m *memRecords) Load(userID string) (models.DailyTaskRecord, bool, error) {
	rec, ok := m.recs[userID]
	return rec, ok, nil
}

func (m *memRecords) Save(rec *models.DailyTaskRecord) error {
	m.recs[rec.UserID] = *rec
	return nil
}

func newTestScheduler(t *testing.T, at time.Time) (*DailyTaskService, *memRecords) {
	t.Helper()
	records := newMemRecords()
	s := NewDailyTaskService(records, zap.NewNop())
	s.now = func() time.Time { return at }
	s.rng = rand.New(rand.NewSource(1))
	return s, records
}

func TestGetTodaysTasksSamplesThreeDistinct(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s, records := newTestScheduler(t, start)

	tasks, err := s.GetTodaysTasks("u1", "software")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	seen := map[string]bool{}
	for _, task := range tasks {
		assert.Contains(t, TaskCatalog["software"], task)
		assert.False(t, seen[task], "tasks must be distinct")
		seen[task] = true
	}

	rec := records.recs["u1"]
	assert.Equal(t, start, rec.GeneratedAt)
	assert.Empty(t, rec.Completed)
}

func TestGetTodaysTasksSmallCatalogReturnsAll(t *testing.T) {
	TaskCatalog["tiny"] = []string{"only one", "and two"}
	t.Cleanup(func() { delete(TaskCatalog, "tiny") })

	s, _ := newTestScheduler(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	tasks, err := s.GetTodaysTasks("u1", "tiny")
	require.NoError(t, err)
	assert.Equal(t, []string{"only one", "and two"}, tasks)
}

func TestGetTodaysTasksReusedWithinWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s, _ := newTestScheduler(t, start)

	first, err := s.GetTodaysTasks("u1", "software")
	require.NoError(t, err)

	// later the same day, even with a different rng state
	s.now = func() time.Time { return start.Add(23 * time.Hour) }
	s.rng = rand.New(rand.NewSource(99))

	second, err := s.GetTodaysTasks("u1", "software")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetTodaysTasksRotatesAfterWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s, records := newTestScheduler(t, start)

	_, err := s.GetTodaysTasks("u1", "software")
	require.NoError(t, err)
	firstGen := records.recs["u1"].GeneratedAt

	s.now = func() time.Time { return start.Add(25 * time.Hour) }
	tasks, err := s.GetTodaysTasks("u1", "software")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	rec := records.recs["u1"]
	assert.True(t, rec.GeneratedAt.After(firstGen), "regeneration stamps a new time")
	assert.Empty(t, rec.Completed, "completed set starts empty after rotation")
}

func TestCompleteTaskHidesWithoutRenumbering(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s, records := newTestScheduler(t, start)

	first, err := s.GetTodaysTasks("u1", "software")
	require.NoError(t, err)
	require.Len(t, first, 3)

	require.NoError(t, s.CompleteTask("u1", 0))

	visible, err := s.GetTodaysTasks("u1", "software")
	require.NoError(t, err)
	assert.Equal(t, first[1:], visible, "completed task hidden, others unchanged")

	rec := records.recs["u1"]
	assert.Len(t, rec.Tasks, 3, "stored list keeps its length")
	assert.Equal(t, models.IndexSet{0}, rec.Completed)

	t.Run("completion accumulates", func(t *testing.T) {
		require.NoError(t, s.CompleteTask("u1", 2))
		visible, err := s.GetTodaysTasks("u1", "software")
		require.NoError(t, err)
		assert.Equal(t, []string{first[1]}, visible)
	})

	t.Run("repeat completion is harmless", func(t *testing.T) {
		require.NoError(t, s.CompleteTask("u1", 0))
		rec := records.recs["u1"]
		assert.Equal(t, models.IndexSet{0, 2}, rec.Completed)
	})

	t.Run("stale index ignored", func(t *testing.T) {
		require.NoError(t, s.CompleteTask("u1", 99))
		require.NoError(t, s.CompleteTask("missing-user", 0))
	})
}

func TestGetTodaysTasksNoCategory(t *testing.T) {
	s, records := newTestScheduler(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	tasks, err := s.GetTodaysTasks("u1", "")
	require.NoError(t, err)
	assert.Equal(t, []string{PlaceholderTask}, tasks)
	assert.Empty(t, records.recs, "no record persisted for the placeholder")
}

func TestCategoryChangeRotatesImmediately(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s, records := newTestScheduler(t, start)

	_, err := s.GetTodaysTasks("u1", "software")
	require.NoError(t, err)

	// retaking the quiz mid-window swaps the catalog the user draws from
	tasks, err := s.GetTodaysTasks("u1", "health")
	require.NoError(t, err)
	for _, task := range tasks {
		assert.Contains(t, TaskCatalog["health"], task)
	}
	assert.Equal(t, "health", records.recs["u1"].Category)
}
