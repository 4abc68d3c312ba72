package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByTargetDate(t *testing.T) {
	goals := []Goal{
		{Title: "later", TargetDate: "2026-12-01"},
		{Title: "undated"},
		{Title: "soon", TargetDate: "2026-09-15"},
		{Title: "garbage", TargetDate: "someday"},
	}
	SortByTargetDate(goals)

	titles := make([]string, len(goals))
	for i, g := range goals {
		titles[i] = g.Title
	}
	assert.Equal(t, []string{"soon", "later", "undated", "garbage"}, titles)
}

func TestSortByTargetDateStableAmongUndated(t *testing.T) {
	goals := []Goal{
		{Title: "a"},
		{Title: "b"},
		{Title: "c", TargetDate: "2026-01-01"},
	}
	SortByTargetDate(goals)
	assert.Equal(t, "c", goals[0].Title)
	assert.Equal(t, "a", goals[1].Title)
	assert.Equal(t, "b", goals[2].Title)
}

func TestIndexSet(t *testing.T) {
	var s IndexSet
	s = s.Add(2)
	s = s.Add(0)
	s = s.Add(2)

	assert.Equal(t, IndexSet{2, 0}, s)
	assert.True(t, s.Contains(0))
	assert.False(t, s.Contains(1))
}

func TestDailyTaskRecordStale(t *testing.T) {
	gen := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	rec := DailyTaskRecord{GeneratedAt: gen}

	assert.False(t, rec.Stale(gen.Add(23*time.Hour)))
	assert.True(t, rec.Stale(gen.Add(24*time.Hour)))
}

func TestDailyTaskRecordVisible(t *testing.T) {
	rec := DailyTaskRecord{
		Tasks:     StringList{"one", "two", "three"},
		Completed: IndexSet{1},
	}
	assert.Equal(t, []string{"one", "three"}, rec.Visible())

	rec.Completed = rec.Completed.Add(0).Add(2)
	assert.Empty(t, rec.Visible())
}

func TestTaskListScanRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	in := TaskList{{Text: "apply", Completed: true, CreatedAt: created}}

	raw, err := in.Value()
	require.NoError(t, err)

	var out TaskList
	require.NoError(t, out.Scan(raw))
	require.Len(t, out, 1)
	assert.Equal(t, "apply", out[0].Text)
	assert.True(t, out[0].Completed)
	assert.True(t, out[0].CreatedAt.Equal(created))

	var empty TaskList
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, TaskList{}, empty)
}
