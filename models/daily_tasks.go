package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// StringList is a JSON-encoded list column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// IndexSet records positions into a stored task list. Kept as a list column;
// membership is checked with Contains so duplicates are harmless.
type IndexSet []int

func (s IndexSet) Value() (driver.Value, error) {
	if s == nil {
		s = IndexSet{}
	}
	return json.Marshal(s)
}

func (s *IndexSet) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func (s IndexSet) Contains(i int) bool {
	for _, v := range s {
		if v == i {
			return true
		}
	}
	return false
}

// Add unions an index into the set.
func (s IndexSet) Add(i int) IndexSet {
	if s.Contains(i) {
		return s
	}
	return append(s, i)
}

func scanJSON(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported json column type")
	}
	return json.Unmarshal(raw, dst)
}

// DailyTaskRecord is one row per user holding today's suggested micro-tasks.
// The row is regenerated wholesale once it is older than 24 hours; completed
// indices accumulate for the lifetime of the row and are never renumbered.
type DailyTaskRecord struct {
	gorm.Model
	UserID      string     `gorm:"uniqueIndex;not null"`
	Category    string     `gorm:"not null"`
	Tasks       StringList `gorm:"type:jsonb"`
	GeneratedAt time.Time  `gorm:"not null"`
	Completed   IndexSet   `gorm:"type:jsonb"`
}

// Stale reports whether the record has aged out of its 24-hour window.
func (r DailyTaskRecord) Stale(now time.Time) bool {
	return now.Sub(r.GeneratedAt) >= 24*time.Hour
}

// Visible returns the stored tasks minus the completed ones, preserving
// order. Completed tasks stay in Tasks for the rest of the window; they are
// only hidden from display.
func (r DailyTaskRecord) Visible() []string {
	out := make([]string, 0, len(r.Tasks))
	for i, t := range r.Tasks {
		if !r.Completed.Contains(i) {
			out = append(out, t)
		}
	}
	return out
}
