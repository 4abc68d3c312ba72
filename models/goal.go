package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is one entry in a goal's checklist. Tasks live inside the goal
// document, never in their own table.
type Task struct {
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskList stores the nested checklist as a single JSON column so the row
// mirrors the document shape the clients read and write.
type TaskList []Task

func (t TaskList) Value() (driver.Value, error) {
	if t == nil {
		t = TaskList{}
	}
	return json.Marshal(t)
}

func (t *TaskList) Scan(value interface{}) error {
	if value == nil {
		*t = TaskList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported task list column type")
	}
	return json.Unmarshal(raw, t)
}

// Goal is a career milestone owned by exactly one scope: a signed-in account
// or an anonymous device. OwnerID carries that scope key and never leaves the
// server.
type Goal struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	OwnerID    string    `gorm:"index;not null" json:"-"`
	Career     string    `gorm:"not null" json:"career"`
	Title      string    `gorm:"not null" json:"title"`
	Details    string    `json:"details"`
	TargetDate string    `json:"byDate"` // YYYY-MM-DD
	Tasks      TaskList  `gorm:"type:jsonb" json:"tasks"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// SortByTargetDate orders goals soonest-first. Goals with a missing or
// unparseable date sort after every dated goal.
func SortByTargetDate(goals []Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		di, oki := parseDay(goals[i].TargetDate)
		dj, okj := parseDay(goals[j].TargetDate)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return di.Before(dj)
	})
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
