package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

// LocalStore keeps each anonymous device's goals in one JSON file holding the
// whole list, rewritten on every mutation. A file that is missing or does not
// parse reads as an empty list; that is never an error, the device simply has
// no goals yet.
type LocalStore struct {
	dir   string
	mu    sync.Mutex
	feeds *feedHub
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir, feeds: newFeedHub()}, nil
}

// Scope binds the store to one device key.
func (s *LocalStore) Scope(o Owner) GoalRepository {
	return &localGoals{store: s, owner: o}
}

func (s *LocalStore) path(o Owner) string {
	name := "goals_" + sanitizeKey(o.DeviceKey) + ".json"
	return filepath.Join(s.dir, name)
}

func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}

type localGoals struct {
	store *LocalStore
	owner Owner
}

func (l *localGoals) load() []models.Goal {
	raw, err := os.ReadFile(l.store.path(l.owner))
	if err != nil {
		return []models.Goal{}
	}
	var goals []models.Goal
	if err := json.Unmarshal(raw, &goals); err != nil {
		return []models.Goal{}
	}
	return goals
}

func (l *localGoals) save(goals []models.Goal) error {
	raw, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	if err := os.WriteFile(l.store.path(l.owner), raw, 0o644); err != nil {
		return err
	}
	l.store.feeds.broadcast(l.owner.Key(), goals)
	return nil
}

func (l *localGoals) Subscribe(ctx context.Context) (<-chan []models.Goal, func()) {
	return subscribe(ctx, l.store.feeds, l.owner.Key(), l.List)
}

func (l *localGoals) List() ([]models.Goal, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.load(), nil
}

func (l *localGoals) Create(fields GoalFields) (models.Goal, error) {
	if err := fields.validate(); err != nil {
		return models.Goal{}, err
	}
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	now := time.Now().UTC()
	goal := models.Goal{
		ID:         uuid.NewString(),
		OwnerID:    l.owner.Key(),
		Career:     fields.Career,
		Title:      fields.Title,
		Details:    fields.Details,
		TargetDate: fields.TargetDate,
		Tasks:      models.TaskList{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	goals := append(l.load(), goal)
	if err := l.save(goals); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (l *localGoals) Update(id string, fields GoalFields) (models.Goal, error) {
	if err := fields.validate(); err != nil {
		return models.Goal{}, err
	}
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	goals := l.load()
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals[i].Career = fields.Career
		goals[i].Title = fields.Title
		goals[i].Details = fields.Details
		goals[i].TargetDate = fields.TargetDate
		goals[i].UpdatedAt = time.Now().UTC()
		if err := l.save(goals); err != nil {
			return models.Goal{}, err
		}
		return goals[i], nil
	}
	return models.Goal{}, ErrNotFound
}

func (l *localGoals) Delete(id string) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	goals := l.load()
	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(goals) {
		// deleting a vanished goal is fine
		return nil
	}
	return l.save(kept)
}

func (l *localGoals) ClearAll() error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.save([]models.Goal{})
}

func (l *localGoals) AddTask(goalID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &ValidationError{Fields: []string{"text"}}
	}
	return l.mutateTasks(goalID, func(g *models.Goal) {
		g.Tasks = append(g.Tasks, models.Task{Text: text, CreatedAt: time.Now().UTC()})
	})
}

func (l *localGoals) ToggleTask(goalID string, index int, completed bool) error {
	return l.mutateTasks(goalID, func(g *models.Goal) {
		if index < 0 || index >= len(g.Tasks) {
			return
		}
		g.Tasks[index].Completed = completed
	})
}

func (l *localGoals) DeleteTask(goalID string, index int) error {
	return l.mutateTasks(goalID, func(g *models.Goal) {
		if index < 0 || index >= len(g.Tasks) {
			return
		}
		g.Tasks = append(g.Tasks[:index], g.Tasks[index+1:]...)
	})
}

// mutateTasks applies fn to the named goal and rewrites the file. A missing
// goal is a silent no-op: the goal may have been removed elsewhere and stale
// task edits lose.
func (l *localGoals) mutateTasks(goalID string, fn func(*models.Goal)) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	goals := l.load()
	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}
		fn(&goals[i])
		goals[i].UpdatedAt = time.Now().UTC()
		return l.save(goals)
	}
	return nil
}
