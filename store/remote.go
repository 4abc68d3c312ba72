package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

// RemoteStore keeps signed-in users' goals as rows scoped by owner key. Every
// mutation re-reads the scope and broadcasts the fresh list, which is the
// echo subscribers reconcile optimistic updates against.
type RemoteStore struct {
	db    *gorm.DB
	feeds *feedHub
}

func NewRemoteStore(db *gorm.DB) *RemoteStore {
	return &RemoteStore{db: db, feeds: newFeedHub()}
}

// Scope binds the store to one account.
func (s *RemoteStore) Scope(o Owner) GoalRepository {
	return &remoteGoals{store: s, owner: o}
}

type remoteGoals struct {
	store *RemoteStore
	owner Owner
}

func (r *remoteGoals) Subscribe(ctx context.Context) (<-chan []models.Goal, func()) {
	return subscribe(ctx, r.store.feeds, r.owner.Key(), r.List)
}

func (r *remoteGoals) List() ([]models.Goal, error) {
	var goals []models.Goal
	err := r.store.db.
		Where("owner_id = ?", r.owner.Key()).
		Order("created_at desc").
		Find(&goals).Error
	if err != nil {
		return nil, remoteErr(err)
	}
	return goals, nil
}

// echo pushes the current list to subscribers after a mutation. Failing to
// re-read is not a mutation failure; the next successful change catches the
// subscribers up.
func (r *remoteGoals) echo() {
	if goals, err := r.List(); err == nil {
		r.store.feeds.broadcast(r.owner.Key(), goals)
	}
}

func (r *remoteGoals) Create(fields GoalFields) (models.Goal, error) {
	if err := fields.validate(); err != nil {
		return models.Goal{}, err
	}
	goal := models.Goal{
		OwnerID:    r.owner.Key(),
		Career:     fields.Career,
		Title:      fields.Title,
		Details:    fields.Details,
		TargetDate: fields.TargetDate,
		Tasks:      models.TaskList{},
	}
	if err := r.store.db.Create(&goal).Error; err != nil {
		return models.Goal{}, remoteErr(err)
	}
	r.echo()
	return goal, nil
}

func (r *remoteGoals) get(id string) (models.Goal, error) {
	var goal models.Goal
	err := r.store.db.
		Where("id = ? AND owner_id = ?", id, r.owner.Key()).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Goal{}, ErrNotFound
		}
		return models.Goal{}, remoteErr(err)
	}
	return goal, nil
}

func (r *remoteGoals) Update(id string, fields GoalFields) (models.Goal, error) {
	if err := fields.validate(); err != nil {
		return models.Goal{}, err
	}
	goal, err := r.get(id)
	if err != nil {
		return models.Goal{}, err
	}
	goal.Career = fields.Career
	goal.Title = fields.Title
	goal.Details = fields.Details
	goal.TargetDate = fields.TargetDate
	if err := r.store.db.Save(&goal).Error; err != nil {
		return models.Goal{}, remoteErr(err)
	}
	r.echo()
	return goal, nil
}

func (r *remoteGoals) Delete(id string) error {
	err := r.store.db.
		Where("id = ? AND owner_id = ?", id, r.owner.Key()).
		Delete(&models.Goal{}).Error
	if err != nil {
		return remoteErr(err)
	}
	r.echo()
	return nil
}

// ClearAll removes every goal in the scope, one delete per row, all in
// flight at once. Irreversible; callers confirm upstream and never retry.
func (r *remoteGoals) ClearAll() error {
	goals, err := r.List()
	if err != nil {
		return err
	}
	var g errgroup.Group
	for _, goal := range goals {
		id := goal.ID
		g.Go(func() error {
			return r.store.db.
				Where("id = ? AND owner_id = ?", id, r.owner.Key()).
				Delete(&models.Goal{}).Error
		})
	}
	if err := g.Wait(); err != nil {
		return remoteErr(err)
	}
	r.echo()
	return nil
}

func (r *remoteGoals) AddTask(goalID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &ValidationError{Fields: []string{"text"}}
	}
	return r.mutateTasks(goalID, func(g *models.Goal) {
		g.Tasks = append(g.Tasks, models.Task{Text: text, CreatedAt: time.Now().UTC()})
	})
}

func (r *remoteGoals) ToggleTask(goalID string, index int, completed bool) error {
	return r.mutateTasks(goalID, func(g *models.Goal) {
		if index < 0 || index >= len(g.Tasks) {
			return
		}
		g.Tasks[index].Completed = completed
	})
}

func (r *remoteGoals) DeleteTask(goalID string, index int) error {
	return r.mutateTasks(goalID, func(g *models.Goal) {
		if index < 0 || index >= len(g.Tasks) {
			return
		}
		g.Tasks = append(g.Tasks[:index], g.Tasks[index+1:]...)
	})
}

// mutateTasks rewrites one goal's task column. A goal missing from the scope
// is a silent no-op, matching the local adapter.
func (r *remoteGoals) mutateTasks(goalID string, fn func(*models.Goal)) error {
	goal, err := r.get(goalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	fn(&goal)
	if err := r.store.db.Save(&goal).Error; err != nil {
		return remoteErr(err)
	}
	r.echo()
	return nil
}
