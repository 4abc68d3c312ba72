package services

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Hazen1Yang/pathfinder-backend/models"
	"github.com/Hazen1Yang/pathfinder-backend/store"
)

// GoalService fronts the goal repositories. It resolves the owner scope to
// an adapter once per call chain and logs goal-level anomalies; everything
// else is delegated.
type GoalService struct {
	stores *store.Selector
	log    *zap.Logger
}

func NewGoalService(stores *store.Selector, log *zap.Logger) *GoalService {
	return &GoalService{stores: stores, log: log}
}

// Repo exposes the scoped repository, used by the realtime feed.
func (s *GoalService) Repo(owner store.Owner) store.GoalRepository {
	return s.stores.For(owner)
}

func (s *GoalService) List(owner store.Owner) ([]models.Goal, error) {
	goals, err := s.stores.For(owner).List()
	if err != nil {
		return nil, err
	}
	models.SortByTargetDate(goals)
	return goals, nil
}

func (s *GoalService) Create(owner store.Owner, fields store.GoalFields) (models.Goal, error) {
	return s.stores.For(owner).Create(fields)
}

func (s *GoalService) Update(owner store.Owner, id string, fields store.GoalFields) (models.Goal, error) {
	goal, err := s.stores.For(owner).Update(id, fields)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Warn("update of vanished goal", zap.String("owner", owner.Key()), zap.String("goal", id))
	}
	return goal, err
}

func (s *GoalService) Delete(owner store.Owner, id string) error {
	return s.stores.For(owner).Delete(id)
}

func (s *GoalService) ClearAll(owner store.Owner) error {
	return s.stores.For(owner).ClearAll()
}

func (s *GoalService) AddTask(owner store.Owner, goalID, text string) error {
	return s.stores.For(owner).AddTask(goalID, text)
}

func (s *GoalService) ToggleTask(owner store.Owner, goalID string, index int, completed bool) error {
	return s.stores.For(owner).ToggleTask(goalID, index, completed)
}

func (s *GoalService) DeleteTask(owner store.Owner, goalID string, index int) error {
	return s.stores.For(owner).DeleteTask(goalID, index)
}

// AdoptDeviceGoals imports the goals a device accumulated while signed out
// into the caller's account, then clears the device list. The client invokes
// it explicitly after sign-in; goals are never merged behind the user's back.
// Returns the number of goals imported.
func (s *GoalService) AdoptDeviceGoals(userID, deviceKey string) (int, error) {
	device := store.Owner{DeviceKey: deviceKey}
	account := store.Owner{UserID: userID}

	local := s.stores.For(device)
	remote := s.stores.For(account)

	goals, err := local.List()
	if err != nil {
		return 0, err
	}

	adopted := 0
	for _, g := range goals {
		created, err := remote.Create(store.GoalFields{
			Career:     g.Career,
			Title:      g.Title,
			Details:    g.Details,
			TargetDate: g.TargetDate,
		})
		if err != nil {
			// partial import: keep the device list so nothing is lost
			return adopted, err
		}
		if len(g.Tasks) > 0 {
			for i, t := range g.Tasks {
				if err := remote.AddTask(created.ID, t.Text); err != nil {
					return adopted, err
				}
				if t.Completed {
					if err := remote.ToggleTask(created.ID, i, true); err != nil {
						return adopted, err
					}
				}
			}
		}
		adopted++
	}

	if err := local.ClearAll(); err != nil {
		return adopted, err
	}
	s.log.Info("adopted device goals",
		zap.String("user", userID),
		zap.Int("count", adopted))
	return adopted, nil
}
