package services

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

// PlaceholderTask is shown when the user has no resolvable career interest
// yet. It is a normal task string, not an error.
const PlaceholderTask = "Take the quiz to set your career direction."

const dailyTaskCount = 3

// DailyRecordStore is the persistence needed by the scheduler: one record
// per user, loaded and saved whole.
type DailyRecordStore interface {
	Load(userID string) (models.DailyTaskRecord, bool, error)
	Save(rec *models.DailyTaskRecord) error
}

// GormDailyRecords keeps daily task records as rows.
type GormDailyRecords struct {
	db *gorm.DB
}

func NewGormDailyRecords(db *gorm.DB) *GormDailyRecords {
	return &GormDailyRecords{db: db}
}

func (s *GormDailyRecords) Load(userID string) (models.DailyTaskRecord, bool, error) {
	var rec models.DailyTaskRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyTaskRecord{}, false, nil
		}
		return models.DailyTaskRecord{}, false, err
	}
	return rec, true, nil
}

func (s *GormDailyRecords) Save(rec *models.DailyTaskRecord) error {
	return s.db.Save(rec).Error
}

// DailyTaskService rotates each user's three suggested micro-tasks. A record
// lives for 24 hours from generation; within the window reads reuse it with
// completed entries hidden, and the first read after the window resamples.
// There is no timer, rotation happens lazily on read.
type DailyTaskService struct {
	records DailyRecordStore
	log     *zap.Logger

	now func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewDailyTaskService(records DailyRecordStore, log *zap.Logger) *DailyTaskService {
	return &DailyTaskService{
		records: records,
		log:     log,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetTodaysTasks returns the tasks to display right now for the user. With
// no resolvable category it returns the instructional placeholder alone.
func (s *DailyTaskService) GetTodaysTasks(userID, category string) ([]string, error) {
	catalog, ok := TaskCatalog[category]
	if !ok || len(catalog) == 0 {
		return []string{PlaceholderTask}, nil
	}

	rec, found, err := s.records.Load(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if found && rec.Category == category && !rec.Stale(now) {
		return rec.Visible(), nil
	}

	tasks := s.sample(catalog)
	fresh := models.DailyTaskRecord{
		UserID:      userID,
		Category:    category,
		Tasks:       tasks,
		GeneratedAt: now,
		Completed:   models.IndexSet{},
	}
	if found {
		// reuse the row so the unique user index holds
		fresh.Model = rec.Model
	}
	if err := s.records.Save(&fresh); err != nil {
		return nil, err
	}
	s.log.Info("rotated daily tasks",
		zap.String("user", userID),
		zap.String("category", category),
		zap.Int("count", len(tasks)))
	return tasks, nil
}

// CompleteTask marks the task at the stored position done for the rest of the
// window. The stored list keeps its length and numbering; the task is only
// hidden from subsequent reads. Unknown positions and missing records are
// ignored, the client may be acting on yesterday's list.
func (s *DailyTaskService) CompleteTask(userID string, index int) error {
	rec, found, err := s.records.Load(userID)
	if err != nil {
		return err
	}
	if !found || rec.Stale(s.now()) || index < 0 || index >= len(rec.Tasks) {
		return nil
	}
	rec.Completed = rec.Completed.Add(index)
	return s.records.Save(&rec)
}

// sample picks up to three distinct tasks uniformly without replacement. A
// catalog of three or fewer is returned whole, in catalog order.
func (s *DailyTaskService) sample(catalog []string) models.StringList {
	if len(catalog) <= dailyTaskCount {
		out := make(models.StringList, len(catalog))
		copy(out, catalog)
		return out
	}
	s.rngMu.Lock()
	perm := s.rng.Perm(len(catalog))
	s.rngMu.Unlock()
	out := make(models.StringList, 0, dailyTaskCount)
	for _, idx := range perm[:dailyTaskCount] {
		out = append(out, catalog[idx])
	}
	return out
}
