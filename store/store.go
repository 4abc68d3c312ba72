package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

var (
	// ErrNotFound means the goal id does not exist in the caller's scope.
	ErrNotFound = errors.New("goal not found")

	// ErrRemoteUnavailable wraps database failures so handlers can map them
	// to a service-unavailable response without retrying.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// ValidationError reports required goal fields that were empty after
// trimming. The mutation that raised it made no state change.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// GoalFields is the writable field set of a goal. Tasks are mutated through
// the task operations, never through Create or Update.
type GoalFields struct {
	Career     string `json:"career"`
	Title      string `json:"title"`
	Details    string `json:"details"`
	TargetDate string `json:"byDate"`
}

func (f *GoalFields) trim() {
	f.Career = strings.TrimSpace(f.Career)
	f.Title = strings.TrimSpace(f.Title)
	f.Details = strings.TrimSpace(f.Details)
	f.TargetDate = strings.TrimSpace(f.TargetDate)
}

// validate trims fields in place and reports the required ones still empty.
func (f *GoalFields) validate() error {
	f.trim()
	var missing []string
	if f.Career == "" {
		missing = append(missing, "career")
	}
	if f.Title == "" {
		missing = append(missing, "title")
	}
	if f.TargetDate == "" {
		missing = append(missing, "byDate")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// GoalRepository is the one interface both persistence modes implement. An
// instance is already bound to a single owner scope; callers never pass the
// owner per operation.
//
// Subscribe pushes the full goal list on every change in the scope until the
// context is done or the returned cancel runs. Task operations are silent
// no-ops when the goal or index has vanished: a stale client may race a
// delete, and last write wins.
type GoalRepository interface {
	Subscribe(ctx context.Context) (<-chan []models.Goal, func())
	List() ([]models.Goal, error)
	Create(fields GoalFields) (models.Goal, error)
	Update(id string, fields GoalFields) (models.Goal, error)
	Delete(id string) error
	ClearAll() error
	AddTask(goalID, text string) error
	ToggleTask(goalID string, index int, completed bool) error
	DeleteTask(goalID string, index int) error
}

// Owner identifies a goal scope: a signed-in account or an anonymous device.
type Owner struct {
	UserID    string
	DeviceKey string
}

func (o Owner) SignedIn() bool { return o.UserID != "" }

// Key is the scope key rows and files are stored under. User and device
// scopes can never collide.
func (o Owner) Key() string {
	if o.SignedIn() {
		return "user:" + o.UserID
	}
	return "device:" + o.DeviceKey
}

func (o Owner) String() string { return o.Key() }

// Selector picks the repository implementation for an owner: remote rows for
// accounts, the device file store otherwise. The choice is made once per
// scope, not at every call site.
type Selector struct {
	local  *LocalStore
	remote *RemoteStore
}

func NewSelector(local *LocalStore, remote *RemoteStore) *Selector {
	return &Selector{local: local, remote: remote}
}

func (s *Selector) For(o Owner) GoalRepository {
	if o.SignedIn() {
		return s.remote.Scope(o)
	}
	return s.local.Scope(o)
}

func remoteErr(err error) error {
	return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
}
