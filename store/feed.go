package store

import (
	"context"
	"sync"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

// feedHub fans goal-list snapshots out to subscribers, keyed by owner scope.
// Channels are buffered to one snapshot; when a subscriber lags, the stale
// snapshot is replaced so readers always wake to the latest list.
type feedHub struct {
	mu   sync.RWMutex
	subs map[string]map[*feedSub]struct{}
}

type feedSub struct {
	scope string
	ch    chan []models.Goal
}

func newFeedHub() *feedHub {
	return &feedHub{subs: make(map[string]map[*feedSub]struct{})}
}

func (h *feedHub) register(scope string) *feedSub {
	s := &feedSub{scope: scope, ch: make(chan []models.Goal, 1)}
	h.mu.Lock()
	if h.subs[scope] == nil {
		h.subs[scope] = make(map[*feedSub]struct{})
	}
	h.subs[scope][s] = struct{}{}
	h.mu.Unlock()
	return s
}

func (h *feedHub) unregister(s *feedSub) {
	h.mu.Lock()
	if set := h.subs[s.scope]; set != nil {
		if _, ok := set[s]; ok {
			delete(set, s)
			close(s.ch)
		}
		if len(set) == 0 {
			delete(h.subs, s.scope)
		}
	}
	h.mu.Unlock()
}

func (h *feedHub) broadcast(scope string, goals []models.Goal) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs[scope] {
		// each subscriber gets its own copy; readers sort snapshots in place
		snap := make([]models.Goal, len(goals))
		copy(snap, goals)
		select {
		case s.ch <- snap:
		default:
			// drop the unread snapshot, keep the newest
			select {
			case <-s.ch:
			default:
			}
			select {
			case s.ch <- snap:
			default:
			}
		}
	}
}

// subscribe wires a hub subscription to a context and an initial snapshot
// loader. Both adapters share it so Subscribe behaves identically in either
// mode: current list first, then one push per change.
func subscribe(ctx context.Context, h *feedHub, scope string, load func() ([]models.Goal, error)) (<-chan []models.Goal, func()) {
	s := h.register(scope)
	done := make(chan struct{})

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.unregister(s)
			close(done)
		})
	}

	if goals, err := load(); err == nil {
		select {
		case s.ch <- goals:
		default:
			// a broadcast landed between register and load; whatever sits
			// in the buffer is at least as fresh as what we just read
		}
	}

	if ctx != nil {
		go func() {
			select {
			case <-ctx.Done():
				cancel()
			case <-done:
			}
		}()
	}
	return s.ch, cancel
}
