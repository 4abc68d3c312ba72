package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

func TestBroadcastCopiesPerSubscriber(t *testing.T) {
	h := newFeedHub()
	a := h.register("scope")
	b := h.register("scope")
	defer h.unregister(a)
	defer h.unregister(b)

	h.broadcast("scope", []models.Goal{{Title: "one"}, {Title: "two"}})

	ga := <-a.ch
	gb := <-b.ch
	require.Len(t, ga, 2)
	require.Len(t, gb, 2)
	assert.NotSame(t, &ga[0], &gb[0], "subscribers must not share a backing array")

	// one reader reordering its snapshot must not reach the other
	ga[0], ga[1] = ga[1], ga[0]
	assert.Equal(t, "one", gb[0].Title)
	assert.Equal(t, "two", gb[1].Title)
}

func TestSubscribeInitialSendDoesNotBlock(t *testing.T) {
	h := newFeedHub()

	// a mutation broadcasts into the scope while the initial list is still
	// being loaded, so the buffer is already full when subscribe sends
	load := func() ([]models.Goal, error) {
		h.broadcast("scope", []models.Goal{{Title: "raced"}})
		return []models.Goal{}, nil
	}

	type sub struct {
		feed   <-chan []models.Goal
		cancel func()
	}
	done := make(chan sub, 1)
	go func() {
		feed, cancel := subscribe(context.Background(), h, "scope", load)
		done <- sub{feed: feed, cancel: cancel}
	}()

	select {
	case s := <-done:
		defer s.cancel()
		goals := <-s.feed
		require.Len(t, goals, 1)
		assert.Equal(t, "raced", goals[0].Title, "the fresher broadcast wins the buffer")
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe did not return with a full buffer")
	}
}
