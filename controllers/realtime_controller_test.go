package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func wsRequest(t *testing.T, host, origin string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/ws/goals", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Host = host
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	return req
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://pathfinder.example", "staging.pathfinder.example"})

	t.Run("no origin header", func(t *testing.T) {
		assert.True(t, check(wsRequest(t, "api.pathfinder.example", "")))
	})

	t.Run("same host", func(t *testing.T) {
		assert.True(t, check(wsRequest(t, "api.pathfinder.example", "https://api.pathfinder.example")))
	})

	t.Run("configured as url", func(t *testing.T) {
		assert.True(t, check(wsRequest(t, "api.pathfinder.example", "https://pathfinder.example")))
	})

	t.Run("configured as bare host", func(t *testing.T) {
		assert.True(t, check(wsRequest(t, "api.pathfinder.example", "https://staging.pathfinder.example")))
	})

	t.Run("unknown origin refused", func(t *testing.T) {
		assert.False(t, check(wsRequest(t, "api.pathfinder.example", "https://evil.example")))
	})

	t.Run("unparseable origin refused", func(t *testing.T) {
		assert.False(t, check(wsRequest(t, "api.pathfinder.example", "::bad::")))
	})
}

func TestOriginCheckerEmptyAllowlist(t *testing.T) {
	check := originChecker(nil)
	assert.True(t, check(wsRequest(t, "api.pathfinder.example", "http://api.pathfinder.example")))
	assert.False(t, check(wsRequest(t, "api.pathfinder.example", "https://anywhere.example")))
}
