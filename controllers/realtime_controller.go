package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Hazen1Yang/pathfinder-backend/middlewares"
	"github.com/Hazen1Yang/pathfinder-backend/models"
	"github.com/Hazen1Yang/pathfinder-backend/services"
	"github.com/Hazen1Yang/pathfinder-backend/store"
)

type RealtimeController struct {
	Goals    *services.GoalService
	Log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewRealtimeController(goals *services.GoalService, log *zap.Logger, allowedOrigins []string) *RealtimeController {
	return &RealtimeController{
		Goals:    goals,
		Log:      log,
		upgrader: websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)},
	}
}

// originChecker admits same-host browsers, non-browser clients (no Origin
// header), and the configured cross-origin hosts. Everything else is refused
// before the upgrade.
func originChecker(allowed []string) func(*http.Request) bool {
	hosts := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		o = strings.TrimSpace(o)
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			o = u.Host
		}
		if o != "" {
			hosts[strings.ToLower(o)] = struct{}{}
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false
		}
		if strings.EqualFold(u.Host, r.Host) {
			return true
		}
		_, ok := hosts[strings.ToLower(u.Host)]
		return ok
	}
}

// scopeMessage is what the client sends to switch scopes mid-connection:
// a token on sign-in, or a device key (with an empty token) on sign-out.
type scopeMessage struct {
	Token  string `json:"token"`
	Device string `json:"device"`
}

type goalSnapshot struct {
	Kind  string        `json:"kind"`
	Owner string        `json:"owner"`
	Goals []models.Goal `json:"goals"`
}

// GoalsWS streams goal-list snapshots for the caller's scope. When the
// client signs in or out it sends a scope message and the old subscription
// is torn down before the new one starts; the two scopes' lists never mix.
func (rc *RealtimeController) GoalsWS(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)

	conn, err := rc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// rebinds carries scope switches from the read loop to the writer.
	rebinds := make(chan store.Owner, 1)

	go func() {
		defer cancel()
		for {
			var msg scopeMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			next, ok := rc.resolveScope(msg)
			if !ok {
				continue
			}
			select {
			case rebinds <- next:
			case <-ctx.Done():
				return
			}
		}
	}()

	// keep the connection alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		feed, unsubscribe := rc.Goals.Repo(owner).Subscribe(ctx)
		next, open := rc.pump(ctx, conn, owner, feed, rebinds)
		unsubscribe()
		if !open {
			return
		}
		rc.Log.Info("goal feed rebound",
			zap.String("from", owner.Key()), zap.String("to", next.Key()))
		owner = next
	}
}

// pump forwards snapshots for one scope until the connection dies or the
// client asks for a different scope.
func (rc *RealtimeController) pump(ctx context.Context, conn *websocket.Conn, owner store.Owner, feed <-chan []models.Goal, rebinds <-chan store.Owner) (store.Owner, bool) {
	for {
		select {
		case goals, ok := <-feed:
			if !ok {
				return store.Owner{}, false
			}
			models.SortByTargetDate(goals)
			snap := goalSnapshot{Kind: "goals.snapshot", Owner: owner.Key(), Goals: goals}
			if err := conn.WriteJSON(snap); err != nil {
				return store.Owner{}, false
			}
		case next := <-rebinds:
			return next, true
		case <-ctx.Done():
			return store.Owner{}, false
		}
	}
}

func (rc *RealtimeController) resolveScope(msg scopeMessage) (store.Owner, bool) {
	if msg.Token != "" {
		owner, err := middlewares.TokenToOwner(msg.Token)
		if err != nil {
			rc.Log.Warn("rejected feed sign-in", zap.Error(err))
			return store.Owner{}, false
		}
		return owner, true
	}
	if msg.Device != "" {
		return store.Owner{DeviceKey: msg.Device}, true
	}
	return store.Owner{}, false
}
