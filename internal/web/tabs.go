package web

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"event-portal/internal/view"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	tabSessionName = "portal_tab"
	tabKey         = "tab"
)

// ControllerFactory builds a controller for a new tab. Each controller must
// get its own HTTP client so admin sessions stay per tab.
type ControllerFactory func() *view.Controller

type tab struct {
	ctrl     *view.Controller
	lastSeen time.Time
}

// Tabs maps browser sessions to controllers.
type Tabs struct {
	store   sessions.Store
	factory ControllerFactory
	idleTTL time.Duration
	log     *slog.Logger
	now     func() time.Time

	mu   sync.Mutex
	tabs map[string]*tab
}

func NewTabs(store sessions.Store, factory ControllerFactory, idleTTL time.Duration, log *slog.Logger) *Tabs {
	return &Tabs{
		store:   store,
		factory: factory,
		idleTTL: idleTTL,
		log:     log,
		now:     time.Now,
		tabs:    make(map[string]*tab),
	}
}

// Controller returns the request's tab controller, opening a new tab when the
// cookie is missing or names a tab that no longer exists.
func (t *Tabs) Controller(w http.ResponseWriter, r *http.Request) (*view.Controller, error) {
	sess, _ := t.store.Get(r, tabSessionName)

	if id, ok := sess.Values[tabKey].(string); ok {
		t.mu.Lock()
		tb, found := t.tabs[id]
		if found {
			tb.lastSeen = t.now()
		}
		t.mu.Unlock()
		if found {
			return tb.ctrl, nil
		}
	}

	id := uuid.NewString()
	ctrl := t.factory()
	ctrl.Start(r.Context())

	sess.Values[tabKey] = id
	if err := sess.Save(r, w); err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.tabs[id] = &tab{ctrl: ctrl, lastSeen: t.now()}
	t.mu.Unlock()

	t.log.DebugContext(r.Context(), "tab opened", "tab", id)
	return ctrl, nil
}

// Sweep drops tabs idle for longer than the configured TTL.
func (t *Tabs) Sweep(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cutoff := t.now().Add(-t.idleTTL)

	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for id, tb := range t.tabs {
		if tb.lastSeen.Before(cutoff) {
			delete(t.tabs, id)
			n++
		}
	}
	return n, nil
}

// Len reports the number of open tabs.
func (t *Tabs) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tabs)
}
