// Package mockapi is the portal's request router: a fixed, ordered route
// table answering the /api endpoints, and a RoundTripper that serves those
// routes in-process after an artificial network delay.
package mockapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"event-portal/internal/auth"
	"event-portal/internal/domain"
	"event-portal/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Catalog interface {
	List() []domain.Event
	Get(id int) (domain.Event, error)
	// Title is "" for unknown ids.
	Title(id int) string
}

type Registrations interface {
	Append(ctx context.Context, reg domain.Registration) error
	List(ctx context.Context) ([]domain.Registration, error)
}

type Notifier interface {
	NotifyRegistration(ctx context.Context, reg domain.Registration)
}

// Options tunes behaviour that differs between legacy clients and the
// hardened defaults.
type Options struct {
	// LegacyNotFound answers unknown event ids with 200 and a null body
	// instead of 404.
	LegacyNotFound bool
	// Now stamps Registration.CreatedAt. Defaults to time.Now.
	Now func() time.Time
}

type API struct {
	catalog  Catalog
	regs     Registrations
	notifier Notifier
	authn    auth.Authenticator
	sessions *auth.Sessions
	log      *slog.Logger
	opts     Options
	validate *validator.Validate
}

func New(
	catalog Catalog,
	regs Registrations,
	notifier Notifier,
	authn auth.Authenticator,
	sessions *auth.Sessions,
	log *slog.Logger,
	opts Options,
) *API {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &API{
		catalog:  catalog,
		regs:     regs,
		notifier: notifier,
		authn:    authn,
		sessions: sessions,
		log:      log,
		opts:     opts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Route maps a method and a mux path template to a handler. An empty Method
// matches any method.
type Route struct {
	Name    string
	Method  string
	Path    string
	Handler http.Handler
}

// Routes returns the dispatch table in match order.
func (a *API) Routes() []Route {
	return []Route{
		{Name: "health", Method: http.MethodGet, Path: "/api/health", Handler: http.HandlerFunc(a.handleHealth)},
		{Name: "events", Path: "/api/events", Handler: http.HandlerFunc(a.handleListEvents)},
		{Name: "event", Path: "/api/events/{id:[0-9]+}", Handler: http.HandlerFunc(a.handleGetEvent)},
		{Name: "register", Method: http.MethodPost, Path: "/api/register", Handler: http.HandlerFunc(a.handleRegister)},
		{Name: "registrations", Path: "/api/registrations", Handler: http.HandlerFunc(a.handleListRegistrations)},
		{Name: "admin-login", Method: http.MethodPost, Path: "/api/admin/login", Handler: http.HandlerFunc(a.handleAdminLogin)},
		{Name: "admin-logout", Path: "/api/admin/logout", Handler: http.HandlerFunc(a.handleAdminLogout)},
		{
			Name:    "admin-registrations",
			Method:  http.MethodGet,
			Path:    "/api/admin/registrations",
			Handler: a.adminOnly(http.HandlerFunc(a.handleListRegistrations)),
		},
		{
			Name:    "admin-events",
			Method:  http.MethodPost,
			Path:    "/api/admin/events",
			Handler: a.adminOnly(http.HandlerFunc(a.handleAddEvent)),
		},
	}
}

func (a *API) adminOnly(next http.Handler) http.Handler {
	return middleware.AdminOnly(a.sessions, http.HandlerFunc(a.handleForbidden))(next)
}

// Handler builds the router for the route table.
func (a *API) Handler() http.Handler {
	return NewRouter(a.Routes(), a.log)
}

// NewRouter registers routes in order; the first matching route wins and
// anything unmatched, including a method mismatch, is a 404.
func NewRouter(routes []Route, log *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	for _, rt := range routes {
		route := r.Handle(rt.Path, rt.Handler).Name(rt.Name)
		if rt.Method != "" {
			route.Methods(rt.Method)
		}
	}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SendJSON(w, log, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	return r
}
