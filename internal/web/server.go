// Package web serves the portal page and the form actions that drive each
// tab's view controller.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"event-portal/internal/domain"
	"event-portal/internal/view"

	"github.com/gorilla/mux"
)

//go:embed templates/page.html
var pageFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageFS, "templates/page.html"))

type pageData struct {
	View  view.View
	Theme view.Theme
	Toast string
	Body  template.HTML
}

type Server struct {
	tabs *Tabs
	api  http.Handler
	log  *slog.Logger
}

func NewServer(tabs *Tabs, api http.Handler, log *slog.Logger) *Server {
	return &Server{tabs: tabs, api: api, log: log}
}

// Handler returns the portal router. /api is answered by the API handler
// directly, with no artificial latency.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.PathPrefix("/api/").Handler(s.api)
	r.HandleFunc("/", s.page).Methods(http.MethodGet)

	ui := r.PathPrefix("/ui").Methods(http.MethodPost).Subrouter()
	ui.HandleFunc("/view", s.action(s.showView))
	ui.HandleFunc("/events/{id:[0-9]+}/details", s.action(s.eventDetails))
	ui.HandleFunc("/events/{id:[0-9]+}/select", s.action(s.selectEvent))
	ui.HandleFunc("/back", s.action(func(_ context.Context, c *view.Controller, _ *http.Request) { c.BackToEvents() }))
	ui.HandleFunc("/register", s.action(s.register))
	ui.HandleFunc("/register/reset", s.action(func(_ context.Context, c *view.Controller, _ *http.Request) { c.ResetForm() }))
	ui.HandleFunc("/dashboard", s.action(func(ctx context.Context, c *view.Controller, r *http.Request) {
		c.LookupDashboard(ctx, r.PostFormValue("email"))
	}))
	ui.HandleFunc("/admin/login", s.action(func(ctx context.Context, c *view.Controller, r *http.Request) {
		c.AdminLogin(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	}))
	ui.HandleFunc("/admin/logout", s.action(func(ctx context.Context, c *view.Controller, _ *http.Request) { c.AdminLogout(ctx) }))
	ui.HandleFunc("/admin/events", s.action(s.saveEvent))
	ui.HandleFunc("/theme", s.action(s.theme))

	return r
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	ctrl, err := s.tabs.Controller(w, r)
	if err != nil {
		s.log.ErrorContext(r.Context(), "open tab", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	toast := ctrl.TakeToast()
	state := ctrl.Snapshot()

	var body bytes.Buffer
	if err := view.RenderState(&body, state); err != nil {
		s.log.ErrorContext(r.Context(), "render view", "view", state.View, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = pageTmpl.Execute(w, pageData{
		View:  state.View,
		Theme: state.Theme,
		Toast: toast,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		s.log.ErrorContext(r.Context(), "render page", "error", err)
	}
}

type actionFunc func(ctx context.Context, c *view.Controller, r *http.Request)

// action runs fn against the tab's controller and sends the browser back to
// the page.
func (s *Server) action(fn actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		ctrl, err := s.tabs.Controller(w, r)
		if err != nil {
			s.log.ErrorContext(r.Context(), "open tab", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		fn(r.Context(), ctrl, r)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) showView(_ context.Context, c *view.Controller, r *http.Request) {
	if v, ok := view.ParseView(r.PostFormValue("view")); ok {
		c.ShowView(v)
	}
}

func (s *Server) eventDetails(ctx context.Context, c *view.Controller, r *http.Request) {
	if id, ok := pathID(r); ok {
		c.ShowEventDetails(ctx, id)
	}
}

func (s *Server) selectEvent(_ context.Context, c *view.Controller, r *http.Request) {
	if id, ok := pathID(r); ok {
		c.SelectEvent(id)
	}
}

func (s *Server) register(ctx context.Context, c *view.Controller, r *http.Request) {
	c.SubmitRegistration(ctx, view.RegistrationForm{
		EventID:     r.PostFormValue("event_id"),
		StudentName: r.PostFormValue("student_name"),
		Roll:        r.PostFormValue("roll"),
		YearBranch:  r.PostFormValue("year_branch"),
		Tickets:     r.PostFormValue("tickets"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
	})
}

func (s *Server) saveEvent(ctx context.Context, c *view.Controller, r *http.Request) {
	c.SaveEvent(ctx, domain.EventDraft{
		Title:         r.PostFormValue("title"),
		Type:          r.PostFormValue("type"),
		StartDatetime: r.PostFormValue("start_datetime"),
		Venue:         r.PostFormValue("venue"),
		Description:   r.PostFormValue("description"),
	})
}

func (s *Server) theme(_ context.Context, c *view.Controller, r *http.Request) {
	switch v := r.PostFormValue("theme"); v {
	case "", "toggle":
		c.ToggleTheme()
	default:
		c.SetTheme(view.Theme(v))
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}
