package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"event-portal/internal/domain"

	"github.com/gorilla/mux"
)

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// SendJSON is a helper for sending JSON responses
func SendJSON(w http.ResponseWriter, log *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}

func (a *API) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	SendJSON(w, a.log, status, data)
}

// handleForbidden answers admin routes requested without an admin session.
func (a *API) handleForbidden(w http.ResponseWriter, r *http.Request) {
	a.sendJSON(w, http.StatusForbidden, successResponse{Message: "forbidden"})
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListEvents handles /api/events
func (a *API) handleListEvents(w http.ResponseWriter, r *http.Request) {
	a.sendJSON(w, http.StatusOK, a.catalog.List())
}

// handleGetEvent handles /api/events/{id}
func (a *API) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	// The route pattern only admits digits; overflow is treated as unknown.
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err == nil {
		var ev domain.Event
		if ev, err = a.catalog.Get(id); err == nil {
			a.sendJSON(w, http.StatusOK, ev)
			return
		}
	}

	if a.opts.LegacyNotFound {
		a.sendJSON(w, http.StatusOK, nil)
		return
	}
	a.sendJSON(w, http.StatusNotFound, errorResponse{Error: domain.ErrEventNotFound.Error()})
}

// handleRegister handles POST /api/register
func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.sendJSON(w, http.StatusBadRequest, successResponse{Message: "Invalid registration payload"})
		return
	}

	reg := req.registration()
	reg.EventName = a.catalog.Title(reg.EventID)
	reg.CreatedAt = a.opts.Now().Format(domain.CreatedAtLayout)

	if err := a.regs.Append(r.Context(), reg); err != nil {
		a.log.ErrorContext(r.Context(), "failed to save registration", "error", err)
		a.sendJSON(w, http.StatusInternalServerError, successResponse{Message: "Failed to save registration"})
		return
	}

	a.log.InfoContext(r.Context(), "registration saved",
		"event_id", reg.EventID,
		"event_name", reg.EventName,
		"tickets", reg.Tickets,
	)
	a.notifier.NotifyRegistration(r.Context(), reg)

	a.sendJSON(w, http.StatusOK, successResponse{Success: true})
}

// handleAddEvent handles POST /api/admin/events. The catalog is read-only while
// the process runs, so a valid draft is acknowledged and logged, not stored.
func (a *API) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	var req eventDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.sendJSON(w, http.StatusBadRequest, successResponse{Message: "Invalid event payload"})
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := a.validate.Struct(req); err != nil {
		a.sendJSON(w, http.StatusBadRequest, successResponse{Message: "title is required"})
		return
	}

	draft := req.draft()
	a.log.InfoContext(r.Context(), "event draft accepted",
		"title", draft.Title,
		"type", draft.Type,
		"venue", draft.Venue,
	)
	a.sendJSON(w, http.StatusOK, successResponse{Success: true})
}

// handleListRegistrations handles /api/registrations and /api/admin/registrations
func (a *API) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	list, err := a.regs.List(r.Context())
	if err != nil {
		a.log.ErrorContext(r.Context(), "failed to list registrations", "error", err)
		a.sendJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	a.sendJSON(w, http.StatusOK, list)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleAdminLogin handles POST /api/admin/login
func (a *API) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.sendJSON(w, http.StatusBadRequest, successResponse{Message: "username/password required"})
		return
	}

	if err := a.authn.Authenticate(req.Username, req.Password); err != nil {
		a.log.WarnContext(r.Context(), "admin login rejected", "username", req.Username)
		a.sendJSON(w, http.StatusUnauthorized, successResponse{Message: err.Error()})
		return
	}

	if err := a.sessions.Login(w, r, req.Username); err != nil {
		a.log.ErrorContext(r.Context(), "failed to save admin session", "error", err)
		a.sendJSON(w, http.StatusInternalServerError, successResponse{Message: "could not start session"})
		return
	}

	a.sendJSON(w, http.StatusOK, successResponse{Success: true})
}

// handleAdminLogout handles /api/admin/logout
func (a *API) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Logout(w, r); err != nil {
		a.log.WarnContext(r.Context(), "failed to clear admin session", "error", err)
	}
	a.sendJSON(w, http.StatusOK, successResponse{Success: true})
}
