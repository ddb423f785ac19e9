// Package view drives one visitor's portal session: which view is shown,
// what each view displays and the toast to flash next. All data comes from
// the /api endpoints over an *http.Client.
package view

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"event-portal/internal/domain"
)

// Controller operations never return errors. Failures end up in the toast
// and the controller stays usable.
type Controller struct {
	client  *http.Client
	baseURL string
	log     *slog.Logger

	mu    sync.Mutex
	state State
}

func New(client *http.Client, baseURL string, log *slog.Logger) *Controller {
	return &Controller{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     log,
		state:   State{View: Home, Theme: Light},
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) update(fn func(s *State)) {
	c.mu.Lock()
	fn(&c.state)
	c.mu.Unlock()
}

func (c *Controller) toast(msg string) {
	c.update(func(s *State) { s.Toast = msg })
}

// TakeToast returns the pending toast and clears it.
func (c *Controller) TakeToast() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := c.state.Toast
	c.state.Toast = ""
	return msg
}

// Start shows the home view and loads the catalog.
func (c *Controller) Start(ctx context.Context) {
	c.ShowView(Home)
	c.LoadEvents(ctx)
}

// ShowView makes v the only visible view. Unknown views are ignored.
func (c *Controller) ShowView(v View) {
	if _, ok := views[v]; !ok {
		return
	}
	c.update(func(s *State) { s.View = v })
}

func (c *Controller) LoadEvents(ctx context.Context) {
	var events []domain.Event
	resp, err := c.do(ctx, http.MethodGet, "/api/events", nil)
	if err == nil {
		err = decode(resp, &events)
	}
	if err != nil {
		c.log.ErrorContext(ctx, "load events", "error", err)
		c.toast("Could not load events")
		return
	}

	items, highlights, options := projections(events)
	c.update(func(s *State) {
		s.Events = items
		s.Highlights = highlights
		s.Options = options
	})
}

func (c *Controller) ShowEventDetails(ctx context.Context, id int) {
	resp, err := c.do(ctx, http.MethodGet, "/api/events/"+strconv.Itoa(id), nil)
	if err != nil {
		c.log.ErrorContext(ctx, "load event", "id", id, "error", err)
		c.toast("Could not load event")
		return
	}
	if resp.StatusCode != http.StatusOK {
		drain(resp)
		c.toast("Event not found")
		return
	}

	var ev *domain.Event
	if err := decode(resp, &ev); err != nil {
		c.log.ErrorContext(ctx, "decode event", "id", id, "error", err)
		c.toast("Could not load event")
		return
	}
	if ev == nil {
		c.toast("Event not found")
		return
	}

	details := newDetails(*ev)
	c.update(func(s *State) {
		s.Details = details
		s.View = EventDetails
	})
}

// SelectEvent preselects id in the registration form and shows it.
func (c *Controller) SelectEvent(id int) {
	c.update(func(s *State) {
		s.Form.EventID = strconv.Itoa(id)
		s.View = Register
	})
}

func (c *Controller) BackToEvents() {
	c.ShowView(Events)
}

func (c *Controller) ResetForm() {
	c.update(func(s *State) { s.Form = RegistrationForm{} })
}

type registrationPayload struct {
	StudentName string `json:"studentName"`
	Roll        string `json:"roll"`
	YearBranch  string `json:"yearBranch"`
	Tickets     int    `json:"tickets"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	EventID     int    `json:"id"`
}

type resultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Controller) SubmitRegistration(ctx context.Context, form RegistrationForm) {
	form = trimForm(form)
	c.update(func(s *State) { s.Form = form })

	eventID, _ := strconv.Atoi(form.EventID)
	if form.StudentName == "" || form.Email == "" || eventID == 0 {
		c.toast("Name, email and event are required")
		return
	}

	payload := registrationPayload{
		StudentName: form.StudentName,
		Roll:        form.Roll,
		YearBranch:  form.YearBranch,
		Tickets:     parseTickets(form.Tickets),
		Email:       form.Email,
		Phone:       form.Phone,
		EventID:     eventID,
	}

	var res *resultResponse
	resp, err := c.do(ctx, http.MethodPost, "/api/register", payload)
	if err == nil {
		err = decode(resp, &res)
	}
	if err == nil && res == nil {
		err = errors.New("empty response")
	}
	if err != nil {
		c.log.ErrorContext(ctx, "submit registration", "error", err)
		c.toast("Network error")
		return
	}

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Could not save"
		}
		c.toast("Error: " + msg)
		return
	}

	c.update(func(s *State) {
		s.Toast = "Registration successful"
		s.Form = RegistrationForm{}
		s.View = Home
	})
}

// LookupDashboard shows the registrations made with email.
func (c *Controller) LookupDashboard(ctx context.Context, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		c.toast("Enter email")
		return
	}

	var all []domain.Registration
	resp, err := c.do(ctx, http.MethodGet, "/api/registrations?limit=100", nil)
	if err == nil {
		err = decode(resp, &all)
	}
	if err != nil {
		c.log.ErrorContext(ctx, "lookup registrations", "error", err)
		c.toast("Could not lookup")
		return
	}

	mine := FilterByEmail(all, email)
	c.update(func(s *State) {
		s.Lookup = Lookup{Email: email, Results: mine, Searched: true}
		s.View = Dashboard
	})
}

func (c *Controller) AdminLogin(ctx context.Context, username, password string) {
	body := map[string]string{
		"username": strings.TrimSpace(username),
		"password": password,
	}

	var res *resultResponse
	resp, err := c.do(ctx, http.MethodPost, "/api/admin/login", body)
	if err == nil {
		err = decode(resp, &res)
	}
	if err != nil {
		c.log.ErrorContext(ctx, "admin login", "error", err)
		c.toast("Network error")
		return
	}

	if res == nil || !res.Success {
		c.toast("Login failed")
		return
	}

	c.toast("Welcome Admin")
	c.LoadAdmin(ctx)
	c.ShowView(AdminDashboard)
}

func (c *Controller) AdminLogout(ctx context.Context) {
	if resp, err := c.do(ctx, http.MethodGet, "/api/admin/logout", nil); err != nil {
		c.log.WarnContext(ctx, "admin logout", "error", err)
	} else {
		drain(resp)
	}

	c.update(func(s *State) {
		s.Admin = AdminPanel{}
		s.Toast = "Logged out"
		s.View = Home
	})
}

// LoadAdmin rebuilds the admin panel and fetches every registration.
func (c *Controller) LoadAdmin(ctx context.Context) {
	c.update(func(s *State) { s.Admin = AdminPanel{} })

	var regs []domain.Registration
	resp, err := c.do(ctx, http.MethodGet, "/api/admin/registrations", nil)
	if err == nil {
		if resp.StatusCode != http.StatusOK {
			drain(resp)
			err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		} else {
			err = decode(resp, &regs)
		}
	}
	if err != nil {
		c.log.ErrorContext(ctx, "load admin registrations", "error", err)
		c.update(func(s *State) { s.Admin = AdminPanel{Failed: true} })
		return
	}

	c.update(func(s *State) {
		s.Admin = AdminPanel{Registrations: regs, Loaded: true}
	})
}

// SaveEvent acknowledges a new event draft. The catalog is read-only, so the
// draft is not stored anywhere.
func (c *Controller) SaveEvent(ctx context.Context, draft domain.EventDraft) {
	c.log.InfoContext(ctx, "event draft discarded", "title", draft.Title)
	c.update(func(s *State) {
		s.Toast = "Event Added (Simulated)"
		s.View = Home
	})
}

func (c *Controller) SetTheme(t Theme) {
	if t != Light && t != Dark {
		return
	}
	c.update(func(s *State) { s.Theme = t })
}

func (c *Controller) ToggleTheme() {
	c.update(func(s *State) {
		if s.Theme == Dark {
			s.Theme = Light
		} else {
			s.Theme = Dark
		}
	})
}

func (c *Controller) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.client.Do(req)
}

func decode(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func trimForm(f RegistrationForm) RegistrationForm {
	return RegistrationForm{
		EventID:     strings.TrimSpace(f.EventID),
		StudentName: strings.TrimSpace(f.StudentName),
		Roll:        strings.TrimSpace(f.Roll),
		YearBranch:  strings.TrimSpace(f.YearBranch),
		Tickets:     strings.TrimSpace(f.Tickets),
		Email:       strings.TrimSpace(f.Email),
		Phone:       strings.TrimSpace(f.Phone),
	}
}

// parseTickets defaults an empty field to one. Unparseable input becomes
// zero, which the backend also treats as one.
func parseTickets(s string) int {
	if s == "" {
		return domain.DefaultTickets
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
