package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"event-portal/internal/auth"
	"event-portal/internal/catalog"
	"event-portal/internal/domain"
	"event-portal/internal/mockapi"
	"event-portal/internal/storage"
	"event-portal/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopNotifier struct{}

func (nopNotifier) NotifyRegistration(context.Context, domain.Registration) {}

type portal struct {
	srv  *httptest.Server
	tabs *Tabs
	regs *storage.RegistrationStore
}

func newPortal(t *testing.T) *portal {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := auth.NewSessions([]byte("0123456789abcdef0123456789abcdef"))
	regs := storage.NewRegistrationStore(storage.NewMemoryKV())
	api := mockapi.New(cat, regs, nopNotifier{}, auth.Open{}, sessions, log, mockapi.Options{}).Handler()

	transport := mockapi.NewTransport(api, 0)
	tabs := NewTabs(sessions.Store(), func() *view.Controller {
		return view.New(transport.Client(), mockapi.BaseURL, log)
	}, time.Hour, log)

	srv := httptest.NewServer(NewServer(tabs, api, log).Handler())
	t.Cleanup(srv.Close)

	return &portal{srv: srv, tabs: tabs, regs: regs}
}

// browser returns a client with its own cookie jar, i.e. a separate tab.
func (p *portal) browser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func (p *portal) get(t *testing.T, c *http.Client) string {
	t.Helper()
	resp, err := c.Get(p.srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// post submits a form action and returns the page it redirects to.
func (p *portal) post(t *testing.T, c *http.Client, path string, form url.Values) string {
	t.Helper()
	resp, err := c.PostForm(p.srv.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/", resp.Request.URL.Path, "actions redirect to the page")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestServer_HomePage(t *testing.T) {
	p := newPortal(t)
	c := p.browser(t)

	page := p.get(t, c)

	assert.Contains(t, page, `data-view="home"`)
	assert.Contains(t, page, "Robo-Race")
	assert.Equal(t, 1, p.tabs.Len())

	p.get(t, c)
	assert.Equal(t, 1, p.tabs.Len(), "cookie keeps the same tab")
}

func TestServer_EventFlow(t *testing.T) {
	p := newPortal(t)
	c := p.browser(t)
	p.get(t, c)

	page := p.post(t, c, "/ui/view", url.Values{"view": {"events"}})
	assert.Contains(t, page, `data-view="events"`)
	assert.Contains(t, page, "Cricket Tournament")

	page = p.post(t, c, "/ui/events/1/details", nil)
	assert.Contains(t, page, `data-view="eventDetails"`)
	assert.Contains(t, page, "₹100")

	page = p.post(t, c, "/ui/events/999/details", nil)
	assert.Contains(t, page, "Event not found")
	assert.Contains(t, page, `data-view="eventDetails"`, "view is unchanged")

	page = p.post(t, c, "/ui/back", nil)
	assert.Contains(t, page, `data-view="events"`)

	page = p.post(t, c, "/ui/events/3/select", nil)
	assert.Contains(t, page, `data-view="register"`)
	assert.Contains(t, page, `<option value="3" selected>Sargam: Singing</option>`)
}

func TestServer_Register(t *testing.T) {
	p := newPortal(t)
	c := p.browser(t)
	p.get(t, c)

	page := p.post(t, c, "/ui/register", url.Values{
		"event_id":     {"3"},
		"student_name": {"Asha"},
		"email":        {"a@x.com"},
	})
	assert.Contains(t, page, "Registration successful")
	assert.Contains(t, page, `data-view="home"`)

	list, err := p.regs.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sargam: Singing", list[0].EventName)
	assert.Equal(t, 1, list[0].Tickets)

	page = p.get(t, c)
	assert.NotContains(t, page, "Registration successful", "toasts are shown once")

	page = p.post(t, c, "/ui/dashboard", url.Values{"email": {"A@X.COM"}})
	assert.Contains(t, page, `data-view="dashboard"`)
	assert.Contains(t, page, "Sargam: Singing")
	assert.Contains(t, page, "1 Tickets")
}

func TestServer_Register_Validation(t *testing.T) {
	p := newPortal(t)
	c := p.browser(t)
	p.get(t, c)
	p.post(t, c, "/ui/view", url.Values{"view": {"register"}})

	page := p.post(t, c, "/ui/register", url.Values{"event_id": {"1"}, "email": {"a@x.com"}})
	assert.Contains(t, page, "Name, email and event are required")
	assert.Contains(t, page, `value="a@x.com"`, "form is kept")

	page = p.post(t, c, "/ui/register/reset", nil)
	assert.NotContains(t, page, `value="a@x.com"`)

	list, err := p.regs.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestServer_AdminPerTab(t *testing.T) {
	p := newPortal(t)
	ctx := context.Background()
	require.NoError(t, p.regs.Append(ctx, domain.Registration{
		EventID: 2, StudentName: "<b>Ravi</b>", Email: "r@x.com", Tickets: 2, EventName: "Robo-Race",
	}))

	admin := p.browser(t)
	p.get(t, admin)
	page := p.post(t, admin, "/ui/admin/login", url.Values{"username": {"x"}, "password": {"y"}})
	assert.Contains(t, page, "Welcome Admin")
	assert.Contains(t, page, `data-view="adminDashboard"`)
	assert.Contains(t, page, "&lt;b&gt;Ravi&lt;/b&gt;")
	assert.NotContains(t, page, "<b>Ravi</b>")

	other := p.browser(t)
	p.get(t, other)
	page = p.post(t, other, "/ui/view", url.Values{"view": {"adminDashboard"}})
	assert.NotContains(t, page, "Ravi", "another tab has no admin session")

	page = p.post(t, admin, "/ui/admin/events", url.Values{"title": {"Dance Off"}})
	assert.Contains(t, page, "Event Added (Simulated)")
	assert.Contains(t, page, `data-view="home"`)
	assert.NotContains(t, page, "Dance Off")

	page = p.post(t, admin, "/ui/admin/logout", nil)
	assert.Contains(t, page, "Logged out")
}

func TestServer_Theme(t *testing.T) {
	p := newPortal(t)
	c := p.browser(t)

	assert.NotContains(t, p.get(t, c), `class="theme-dark"`)

	page := p.post(t, c, "/ui/theme", url.Values{"theme": {"toggle"}})
	assert.Contains(t, page, `class="theme-dark"`)

	page = p.post(t, c, "/ui/theme", url.Values{"theme": {"light"}})
	assert.NotContains(t, page, `class="theme-dark"`)
}

func TestServer_UnknownView(t *testing.T) {
	p := newPortal(t)
	c := p.browser(t)
	p.get(t, c)

	page := p.post(t, c, "/ui/view", url.Values{"view": {"nowhere"}})
	assert.Contains(t, page, `data-view="home"`)
}

func TestServer_APIPassThrough(t *testing.T) {
	p := newPortal(t)

	resp, err := http.Get(p.srv.URL + "/api/events/2")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `"title":"Robo-Race"`))
}
