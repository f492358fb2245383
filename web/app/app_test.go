package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JaimeStill/loyalty-lab/internal/formdata"
	"github.com/JaimeStill/loyalty-lab/internal/registrations"
	"github.com/JaimeStill/loyalty-lab/pkg/module"
	"github.com/JaimeStill/loyalty-lab/pkg/pagination"
	"github.com/JaimeStill/loyalty-lab/web/app"
	"github.com/google/uuid"
)

type fakeRegistrations struct {
	mu        sync.Mutex
	items     map[uuid.UUID]registrations.Registration
	createErr error
}

func newFakeRegistrations() *fakeRegistrations {
	return &fakeRegistrations{items: make(map[uuid.UUID]registrations.Registration)}
}

func (f *fakeRegistrations) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[registrations.Registration], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var data []registrations.Registration
	for _, r := range f.items {
		data = append(data, r)
	}
	result := pagination.NewPageResult(data, len(data), 1, len(data)+1)
	return &result, nil
}

func (f *fakeRegistrations) Find(ctx context.Context, id uuid.UUID) (*registrations.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.items[id]
	if !ok {
		return nil, registrations.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRegistrations) Create(ctx context.Context, cmd registrations.CreateCommand) (*registrations.Registration, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r := registrations.Registration{
		ID:          uuid.New(),
		PhoneNumber: cmd.PhoneNumber,
		Name:        cmd.Name,
		Birthday:    cmd.Birthday,
		Email:       cmd.Email,
		CreatedAt:   time.Now(),
	}
	f.items[r.ID] = r
	return &r, nil
}

type testApp struct {
	server   *httptest.Server
	client   *http.Client
	sessions *formdata.Sessions
	regs     *fakeRegistrations
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := formdata.NewSessions(time.Hour, 0, logger)

	cfg := &formdata.Config{MaxFormSize: "1KB"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	regs := newFakeRegistrations()
	m, err := app.NewModule("/app", sessions, cfg, regs, logger)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{server: srv, client: client, sessions: sessions, regs: regs}
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func (a *testApp) post(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := a.client.PostForm(a.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestRoutes(t *testing.T) {
	table, err := app.Routes()
	if err != nil {
		t.Fatalf("Routes() error = %v", err)
	}

	want := []struct {
		path string
		name string
	}{
		{"/", app.RouteLoyalty},
		{"/register", app.RouteRegister},
		{"/summary", app.RouteSummary},
	}

	routes := table.Routes()
	if len(routes) != len(want) {
		t.Fatalf("len(Routes()) = %d, want %d", len(routes), len(want))
	}
	for i, w := range want {
		if routes[i].Path != w.path || routes[i].Name != w.name {
			t.Errorf("routes[%d] = %s %q, want %s %q", i, routes[i].Path, routes[i].Name, w.path, w.name)
		}
	}
}

func TestRoutes_DistinctViews(t *testing.T) {
	table, err := app.Routes()
	if err != nil {
		t.Fatalf("Routes() error = %v", err)
	}

	seen := make(map[string]string)
	for _, route := range table.Routes() {
		if other, ok := seen[route.View.Template]; ok {
			t.Errorf("%s and %s share template %q", other, route.Path, route.View.Template)
		}
		seen[route.View.Template] = route.Path

		got, err := table.Resolve(route.Path)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", route.Path, err)
			continue
		}
		if got.View.Template != route.View.Template {
			t.Errorf("Resolve(%q) template = %q, want %q", route.Path, got.View.Template, route.View.Template)
		}
	}

	if len(seen) != 3 {
		t.Errorf("distinct templates = %d, want 3", len(seen))
	}
}

func TestPages_Render(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		path  string
		title string
		marks []string
	}{
		{"/app", "Loyalty Program", []string{`name="phone_number"`, `action="/app"`}},
		{"/app/register", "Register", []string{`name="name"`, `name="birthday"`, `name="email"`, `action="/app/register"`}},
		{"/app/summary", "Summary", []string{"<dt>Phone number</dt>", `action="/app/summary"`}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := a.get(t, tt.path)

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}
			if !strings.Contains(body, "<title>"+tt.title+" | Loyalty</title>") {
				t.Errorf("missing title %q", tt.title)
			}
			for _, m := range tt.marks {
				if !strings.Contains(body, m) {
					t.Errorf("body missing %q", m)
				}
			}
			if !strings.Contains(body, `href="/app/app.css"`) {
				t.Error("stylesheet link not resolved against base path")
			}
		})
	}
}

func TestPages_NavMarksCurrent(t *testing.T) {
	a := newTestApp(t)

	_, body := a.get(t, "/app/register")

	if !strings.Contains(body, `<a href="/app/register" aria-current="page">Register</a>`) {
		t.Errorf("register link not marked current:\n%s", body)
	}
	if strings.Contains(body, `<a href="/app" aria-current="page">`) {
		t.Error("loyalty link marked current on register page")
	}
}

func TestPages_NotFound(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/app/unknown", "/app/register/extra"} {
		t.Run(path, func(t *testing.T) {
			resp, body := a.get(t, path)

			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
			}
			if !strings.Contains(body, "<title>Not Found | Loyalty</title>") {
				t.Errorf("not found view not rendered:\n%s", body)
			}
		})
	}
}

func TestPages_MethodNotAllowed(t *testing.T) {
	a := newTestApp(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			req, _ := http.NewRequest(method, a.server.URL+"/app/register", nil)
			resp, err := a.client.Do(req)
			if err != nil {
				t.Fatalf("%s: %v", method, err)
			}
			resp.Body.Close()

			if resp.StatusCode != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
			}
			if allow := resp.Header.Get("Allow"); allow != "GET, HEAD, POST" {
				t.Errorf("Allow = %q", allow)
			}
		})
	}
}

func TestPages_CanonicalRedirect(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		path string
		want string
	}{
		{"/app/register/", "/app/register"},
		{"/app/summary/?registration=1", "/app/summary?registration=1"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, _ := a.get(t, tt.path)
			if resp.StatusCode != http.StatusPermanentRedirect {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusPermanentRedirect)
			}
			if loc := resp.Header.Get("Location"); loc != tt.want {
				t.Errorf("Location = %q, want %q", loc, tt.want)
			}
		})
	}

	if a.sessions.Len() != 0 {
		t.Errorf("sessions = %d, want 0", a.sessions.Len())
	}
}

func TestPages_NoSessionWithoutFormState(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/app/app.css", "/app/site.webmanifest", "/app/unknown", "/app/register/extra"} {
		a.get(t, path)
	}
	req, _ := http.NewRequest(http.MethodPut, a.server.URL+"/app/register", nil)
	if resp, err := a.client.Do(req); err == nil {
		resp.Body.Close()
	}

	if a.sessions.Len() != 0 {
		t.Errorf("sessions = %d, want 0", a.sessions.Len())
	}

	a.get(t, "/app")
	if a.sessions.Len() != 1 {
		t.Errorf("sessions after page view = %d, want 1", a.sessions.Len())
	}
}

func TestPublicFiles(t *testing.T) {
	a := newTestApp(t)

	for _, file := range []string{"app.css", "site.webmanifest"} {
		t.Run(file, func(t *testing.T) {
			resp, body := a.get(t, "/app/"+file)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}
			if body == "" {
				t.Error("empty body")
			}
		})
	}
}

func TestFlow_FormStateSharedAcrossPages(t *testing.T) {
	a := newTestApp(t)

	resp, _ := a.post(t, "/app", url.Values{"phone_number": {"5551234"}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("phone POST status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/app/register" {
		t.Errorf("Location = %q, want /app/register", loc)
	}

	_, body := a.get(t, "/app")
	if !strings.Contains(body, `value="5551234"`) {
		t.Error("phone number not retained on loyalty page")
	}

	resp, _ = a.post(t, "/app/register", url.Values{
		"name":     {"Ann Lee"},
		"birthday": {"1990-01-02"},
		"email":    {"ann@example.com"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("register POST status = %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/app/summary" {
		t.Errorf("Location = %q, want /app/summary", loc)
	}

	_, body = a.get(t, "/app/summary")
	for _, want := range []string{"<dd>5551234</dd>", "<dd>Ann Lee</dd>", "<dd>1990-01-02</dd>", "<dd>ann@example.com</dd>"} {
		if !strings.Contains(body, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	if a.sessions.Len() != 1 {
		t.Errorf("sessions = %d, want 1", a.sessions.Len())
	}
}

func TestFlow_SessionsAreIsolated(t *testing.T) {
	a := newTestApp(t)

	a.post(t, "/app", url.Values{"phone_number": {"5551234"}})

	other := &http.Client{}
	resp, err := other.Get(a.server.URL + "/app")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if strings.Contains(string(body), "5551234") {
		t.Error("second visitor saw first visitor's phone number")
	}
}

func TestFlow_Submit(t *testing.T) {
	a := newTestApp(t)

	a.post(t, "/app", url.Values{"phone_number": {"5551234"}})
	a.post(t, "/app/register", url.Values{"name": {"Ann"}, "birthday": {"1990-01-02"}, "email": {"ann@example.com"}})

	resp, _ := a.post(t, "/app/summary", nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("submit status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}

	loc, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatalf("parse Location: %v", err)
	}
	if loc.Path != "/app/summary" {
		t.Errorf("Location path = %q", loc.Path)
	}

	id, err := uuid.Parse(loc.Query().Get("registration"))
	if err != nil {
		t.Fatalf("registration id: %v", err)
	}

	reg, err := a.regs.Find(context.Background(), id)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if reg.PhoneNumber != "5551234" || reg.Name != "Ann" || reg.Email != "ann@example.com" {
		t.Errorf("reg = %+v", reg)
	}

	_, body := a.get(t, loc.RequestURI())
	if !strings.Contains(body, id.String()) {
		t.Error("confirmation does not show registration id")
	}
	if strings.Contains(body, `action="/app/summary"`) {
		t.Error("submit form shown after registration")
	}
}

func TestFlow_SubmitFailure(t *testing.T) {
	a := newTestApp(t)
	a.regs.createErr = errors.New("db down")

	resp, body := a.post(t, "/app/summary", nil)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
	if !strings.Contains(body, `role="alert"`) {
		t.Error("error message not rendered")
	}
}

func TestSummary_UnknownRegistration(t *testing.T) {
	a := newTestApp(t)

	for _, q := range []string{"not-a-uuid", uuid.NewString()} {
		t.Run(q, func(t *testing.T) {
			resp, body := a.get(t, "/app/summary?registration="+q)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}
			if !strings.Contains(body, "Unknown registration.") {
				t.Error("unknown registration message missing")
			}
		})
	}
}

func TestForm_TooLarge(t *testing.T) {
	a := newTestApp(t)

	resp, _ := a.post(t, "/app", url.Values{"phone_number": {strings.Repeat("9", 4096)}})

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusRequestEntityTooLarge)
	}
}
