package auth_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/models"
	"github.com/angdmz/mattilda/app/routes/auth"
	"github.com/angdmz/mattilda/app/routes/schools"
	"github.com/angdmz/mattilda/app/session"
	"github.com/angdmz/mattilda/app/templates"
)

// newTestApp wires a fiber app with the auth and schools surfaces against a
// scripted backend.
func newTestApp(t *testing.T, backend http.Handler) *fiber.App {
	t.Helper()
	config.Init()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	api, err := apiclient.New(apiclient.Options{BaseURL: server.URL})
	require.NoError(t, err)

	sessions := session.NewManager(nil)

	app := fiber.New(fiber.Config{
		Views:             templates.Engine(),
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
	})
	auth.SetupAuthRoutes(app, api, sessions)
	schools.SetupSchoolsRoutes(app, api, sessions)
	return app
}

// backendFixture scripts login/register plus a schools list.
type backendFixture struct {
	rejectFirstLogin bool
	loginCalls       int
	registerCalls    int
}

func (b *backendFixture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/auth/login":
		b.loginCalls++
		if b.rejectFirstLogin && b.loginCalls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-session"})
	case "/auth/register":
		b.registerCalls++
		w.WriteHeader(http.StatusCreated)
	case "/schools/":
		_ = json.NewEncoder(w).Encode([]models.School{{ID: "school-1", Name: "Hillside"}})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func loginForm(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_id" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

func TestProtectedPageRedirectsWithoutSession(t *testing.T) {
	app := newTestApp(t, &backendFixture{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/schools/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
}

func TestLoginEstablishesSession(t *testing.T) {
	backend := &backendFixture{}
	app := newTestApp(t, backend)

	resp, err := app.Test(loginForm("alice", "secret"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/schools", resp.Header.Get("Location"))
	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest(http.MethodGet, "/schools/", nil)
	req.Header.Set("Cookie", cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Hillside")
	assert.Contains(t, string(body), "alice")
	assert.Zero(t, backend.registerCalls, "known users are not re-registered")
}

func TestLoginRegistersUnknownUser(t *testing.T) {
	backend := &backendFixture{rejectFirstLogin: true}
	app := newTestApp(t, backend)

	resp, err := app.Test(loginForm("newuser", "secret"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, 1, backend.registerCalls)
	assert.Equal(t, 2, backend.loginCalls)
}

func TestLogoutClearsSession(t *testing.T) {
	app := newTestApp(t, &backendFixture{})

	resp, err := app.Test(loginForm("alice", "secret"))
	require.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Cookie", cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))

	// The destroyed session no longer authenticates the old cookie.
	req = httptest.NewRequest(http.MethodGet, "/schools/", nil)
	req.Header.Set("Cookie", cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
}

func TestLoginPageRendersError(t *testing.T) {
	// Login and registration both fail, so the whole flow fails.
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	resp, err := app.Test(loginForm("alice", "wrong"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Authentication failed")
}

func TestUnauthenticatedAPIGets401(t *testing.T) {
	app := newTestApp(t, &backendFixture{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/schools/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
