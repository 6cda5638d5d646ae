// Package session owns the auth session: the bearer token and username that
// survive between requests, and the middleware that guards protected routes.
// The session store is the only durable client-side state in the app.
package session

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
)

const (
	tokenKey    = "auth_token"
	usernameKey = "username"
)

// Manager wraps the cookie-keyed session store. Tokens are read from the
// store on every request, never cached in process memory, so a logout takes
// effect for the next request in any tab.
type Manager struct {
	store  *fibersession.Store
	logger *zap.Logger
}

// NewManager builds a Manager with a 24h session lifetime.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := fibersession.New(fibersession.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return &Manager{store: store, logger: logger}
}

// Token returns the stored bearer token for this request, or "" when no
// session exists or the token's exp claim has passed.
func (m *Manager) Token(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		m.logger.Warn("session read failed", zap.Error(err))
		return ""
	}
	token, _ := sess.Get(tokenKey).(string)
	if token == "" {
		return ""
	}
	if expired(token) {
		return ""
	}
	return token
}

// Username returns the stored display name, or "".
func (m *Manager) Username(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		return ""
	}
	username, _ := sess.Get(usernameKey).(string)
	return username
}

// SetCredentials stores the token and username for the session's lifetime.
func (m *Manager) SetCredentials(c *fiber.Ctx, token, username string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(tokenKey, token)
	sess.Set(usernameKey, username)
	return sess.Save()
}

// Clear destroys the session: token and username are gone for the next
// request everywhere.
func (m *Manager) Clear(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// RequireAuth guards protected routes. Pages redirect to the login screen;
// /api/ requests get a 401 JSON body. On success the username lands in
// c.Locals and the request's user context carries the bearer token for the
// API client.
func (m *Manager) RequireAuth(c *fiber.Ctx) error {
	token := m.Token(c)
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if token == "" {
		if isAPIRequest {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}
		return c.Redirect("/auth/login")
	}

	c.Locals("username", m.Username(c))
	c.SetUserContext(apiclient.WithBearer(c.UserContext(), func() string {
		return m.Token(c)
	}))
	return c.Next()
}

// expired reports whether the JWT's exp claim has passed. The claim is
// parsed without verification; the signing key lives in the backend and a
// tampered token fails there anyway.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens carry no readable expiry; let the backend decide.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
