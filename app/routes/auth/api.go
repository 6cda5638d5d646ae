package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/session"
)

// LoginAPI handles the login form. Unknown users are registered on the fly
// and signed in; see session.LoginFlow for the exact sequence.
func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if username == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).Render("auth/login", fiber.Map{
			"Title":    "Sign in - Mattilda Billing",
			"Error":    "Username and password are required",
			"Username": username,
		}, "")
	}

	flow := session.NewLoginFlow(h.api, config.GetLogger())
	token, err := flow.Run(c.UserContext(), username, password)
	if err != nil {
		config.GetLogger().Warn("authentication failed",
			zap.String("username", username),
			zap.String("state", flow.State().String()),
			zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title":    "Sign in - Mattilda Billing",
			"Error":    "Authentication failed. Check your credentials and try again.",
			"Username": username,
		}, "")
	}

	if err := h.sessions.SetCredentials(c, token, username); err != nil {
		config.GetLogger().Error("saving session failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to start session")
	}

	return c.Redirect("/schools")
}

// LogoutAPI destroys the session; the next request anywhere sees no token.
func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	if err := h.sessions.Clear(c); err != nil {
		config.GetLogger().Warn("clearing session failed", zap.Error(err))
	}
	return c.Redirect("/auth/login")
}
