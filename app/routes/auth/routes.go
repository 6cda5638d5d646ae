package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/session"
)

func SetupAuthRoutes(app *fiber.App, api *apiclient.Client, sessions *session.Manager) {
	handler := &Handler{api: api, sessions: sessions}

	auth := app.Group("/auth")
	auth.Get("/login", handler.ShowLoginPage)
	auth.Post("/login", handler.LoginAPI)
	auth.Post("/logout", handler.LogoutAPI)
}

// Handler serves the login and logout surface.
type Handler struct {
	api      *apiclient.Client
	sessions *session.Manager
}

func (h *Handler) ShowLoginPage(c *fiber.Ctx) error {
	// Already signed in: straight to the schools list.
	if h.sessions.Token(c) != "" {
		return c.Redirect("/schools")
	}

	return c.Render("auth/login", fiber.Map{
		"Title":    "Sign in - Mattilda Billing",
		"Username": "",
	}, "")
}
