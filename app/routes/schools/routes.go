package schools

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/session"
)

func SetupSchoolsRoutes(app *fiber.App, api *apiclient.Client, sessions *session.Manager) {
	handler := &Handler{api: api}

	schools := app.Group("/schools")
	schools.Use(sessions.RequireAuth)
	schools.Get("/", handler.SchoolsPage)
	schools.Post("/", handler.CreateSchoolAPI)
	schools.Post("/:id/delete", handler.DeleteSchoolAPI)

	jsonAPI := app.Group("/api/schools")
	jsonAPI.Use(sessions.RequireAuth)
	jsonAPI.Get("/", handler.GetSchoolsAPI)
}

// Handler serves the schools CRUD surface.
type Handler struct {
	api *apiclient.Client
}

func (h *Handler) SchoolsPage(c *fiber.Ctx) error {
	schools, err := h.api.ListSchools(c.UserContext())
	if err != nil {
		config.GetLogger().Error("loading schools failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":        "Error - Mattilda Billing",
			"CurrentPage":  "schools",
			"ErrorTitle":   "Backend Error",
			"ErrorMessage": "Failed to load schools. Please try again later.",
			"Username":     c.Locals("username"),
		})
	}

	return c.Render("schools/index", fiber.Map{
		"Title":       "Schools - Mattilda Billing",
		"CurrentPage": "schools",
		"Schools":     schools,
		"Username":    c.Locals("username"),
	})
}

func (h *Handler) renderWithError(c *fiber.Ctx, status int, message string, form fiber.Map) error {
	schools, err := h.api.ListSchools(c.UserContext())
	if err != nil {
		config.GetLogger().Error("loading schools failed", zap.Error(err))
	}
	return c.Status(status).Render("schools/index", fiber.Map{
		"Title":       "Schools - Mattilda Billing",
		"CurrentPage": "schools",
		"Schools":     schools,
		"Username":    c.Locals("username"),
		"Error":       message,
		"Form":        form,
	})
}
