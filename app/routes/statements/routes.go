package statements

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/session"
)

func SetupStatementsRoutes(app *fiber.App, api *apiclient.Client, sessions *session.Manager) {
	handler := &Handler{api: api}

	students := app.Group("/students")
	students.Use(sessions.RequireAuth)
	students.Get("/:id/statement", handler.StudentStatementPage)

	schools := app.Group("/schools")
	schools.Use(sessions.RequireAuth)
	schools.Get("/:id/statement", handler.SchoolStatementPage)
}

// Handler serves the read-only statement pages. Everything shown here —
// totals, paid and outstanding amounts — is computed by the backend and
// rendered in the order received.
type Handler struct {
	api *apiclient.Client
}

func (h *Handler) StudentStatementPage(c *fiber.Ctx) error {
	id := c.Params("id")
	statement, err := h.api.StudentStatement(c.UserContext(), id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).Render("statements/notfound", fiber.Map{
				"Title":       "Not Found - Mattilda Billing",
				"CurrentPage": "students",
				"What":        "student statement",
				"BackURL":     "/students",
				"BackLabel":   "Back to students",
				"Username":    c.Locals("username"),
			})
		}
		config.GetLogger().Error("loading student statement failed",
			zap.String("student_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":        "Error - Mattilda Billing",
			"CurrentPage":  "students",
			"ErrorTitle":   "Backend Error",
			"ErrorMessage": "Failed to load the student statement. Please try again later.",
			"Username":     c.Locals("username"),
		})
	}

	return c.Render("statements/student", fiber.Map{
		"Title":       "Student Statement - Mattilda Billing",
		"CurrentPage": "students",
		"Statement":   statement,
		"Username":    c.Locals("username"),
	})
}

func (h *Handler) SchoolStatementPage(c *fiber.Ctx) error {
	id := c.Params("id")
	statement, err := h.api.SchoolStatement(c.UserContext(), id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).Render("statements/notfound", fiber.Map{
				"Title":       "Not Found - Mattilda Billing",
				"CurrentPage": "schools",
				"What":        "school statement",
				"BackURL":     "/schools",
				"BackLabel":   "Back to schools",
				"Username":    c.Locals("username"),
			})
		}
		config.GetLogger().Error("loading school statement failed",
			zap.String("school_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":        "Error - Mattilda Billing",
			"CurrentPage":  "schools",
			"ErrorTitle":   "Backend Error",
			"ErrorMessage": "Failed to load the school statement. Please try again later.",
			"Username":     c.Locals("username"),
		})
	}

	return c.Render("statements/school", fiber.Map{
		"Title":       "School Statement - Mattilda Billing",
		"CurrentPage": "schools",
		"Statement":   statement,
		"Username":    c.Locals("username"),
	})
}
