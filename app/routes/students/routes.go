package students

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/models"
	"github.com/angdmz/mattilda/app/session"
)

func SetupStudentsRoutes(app *fiber.App, api *apiclient.Client, sessions *session.Manager) {
	handler := &Handler{api: api}

	students := app.Group("/students")
	students.Use(sessions.RequireAuth)
	students.Get("/", handler.StudentsPage)
	students.Post("/", handler.CreateStudentAPI)
	students.Post("/:id/delete", handler.DeleteStudentAPI)

	jsonAPI := app.Group("/api/students")
	jsonAPI.Use(sessions.RequireAuth)
	jsonAPI.Get("/", handler.GetStudentsAPI)
}

// Handler serves the students CRUD surface.
type Handler struct {
	api *apiclient.Client
}

// pageData loads the student list (optionally school-filtered) and the
// school reference list used to display names and fill the select.
func (h *Handler) pageData(c *fiber.Ctx, schoolID string) ([]models.Student, []models.School, error) {
	students, err := h.api.ListStudents(c.UserContext(), schoolID)
	if err != nil {
		return nil, nil, err
	}
	schools, err := h.api.ListSchools(c.UserContext())
	if err != nil {
		return nil, nil, err
	}
	return students, schools, nil
}

func (h *Handler) StudentsPage(c *fiber.Ctx) error {
	schoolID := c.Query("school_id")
	students, schools, err := h.pageData(c, schoolID)
	if err != nil {
		config.GetLogger().Error("loading students failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":        "Error - Mattilda Billing",
			"CurrentPage":  "students",
			"ErrorTitle":   "Backend Error",
			"ErrorMessage": "Failed to load students. Please try again later.",
			"Username":     c.Locals("username"),
		})
	}

	return c.Render("students/index", fiber.Map{
		"Title":       "Students - Mattilda Billing",
		"CurrentPage": "students",
		"Students":    students,
		"Schools":     schools,
		"SchoolNames": schoolNames(schools),
		"SchoolID":    schoolID,
		"Username":    c.Locals("username"),
	})
}

func (h *Handler) renderWithError(c *fiber.Ctx, status int, message string, form fiber.Map) error {
	students, schools, err := h.pageData(c, "")
	if err != nil {
		config.GetLogger().Error("loading students failed", zap.Error(err))
	}
	return c.Status(status).Render("students/index", fiber.Map{
		"Title":       "Students - Mattilda Billing",
		"CurrentPage": "students",
		"Students":    students,
		"Schools":     schools,
		"SchoolNames": schoolNames(schools),
		"Username":    c.Locals("username"),
		"Error":       message,
		"Form":        form,
	})
}

func schoolNames(schools []models.School) map[string]string {
	names := make(map[string]string, len(schools))
	for _, school := range schools {
		names[school.ID] = school.Name
	}
	return names
}
