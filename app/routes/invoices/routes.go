package invoices

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/models"
	"github.com/angdmz/mattilda/app/session"
)

func SetupInvoicesRoutes(app *fiber.App, api *apiclient.Client, sessions *session.Manager) {
	handler := &Handler{api: api}

	invoices := app.Group("/invoices")
	invoices.Use(sessions.RequireAuth)
	invoices.Get("/", handler.InvoicesPage)
	invoices.Post("/", handler.CreateInvoiceAPI)
	invoices.Post("/:id/delete", handler.DeleteInvoiceAPI)

	jsonAPI := app.Group("/api/invoices")
	jsonAPI.Use(sessions.RequireAuth)
	jsonAPI.Get("/", handler.GetInvoicesAPI)
}

// Handler serves the invoices CRUD surface.
type Handler struct {
	api *apiclient.Client
}

func (h *Handler) pageData(c *fiber.Ctx, studentID string) ([]models.Invoice, []models.Student, error) {
	invoices, err := h.api.ListInvoices(c.UserContext(), studentID)
	if err != nil {
		return nil, nil, err
	}
	students, err := h.api.ListStudents(c.UserContext(), "")
	if err != nil {
		return nil, nil, err
	}
	return invoices, students, nil
}

func (h *Handler) InvoicesPage(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	invoices, students, err := h.pageData(c, studentID)
	if err != nil {
		config.GetLogger().Error("loading invoices failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":        "Error - Mattilda Billing",
			"CurrentPage":  "invoices",
			"ErrorTitle":   "Backend Error",
			"ErrorMessage": "Failed to load invoices. Please try again later.",
			"Username":     c.Locals("username"),
		})
	}

	return c.Render("invoices/index", fiber.Map{
		"Title":        "Invoices - Mattilda Billing",
		"CurrentPage":  "invoices",
		"Invoices":     invoices,
		"Students":     students,
		"StudentNames": studentNames(students),
		"StudentID":    studentID,
		"Username":     c.Locals("username"),
	})
}

func (h *Handler) renderWithError(c *fiber.Ctx, status int, message string, form fiber.Map) error {
	invoices, students, err := h.pageData(c, "")
	if err != nil {
		config.GetLogger().Error("loading invoices failed", zap.Error(err))
	}
	return c.Status(status).Render("invoices/index", fiber.Map{
		"Title":        "Invoices - Mattilda Billing",
		"CurrentPage":  "invoices",
		"Invoices":     invoices,
		"Students":     students,
		"StudentNames": studentNames(students),
		"Username":     c.Locals("username"),
		"Error":        message,
		"Form":         form,
	})
}

func studentNames(students []models.Student) map[string]string {
	names := make(map[string]string, len(students))
	for _, student := range students {
		names[student.ID] = student.Name
	}
	return names
}
