package students

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/models"
)

// GetStudentsAPI returns students as JSON, optionally filtered by school.
func (h *Handler) GetStudentsAPI(c *fiber.Ctx) error {
	students, err := h.api.ListStudents(c.UserContext(), c.Query("school_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// CreateStudentAPI handles the add-student form.
func (h *Handler) CreateStudentAPI(c *fiber.Ctx) error {
	req := models.StudentCreate{
		Name:     c.FormValue("name"),
		SchoolID: c.FormValue("school_id"),
	}
	if email := c.FormValue("email"); email != "" {
		req.Email = &email
	}

	if err := models.Validate.Struct(req); err != nil {
		return h.renderWithError(c, fiber.StatusBadRequest, models.ValidationMessage(err), fiber.Map{
			"Name":     req.Name,
			"Email":    c.FormValue("email"),
			"SchoolID": req.SchoolID,
		})
	}

	if _, err := h.api.CreateStudent(c.UserContext(), req); err != nil {
		config.GetLogger().Error("creating student failed", zap.Error(err))
		return h.renderWithError(c, fiber.StatusBadGateway,
			apiclient.ErrorDetail(err, "Failed to create student"), fiber.Map{
				"Name":     req.Name,
				"Email":    c.FormValue("email"),
				"SchoolID": req.SchoolID,
			})
	}

	return c.Redirect("/students")
}

// DeleteStudentAPI handles the delete form.
func (h *Handler) DeleteStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.api.DeleteStudent(c.UserContext(), id); err != nil {
		config.GetLogger().Error("deleting student failed", zap.String("student_id", id), zap.Error(err))
		return h.renderWithError(c, fiber.StatusBadGateway,
			apiclient.ErrorDetail(err, "Failed to delete student"), nil)
	}
	return c.Redirect("/students")
}
