package schools

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/models"
)

// GetSchoolsAPI returns the school list as JSON for in-page scripting.
func (h *Handler) GetSchoolsAPI(c *fiber.Ctx) error {
	schools, err := h.api.ListSchools(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch schools"})
	}
	return c.JSON(fiber.Map{
		"schools": schools,
		"count":   len(schools),
	})
}

// CreateSchoolAPI handles the add-school form.
func (h *Handler) CreateSchoolAPI(c *fiber.Ctx) error {
	req := models.SchoolCreate{Name: c.FormValue("name")}
	if address := c.FormValue("address"); address != "" {
		req.Address = &address
	}

	if err := models.Validate.Struct(req); err != nil {
		return h.renderWithError(c, fiber.StatusBadRequest, models.ValidationMessage(err), fiber.Map{
			"Name":    req.Name,
			"Address": c.FormValue("address"),
		})
	}

	if _, err := h.api.CreateSchool(c.UserContext(), req); err != nil {
		config.GetLogger().Error("creating school failed", zap.Error(err))
		return h.renderWithError(c, fiber.StatusBadGateway,
			apiclient.ErrorDetail(err, "Failed to create school"), fiber.Map{
				"Name":    req.Name,
				"Address": c.FormValue("address"),
			})
	}

	return c.Redirect("/schools")
}

// DeleteSchoolAPI handles the delete form; the confirmation happens in the
// template before the form ever posts.
func (h *Handler) DeleteSchoolAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.api.DeleteSchool(c.UserContext(), id); err != nil {
		config.GetLogger().Error("deleting school failed", zap.String("school_id", id), zap.Error(err))
		return h.renderWithError(c, fiber.StatusBadGateway,
			apiclient.ErrorDetail(err, "Failed to delete school"), nil)
	}
	return c.Redirect("/schools")
}
