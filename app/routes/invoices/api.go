package invoices

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/models"
)

// GetInvoicesAPI returns invoices as JSON, optionally filtered by student.
// The payment page uses it to reload invoice options without a full reload.
func (h *Handler) GetInvoicesAPI(c *fiber.Ctx) error {
	invoices, err := h.api.ListInvoices(c.UserContext(), c.Query("student_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch invoices"})
	}
	return c.JSON(fiber.Map{
		"invoices": invoices,
		"count":    len(invoices),
	})
}

// CreateInvoiceAPI handles the issue-invoice form. Amounts arrive as integer
// cents; nothing here ever parses money as a float.
func (h *Handler) CreateInvoiceAPI(c *fiber.Ctx) error {
	form := fiber.Map{
		"StudentID":   c.FormValue("student_id"),
		"AmountCents": c.FormValue("amount_cents"),
		"Currency":    c.FormValue("currency"),
		"Description": c.FormValue("description"),
		"DueDate":     c.FormValue("due_date"),
	}

	amountCents, err := strconv.ParseInt(c.FormValue("amount_cents"), 10, 64)
	if err != nil {
		return h.renderWithError(c, fiber.StatusBadRequest, "amount must be a whole number of cents", form)
	}

	req := models.InvoiceCreate{
		StudentID:   c.FormValue("student_id"),
		AmountCents: amountCents,
		Currency:    c.FormValue("currency"),
	}
	if description := c.FormValue("description"); description != "" {
		req.Description = &description
	}
	if dueDate := c.FormValue("due_date"); dueDate != "" {
		parsed, err := time.Parse("2006-01-02", dueDate)
		if err != nil {
			return h.renderWithError(c, fiber.StatusBadRequest, "due date must be YYYY-MM-DD", form)
		}
		req.DueDate = &parsed
	}

	if err := models.Validate.Struct(req); err != nil {
		return h.renderWithError(c, fiber.StatusBadRequest, models.ValidationMessage(err), form)
	}

	if _, err := h.api.CreateInvoice(c.UserContext(), req); err != nil {
		config.GetLogger().Error("creating invoice failed", zap.Error(err))
		return h.renderWithError(c, fiber.StatusBadGateway,
			apiclient.ErrorDetail(err, "Failed to create invoice"), form)
	}

	return c.Redirect("/invoices")
}

// DeleteInvoiceAPI handles the delete form.
func (h *Handler) DeleteInvoiceAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.api.DeleteInvoice(c.UserContext(), id); err != nil {
		config.GetLogger().Error("deleting invoice failed", zap.String("invoice_id", id), zap.Error(err))
		return h.renderWithError(c, fiber.StatusBadGateway,
			apiclient.ErrorDetail(err, "Failed to delete invoice"), nil)
	}
	return c.Redirect("/invoices")
}
