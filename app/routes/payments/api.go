package payments

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/models"
)

// GetPaymentsAPI returns payments as JSON, optionally filtered by student.
func (h *Handler) GetPaymentsAPI(c *fiber.Ctx) error {
	payments, err := h.api.ListPayments(c.UserContext(), c.Query("student_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

// CreatePaymentAPI handles the payment form. The imputation rules live in
// BuildPayment; a blocked submission re-renders the page with the entered
// lines intact and never reaches the backend.
func (h *Handler) CreatePaymentAPI(c *fiber.Ctx) error {
	studentID := c.FormValue("student_id")
	if studentID == "" {
		return h.renderBlocked(c, "", "please select a student", nil)
	}

	lines := parseLines(c)
	method := models.PaymentMethod(c.FormValue("payment_method"))
	reference := c.FormValue("reference")

	state, err := h.loadPageState(c, studentID)
	if err != nil {
		config.GetLogger().Error("loading payment page failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":        "Error - Mattilda Billing",
			"CurrentPage":  "payments",
			"ErrorTitle":   "Backend Error",
			"ErrorMessage": "Failed to load payment data. Please try again later.",
			"Username":     c.Locals("username"),
		})
	}

	payment, err := BuildPayment(studentID, method, reference, lines, state.Invoices)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Render("payments/index", h.viewData(c, state, fiber.Map{
			"Error":     err.Error(),
			"Lines":     lines,
			"Method":    string(method),
			"Reference": reference,
		}))
	}

	if err := models.Validate.Struct(payment); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("payments/index", h.viewData(c, state, fiber.Map{
			"Error":     models.ValidationMessage(err),
			"Lines":     lines,
			"Method":    string(method),
			"Reference": reference,
		}))
	}

	if _, err := h.api.CreatePayment(c.UserContext(), *payment); err != nil {
		config.GetLogger().Error("creating payment failed",
			zap.String("student_id", studentID), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).Render("payments/index", h.viewData(c, state, fiber.Map{
			"Error":     apiclient.ErrorDetail(err, "Failed to create payment"),
			"Lines":     lines,
			"Method":    string(method),
			"Reference": reference,
		}))
	}

	// Redirecting re-fetches the student's invoices, so outstanding amounts
	// already reflect the new payment; the form comes back with one empty
	// line.
	return c.Redirect("/payments?student_id=" + studentID + "&created=1")
}

// DeletePaymentAPI handles the delete form on the recent payments table.
func (h *Handler) DeletePaymentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	studentID := c.FormValue("student_id")
	if err := h.api.DeletePayment(c.UserContext(), id); err != nil {
		config.GetLogger().Error("deleting payment failed", zap.String("payment_id", id), zap.Error(err))
		return h.renderBlocked(c, studentID, apiclient.ErrorDetail(err, "Failed to delete payment"), nil)
	}
	return c.Redirect("/payments?student_id=" + studentID)
}

func (h *Handler) renderBlocked(c *fiber.Ctx, studentID, message string, lines []Line) error {
	state, err := h.loadPageState(c, studentID)
	if err != nil {
		config.GetLogger().Error("loading payment page failed", zap.Error(err))
		state = &pageState{Currency: "USD"}
	}
	return c.Status(fiber.StatusBadRequest).Render("payments/index", h.viewData(c, state, fiber.Map{
		"Error": message,
		"Lines": lines,
	}))
}

// parseLines pairs the repeated invoice_id/amount_cents form fields into
// ordered lines. Unparsable amounts become zero, which marks the line
// incomplete so BuildPayment drops it.
func parseLines(c *fiber.Ctx) []Line {
	args := c.Request().PostArgs()
	invoiceIDs := args.PeekMulti("invoice_id")
	amounts := args.PeekMulti("amount_cents")

	n := len(invoiceIDs)
	if len(amounts) > n {
		n = len(amounts)
	}
	lines := make([]Line, 0, n)
	for i := 0; i < n; i++ {
		var line Line
		if i < len(invoiceIDs) {
			line.InvoiceID = string(invoiceIDs[i])
		}
		if i < len(amounts) {
			if cents, err := strconv.ParseInt(string(amounts[i]), 10, 64); err == nil {
				line.AmountCents = cents
			}
		}
		lines = append(lines, line)
	}
	return lines
}
