package payments

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
	"github.com/angdmz/mattilda/app/config"
	"github.com/angdmz/mattilda/app/models"
	"github.com/angdmz/mattilda/app/session"
)

func SetupPaymentsRoutes(app *fiber.App, api *apiclient.Client, sessions *session.Manager) {
	handler := &Handler{api: api}

	payments := app.Group("/payments")
	payments.Use(sessions.RequireAuth)
	payments.Get("/", handler.PaymentsPage)
	payments.Post("/", handler.CreatePaymentAPI)
	payments.Post("/:id/delete", handler.DeletePaymentAPI)

	jsonAPI := app.Group("/api/payments")
	jsonAPI.Use(sessions.RequireAuth)
	jsonAPI.Get("/", handler.GetPaymentsAPI)
}

// Handler serves the payment creation surface.
type Handler struct {
	api *apiclient.Client
}

// pageState is everything the payment page needs: the student roster, and,
// once a student is selected, that student's invoices and recent payments.
// Switching students navigates here fresh, which discards any entered lines
// and the previously loaded invoice list.
type pageState struct {
	Students  []models.Student
	StudentID string
	Invoices  []models.Invoice
	Payments  []models.Payment
	Currency  string
}

func (h *Handler) loadPageState(c *fiber.Ctx, studentID string) (*pageState, error) {
	students, err := h.api.ListStudents(c.UserContext(), "")
	if err != nil {
		return nil, err
	}
	state := &pageState{Students: students, StudentID: studentID, Currency: "USD"}
	if studentID == "" {
		return state, nil
	}

	invoices, err := h.api.ListInvoices(c.UserContext(), studentID)
	if err != nil {
		return nil, err
	}
	state.Invoices = invoices
	// The first loaded invoice seeds the displayed currency; the resolved
	// currency at submit time wins.
	if len(invoices) > 0 {
		state.Currency = invoices[0].Currency
	}

	payments, err := h.api.ListPayments(c.UserContext(), studentID)
	if err != nil {
		return nil, err
	}
	state.Payments = payments
	return state, nil
}

func (h *Handler) PaymentsPage(c *fiber.Ctx) error {
	state, err := h.loadPageState(c, c.Query("student_id"))
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

	return c.Render("payments/index", h.viewData(c, state, fiber.Map{
		"Created": c.Query("created") == "1",
	}))
}

func (h *Handler) viewData(c *fiber.Ctx, state *pageState, extra fiber.Map) fiber.Map {
	data := fiber.Map{
		"Title":          "Payments - Mattilda Billing",
		"CurrentPage":    "payments",
		"Students":       state.Students,
		"StudentID":      state.StudentID,
		"Invoices":       state.Invoices,
		"Payments":       state.Payments,
		"Currency":       state.Currency,
		"PaymentMethods": models.PaymentMethods(),
		"Username":       c.Locals("username"),
		"Method":         "",
		"Reference":      "",
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
