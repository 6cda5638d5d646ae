package apiclient

import (
	"context"
	"net/url"

	"github.com/angdmz/mattilda/app/models"
)

// ListPayments fetches payments, optionally filtered by student.
func (c *Client) ListPayments(ctx context.Context, studentID string) ([]models.Payment, error) {
	var query url.Values
	if studentID != "" {
		query = url.Values{"student_id": {studentID}}
	}
	var payments []models.Payment
	if err := c.get(ctx, "/payments/", query, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPayment fetches one payment by id.
func (c *Client) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := c.get(ctx, "/payments/"+id, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreatePayment records a payment with its invoice imputations. The backend
// re-validates ownership and currency and is authoritative over the amount.
func (c *Client) CreatePayment(ctx context.Context, req models.PaymentCreate) (*models.Payment, error) {
	var payment models.Payment
	if err := c.post(ctx, "/payments/", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// DeletePayment removes a payment. Irreversible.
func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.delete(ctx, "/payments/"+id)
}
