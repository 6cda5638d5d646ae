package apiclient

import (
	"context"
	"net/url"

	"github.com/angdmz/mattilda/app/models"
)

// ListInvoices fetches invoices, optionally filtered by student.
func (c *Client) ListInvoices(ctx context.Context, studentID string) ([]models.Invoice, error) {
	var query url.Values
	if studentID != "" {
		query = url.Values{"student_id": {studentID}}
	}
	var invoices []models.Invoice
	if err := c.get(ctx, "/invoices/", query, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice fetches one invoice by id.
func (c *Client) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.get(ctx, "/invoices/"+id, nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// CreateInvoice issues a new invoice and returns the stored entity.
func (c *Client) CreateInvoice(ctx context.Context, req models.InvoiceCreate) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.post(ctx, "/invoices/", req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoice updates an issued invoice's mutable fields; student_id and
// issued_at are never part of the payload.
func (c *Client) UpdateInvoice(ctx context.Context, id string, req models.InvoiceUpdate) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.put(ctx, "/invoices/"+id, req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// DeleteInvoice removes an invoice. Irreversible.
func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.delete(ctx, "/invoices/"+id)
}
