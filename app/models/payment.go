package models

import "time"

// Payment represents money received from a student, applied to one or more
// invoices through imputations. Every imputed invoice must belong to the
// same student and carry the same currency as the payment.
type Payment struct {
	ID            string        `json:"id"`
	StudentID     string        `json:"student_id"`
	AmountCents   int64         `json:"amount_cents"`
	Currency      string        `json:"currency"`
	PaymentDate   time.Time     `json:"payment_date"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Reference     *string       `json:"reference,omitempty"`
}

// Amount returns the payment's value as Money.
func (p Payment) Amount() Money {
	return Money{AmountCents: p.AmountCents, Currency: p.Currency}
}

// PaymentImputationInput allocates part of a payment to one invoice.
type PaymentImputationInput struct {
	InvoiceID   string `json:"invoice_id" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"gt=0"`
}

// PaymentCreate is the payload for creating a payment. AmountCents is the
// sum of the imputation amounts as computed by this client; the backend
// remains authoritative.
type PaymentCreate struct {
	StudentID     string                   `json:"student_id" validate:"required"`
	AmountCents   int64                    `json:"amount_cents" validate:"gt=0"`
	Currency      string                   `json:"currency" validate:"required,len=3"`
	PaymentMethod PaymentMethod            `json:"payment_method" validate:"required"`
	Reference     *string                  `json:"reference,omitempty"`
	Imputations   []PaymentImputationInput `json:"imputations" validate:"min=1,dive"`
}
