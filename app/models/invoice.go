package models

import "time"

// Invoice represents a charge issued to a student. Once issued, student_id
// and issued_at are immutable: the client never sends them on update.
type Invoice struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	AmountCents int64      `json:"amount_cents"`
	Currency    string     `json:"currency"`
	Description *string    `json:"description,omitempty"`
	IssuedAt    time.Time  `json:"issued_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Amount returns the invoice's face value as Money.
func (i Invoice) Amount() Money {
	return Money{AmountCents: i.AmountCents, Currency: i.Currency}
}

// InvoiceCreate carries the fields for issuing a new invoice.
type InvoiceCreate struct {
	StudentID   string     `json:"student_id" validate:"required"`
	AmountCents int64      `json:"amount_cents" validate:"gte=0"`
	Currency    string     `json:"currency" validate:"required,len=3"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// InvoiceUpdate carries the mutable fields of an issued invoice.
// student_id and issued_at are deliberately absent.
type InvoiceUpdate struct {
	AmountCents *int64     `json:"amount_cents,omitempty" validate:"omitempty,gte=0"`
	Currency    *string    `json:"currency,omitempty" validate:"omitempty,len=3"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}
