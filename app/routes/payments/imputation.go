package payments

import (
	"errors"
	"fmt"

	"github.com/angdmz/mattilda/app/models"
)

// Imputation form errors, surfaced verbatim above the form. Submission is
// blocked client-side; no request reaches the backend on any of these.
var (
	ErrNoImputations   = errors.New("add at least one imputation line before submitting")
	ErrMixedCurrencies = errors.New("all selected invoices must have the same currency")
	ErrNoPaymentMethod = errors.New("please select a payment method")
)

// Line is one imputation row as entered in the form. A line missing its
// invoice or with a non-positive amount is incomplete and is dropped.
type Line struct {
	InvoiceID   string
	AmountCents int64
}

func (l Line) complete() bool {
	return l.InvoiceID != "" && l.AmountCents > 0
}

// BuildPayment turns the form state into a payment payload:
//
//  1. incomplete lines are dropped;
//  2. zero remaining lines blocks submission;
//  3. the referenced invoices must resolve to exactly one currency —
//     a payment may not straddle currencies;
//  4. the payment amount is the sum of the remaining lines;
//  5. a payment method is required.
//
// invoices is the loaded list for the selected student; a line referencing
// any other invoice is rejected. The backend re-validates everything and
// stays authoritative over the stored amount.
func BuildPayment(studentID string, method models.PaymentMethod, reference string, lines []Line, invoices []models.Invoice) (*models.PaymentCreate, error) {
	byID := make(map[string]models.Invoice, len(invoices))
	for _, invoice := range invoices {
		byID[invoice.ID] = invoice
	}

	var (
		imputations []models.PaymentImputationInput
		total       int64
		currency    string
	)
	for _, line := range lines {
		if !line.complete() {
			continue
		}
		invoice, ok := byID[line.InvoiceID]
		if !ok {
			return nil, fmt.Errorf("invoice %s does not belong to the selected student", line.InvoiceID)
		}
		if currency == "" {
			currency = invoice.Currency
		} else if invoice.Currency != currency {
			return nil, ErrMixedCurrencies
		}
		imputations = append(imputations, models.PaymentImputationInput{
			InvoiceID:   line.InvoiceID,
			AmountCents: line.AmountCents,
		})
		total += line.AmountCents
	}

	if len(imputations) == 0 {
		return nil, ErrNoImputations
	}
	if method == "" {
		return nil, ErrNoPaymentMethod
	}
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method %q", method)
	}

	payment := &models.PaymentCreate{
		StudentID:     studentID,
		AmountCents:   total,
		Currency:      currency,
		PaymentMethod: method,
		Imputations:   imputations,
	}
	if reference != "" {
		payment.Reference = &reference
	}
	return payment, nil
}
