package models

// PaymentMethod defines how a payment was made.
type PaymentMethod string

const (
	Cash         PaymentMethod = "cash"
	CreditCard   PaymentMethod = "credit_card"
	DebitCard    PaymentMethod = "debit_card"
	BankTransfer PaymentMethod = "bank_transfer"
	WireTransfer PaymentMethod = "wire_transfer"
	Check        PaymentMethod = "check"
	OtherMethod  PaymentMethod = "other"
)

// PaymentMethods lists the selectable methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Cash, CreditCard, DebitCard, BankTransfer, WireTransfer, Check, OtherMethod}
}

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case Cash, CreditCard, DebitCard, BankTransfer, WireTransfer, Check, OtherMethod:
		return true
	}
	return false
}

// Label returns the human-readable form shown in select options.
func (m PaymentMethod) Label() string {
	switch m {
	case Cash:
		return "Cash"
	case CreditCard:
		return "Credit Card"
	case DebitCard:
		return "Debit Card"
	case BankTransfer:
		return "Bank Transfer"
	case WireTransfer:
		return "Wire Transfer"
	case Check:
		return "Check"
	case OtherMethod:
		return "Other"
	}
	return string(m)
}
