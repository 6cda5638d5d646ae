package models

import "time"

// InvoiceDetail is an invoice as it appears on a statement, augmented with
// the backend-derived paid and outstanding amounts (outstanding = amount −
// paid). All three values are computed by the backend and only rendered here.
type InvoiceDetail struct {
	ID                string    `json:"id"`
	Amount            Money     `json:"amount"`
	PaidAmount        Money     `json:"paid_amount"`
	OutstandingAmount Money     `json:"outstanding_amount"`
	IssuedAt          time.Time `json:"issued_at"`
	Description       *string   `json:"description,omitempty"`
}

// StudentAccountStatement is the backend-computed statement for one student.
// The aggregate totals equal the element-wise sums over Invoices.
type StudentAccountStatement struct {
	StudentID        string          `json:"student_id"`
	StudentName      string          `json:"student_name"`
	SchoolID         string          `json:"school_id"`
	SchoolName       string          `json:"school_name"`
	TotalInvoiced    Money           `json:"total_invoiced"`
	TotalPaid        Money           `json:"total_paid"`
	TotalOutstanding Money           `json:"total_outstanding"`
	Invoices         []InvoiceDetail `json:"invoices"`
}

// StudentSummary is one student's line on a school statement.
type StudentSummary struct {
	StudentID        string `json:"student_id"`
	StudentName      string `json:"student_name"`
	TotalOutstanding Money  `json:"total_outstanding"`
}

// SchoolAccountStatement is the backend-computed statement for one school.
// NumberOfStudents equals len(Students) and the totals aggregate all of
// the school's students.
type SchoolAccountStatement struct {
	SchoolID         string           `json:"school_id"`
	SchoolName       string           `json:"school_name"`
	TotalInvoiced    Money            `json:"total_invoiced"`
	TotalPaid        Money            `json:"total_paid"`
	TotalOutstanding Money            `json:"total_outstanding"`
	NumberOfStudents int              `json:"number_of_students"`
	Students         []StudentSummary `json:"students"`
}
