package apiclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studentStatementBody = `{
	"student_id": "student-1",
	"student_name": "Ada",
	"school_id": "school-1",
	"school_name": "Hillside",
	"total_invoiced": {"amount_cents": 2000, "currency": "USD"},
	"total_paid": {"amount_cents": 1000, "currency": "USD"},
	"total_outstanding": {"amount_cents": 1000, "currency": "USD"},
	"invoices": [
		{
			"id": "inv-1",
			"amount": {"amount_cents": 1200, "currency": "USD"},
			"paid_amount": {"amount_cents": 900, "currency": "USD"},
			"outstanding_amount": {"amount_cents": 300, "currency": "USD"},
			"issued_at": "2024-03-01T00:00:00Z"
		},
		{
			"id": "inv-2",
			"amount": {"amount_cents": 800, "currency": "USD"},
			"paid_amount": {"amount_cents": 100, "currency": "USD"},
			"outstanding_amount": {"amount_cents": 700, "currency": "USD"},
			"issued_at": "2024-04-01T00:00:00Z"
		}
	]
}`

func TestStudentStatementDecoding(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account-statements/students/student-1", r.URL.Path)
		_, _ = w.Write([]byte(studentStatementBody))
	}))

	statement, err := client.StudentStatement(context.Background(), "student-1")
	require.NoError(t, err)

	assert.Equal(t, "Ada", statement.StudentName)
	assert.Equal(t, "Hillside", statement.SchoolName)
	require.Len(t, statement.Invoices, 2)

	// The statement arrives fully aggregated; rendering must not recompute
	// it, but the backend contract says the totals equal the detail sums.
	var invoiced, paid, outstanding int64
	for _, detail := range statement.Invoices {
		invoiced += detail.Amount.AmountCents
		paid += detail.PaidAmount.AmountCents
		outstanding += detail.OutstandingAmount.AmountCents
	}
	assert.Equal(t, statement.TotalInvoiced.AmountCents, invoiced)
	assert.Equal(t, statement.TotalPaid.AmountCents, paid)
	assert.Equal(t, statement.TotalOutstanding.AmountCents, outstanding)

	// Detail order is preserved as received.
	assert.Equal(t, "inv-1", statement.Invoices[0].ID)
	assert.Equal(t, "inv-2", statement.Invoices[1].ID)
}

const schoolStatementBody = `{
	"school_id": "school-1",
	"school_name": "Hillside",
	"total_invoiced": {"amount_cents": 5000, "currency": "USD"},
	"total_paid": {"amount_cents": 2000, "currency": "USD"},
	"total_outstanding": {"amount_cents": 3000, "currency": "USD"},
	"number_of_students": 2,
	"students": [
		{"student_id": "student-1", "student_name": "Ada", "total_outstanding": {"amount_cents": 1000, "currency": "USD"}},
		{"student_id": "student-2", "student_name": "Grace", "total_outstanding": {"amount_cents": 2000, "currency": "USD"}}
	]
}`

func TestSchoolStatementDecoding(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account-statements/schools/school-1", r.URL.Path)
		_, _ = w.Write([]byte(schoolStatementBody))
	}))

	statement, err := client.SchoolStatement(context.Background(), "school-1")
	require.NoError(t, err)

	assert.Equal(t, "Hillside", statement.SchoolName)
	assert.Equal(t, statement.NumberOfStudents, len(statement.Students))
	assert.Equal(t, "Ada", statement.Students[0].StudentName)
	assert.Equal(t, int64(2000), statement.Students[1].TotalOutstanding.AmountCents)
}
