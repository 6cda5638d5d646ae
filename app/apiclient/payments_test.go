package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angdmz/mattilda/app/models"
)

func TestCreatePaymentSendsImputations(t *testing.T) {
	var received models.PaymentCreate
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_ = json.NewEncoder(w).Encode(models.Payment{
			ID:          "pay-1",
			StudentID:   received.StudentID,
			AmountCents: received.AmountCents,
			Currency:    received.Currency,
			PaymentDate: time.Now().UTC(),
		})
	}))

	req := models.PaymentCreate{
		StudentID:     "student-1",
		AmountCents:   1700,
		Currency:      "USD",
		PaymentMethod: models.Cash,
		Imputations: []models.PaymentImputationInput{
			{InvoiceID: "inv-1", AmountCents: 500},
			{InvoiceID: "inv-2", AmountCents: 1200},
		},
	}
	payment, err := client.CreatePayment(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "pay-1", payment.ID)
	assert.Equal(t, int64(1700), received.AmountCents)
	require.Len(t, received.Imputations, 2)
	assert.Equal(t, "inv-1", received.Imputations[0].InvoiceID)
	assert.Equal(t, int64(1200), received.Imputations[1].AmountCents)
}

func TestDeletePayment(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/payments/pay-9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeletePayment(context.Background(), "pay-9"))
}
