package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJobMessage(t *testing.T) {
	job := domain.NewPrintJob("9b2f7e0c-5d0c-4d8e-9a44-1f1d8f6a2c11", time.Date(2024, 3, 5, 17, 30, 0, 0, time.UTC))
	orderID := "42"
	job.OrderID = &orderID
	job.OrderType = "DELIVERY"
	job.Commands = 24
	job.Total = decimal.RequireFromString("18.5")

	ev := usecase.NewPrintJobEvent(job)
	assert.Equal(t, []byte("42"), messageKey(ev))

	data, err := json.Marshal(toMessage(ev))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, job.ID, got["job_id"])
	assert.Equal(t, "42", got["order_id"])
	assert.Equal(t, "dispatched", got["status"])
	assert.Equal(t, "18.50", got["total"])
	assert.Equal(t, "2024-03-05T17:30:00Z", got["occurred_at"])
	assert.NotContains(t, got, "error")
}

func TestMessageKey_LegacyOrderUsesJobID(t *testing.T) {
	job := domain.NewPrintJob("job-1", time.Now())
	job.Abort(nil)

	ev := usecase.NewPrintJobEvent(job)
	assert.Equal(t, []byte("job-1"), messageKey(ev))
	assert.Equal(t, "aborted", ev.Status)
}
