package converter

import (
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJobConverter(t *testing.T) {
	conv := NewPrintJobConverterImpl()

	job := domain.NewPrintJob("0d6c7d9e-7d5b-4f0a-8d0e-2b2b3f1c4a55", time.Date(2024, 3, 5, 17, 30, 0, 0, time.UTC))
	job.Total = decimal.RequireFromString("18.5")
	job.Abort(errors.New("printer device unavailable"))

	model := conv.ToModel(job)
	assert.Equal(t, "18.50", model.Total)
	assert.Nil(t, model.OrderType)
	assert.Equal(t, "aborted", model.Status)

	back, err := conv.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, job.ID, back.ID)
	assert.True(t, job.Total.Equal(back.Total))
	assert.Equal(t, job.Status, back.Status)
	require.NotNil(t, back.Error)
	assert.Equal(t, "printer device unavailable", *back.Error)

	_, err = conv.ToEntity(&PrintJobModel{Total: "n/a"})
	assert.Error(t, err)
}
