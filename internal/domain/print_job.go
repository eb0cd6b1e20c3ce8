package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PrintJobStatus string

const (
	PrintJobDispatched PrintJobStatus = "dispatched"
	PrintJobAborted    PrintJobStatus = "aborted"
)

// PrintJob — запись о задании печати для истории.
type PrintJob struct {
	ID        string
	OrderID   *string
	OrderType string
	Status    PrintJobStatus
	Commands  int
	Total     decimal.Decimal
	Error     *string
	CreatedAt time.Time
}

func NewPrintJob(id string, createdAt time.Time) *PrintJob {
	return &PrintJob{
		ID:        id,
		Status:    PrintJobDispatched,
		Total:     decimal.Zero,
		CreatedAt: createdAt,
	}
}

// Abort помечает задание как прерванное с причиной.
func (j *PrintJob) Abort(err error) {
	j.Status = PrintJobAborted
	if err != nil {
		msg := err.Error()
		j.Error = &msg
	}
}
