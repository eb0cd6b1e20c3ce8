package usecase

import (
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/google/uuid"
)

// PRINT USECASE

// PrintJobInfo — задание печати вместе с полученными ответами устройства.
type PrintJobInfo struct {
	Job     *domain.PrintJob
	Results []domain.CommandResult
}

func NewPrintJobInfo(job *domain.PrintJob, results []domain.CommandResult) *PrintJobInfo {
	return &PrintJobInfo{Job: job, Results: results}
}

// INFRASTRUCTURE

// PrintJobEvent — событие о задании печати для Kafka.
type PrintJobEvent struct {
	EventID    string
	JobID      string
	OrderID    *string
	OrderType  string
	Status     string
	Commands   int
	Total      string
	Error      *string
	OccurredAt time.Time
}

func NewPrintJobEvent(job *domain.PrintJob) *PrintJobEvent {
	return &PrintJobEvent{
		EventID:    uuid.NewString(),
		JobID:      job.ID,
		OrderID:    job.OrderID,
		OrderType:  job.OrderType,
		Status:     string(job.Status),
		Commands:   job.Commands,
		Total:      job.Total.StringFixed(2),
		Error:      job.Error,
		OccurredAt: job.CreatedAt,
	}
}

// KIOSK USECASE

type KioskConfig struct {
	DashboardURL         string
	ConnectivityInterval time.Duration
	ConnectivityFailures int
}
