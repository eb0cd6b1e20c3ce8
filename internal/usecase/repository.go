package usecase

import (
	"context"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
)

// PrintJobRepository хранит историю заданий печати.
type PrintJobRepository interface {
	Create(ctx context.Context, job *domain.PrintJob) error
	Get(ctx context.Context, id string) (*domain.PrintJob, error)
}

// JobResultRepository — журнал асинхронных ответов устройства по заданию.
type JobResultRepository interface {
	Append(ctx context.Context, jobID string, result domain.CommandResult) error
	List(ctx context.Context, jobID string) ([]domain.CommandResult, error)
}
