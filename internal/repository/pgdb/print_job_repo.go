package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// PrintJobRepo хранит историю заданий печати в PostgreSQL.
type PrintJobRepo struct {
	pool *pgxpool.Pool
	conv converter.PrintJobConverter
}

func NewPrintJobRepo(pool *pgxpool.Pool, conv converter.PrintJobConverter) *PrintJobRepo {
	return &PrintJobRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет задание. Повторная запись с тем же id обновляет статус и счётчики.
func (r *PrintJobRepo) Create(ctx context.Context, job *domain.PrintJob) error {
	model := r.conv.ToModel(job)
	query := `
		INSERT INTO print_jobs (
			id,
			order_id,
			order_type,
			status,
			commands,
			total,
			error,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			commands = EXCLUDED.commands,
			error = EXCLUDED.error;
	`

	if _, err := r.pool.Exec(ctx, query,
		model.ID,
		model.OrderID,
		model.OrderType,
		model.Status,
		model.Commands,
		model.Total,
		model.Error,
		model.CreatedAt,
	); err != nil {
		if postgresCheckViolation(err) {
			return fmt.Errorf("%s: invalid print job %s: %w", whereami.WhereAmI(), job.ID, err)
		}
		return fmt.Errorf("%s: failed to insert print job: %w", whereami.WhereAmI(), err)
	}

	return nil
}

// Get возвращает задание по id или e.ErrPrintJobNotFound.
func (r *PrintJobRepo) Get(ctx context.Context, id string) (*domain.PrintJob, error) {
	query := `
		SELECT id::text, order_id, order_type, status, commands, total::text, error, created_at
		FROM print_jobs
		WHERE id = $1;
	`

	var model converter.PrintJobModel
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.OrderID,
		&model.OrderType,
		&model.Status,
		&model.Commands,
		&model.Total,
		&model.Error,
		&model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrPrintJobNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	job, err := r.conv.ToEntity(&model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return job, nil
}

func postgresCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "23514" || pgErr.Code == "22P02")
}
