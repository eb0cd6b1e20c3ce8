package converter

import (
	"fmt"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/shopspring/decimal"
)

// PrintJobConverter преобразует PrintJob между domain и моделью PostgreSQL.
type PrintJobConverter interface {
	ToModel(entity *domain.PrintJob) *PrintJobModel
	ToEntity(model *PrintJobModel) (*domain.PrintJob, error)
}

type PrintJobConverterImpl struct{}

func NewPrintJobConverterImpl() *PrintJobConverterImpl {
	return &PrintJobConverterImpl{}
}

func (c *PrintJobConverterImpl) ToModel(entity *domain.PrintJob) *PrintJobModel {
	var orderType *string
	if entity.OrderType != "" {
		t := entity.OrderType
		orderType = &t
	}

	return &PrintJobModel{
		ID:        entity.ID,
		OrderID:   entity.OrderID,
		OrderType: orderType,
		Status:    string(entity.Status),
		Commands:  entity.Commands,
		Total:     entity.Total.StringFixed(2),
		Error:     entity.Error,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *PrintJobConverterImpl) ToEntity(model *PrintJobModel) (*domain.PrintJob, error) {
	total, err := decimal.NewFromString(model.Total)
	if err != nil {
		return nil, fmt.Errorf("invalid total %q: %w", model.Total, err)
	}

	var orderType string
	if model.OrderType != nil {
		orderType = *model.OrderType
	}

	return &domain.PrintJob{
		ID:        model.ID,
		OrderID:   model.OrderID,
		OrderType: orderType,
		Status:    domain.PrintJobStatus(model.Status),
		Commands:  model.Commands,
		Total:     total,
		Error:     model.Error,
		CreatedAt: model.CreatedAt,
	}, nil
}
