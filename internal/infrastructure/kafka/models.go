package kafka

import (
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
)

// printJobMessage — JSON-представление события задания печати в топике.
type printJobMessage struct {
	EventID    string    `json:"event_id"`
	JobID      string    `json:"job_id"`
	OrderID    *string   `json:"order_id,omitempty"`
	OrderType  string    `json:"order_type,omitempty"`
	Status     string    `json:"status"`
	Commands   int       `json:"commands"`
	Total      string    `json:"total"`
	Error      *string   `json:"error,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toMessage(ev *usecase.PrintJobEvent) printJobMessage {
	return printJobMessage{
		EventID:    ev.EventID,
		JobID:      ev.JobID,
		OrderID:    ev.OrderID,
		OrderType:  ev.OrderType,
		Status:     ev.Status,
		Commands:   ev.Commands,
		Total:      ev.Total,
		Error:      ev.Error,
		OccurredAt: ev.OccurredAt,
	}
}

func messageKey(ev *usecase.PrintJobEvent) []byte {
	if ev.OrderID != nil {
		return []byte(*ev.OrderID)
	}
	return []byte(ev.JobID)
}
