package http

import (
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
)

type printResponse struct {
	JobID string `json:"job_id"`
}

type printerStatusResponse struct {
	Connected bool `json:"connected"`
}

type commandResultResponse struct {
	Seq     int    `json:"seq"`
	Command string `json:"command"`
	Kind    string `json:"kind"`
	OK      bool   `json:"ok"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type printJobResponse struct {
	ID        string                  `json:"id"`
	OrderID   *string                 `json:"order_id,omitempty"`
	OrderType string                  `json:"order_type,omitempty"`
	Status    string                  `json:"status"`
	Commands  int                     `json:"commands"`
	Total     string                  `json:"total"`
	Error     *string                 `json:"error,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	Results   []commandResultResponse `json:"results"`
}

type kioskConfigResponse struct {
	DashboardURL         string `json:"dashboard_url"`
	ConnectivityInterval string `json:"connectivity_interval"`
	ConnectivityFailures int    `json:"connectivity_failures"`
}

type autofillResponse struct {
	Script string `json:"script"`
}

func toPrintJobResponse(info *usecase.PrintJobInfo) *printJobResponse {
	job := info.Job
	resp := &printJobResponse{
		ID:        job.ID,
		OrderID:   job.OrderID,
		OrderType: job.OrderType,
		Status:    string(job.Status),
		Commands:  job.Commands,
		Total:     job.Total.StringFixed(2),
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
		Results:   make([]commandResultResponse, 0, len(info.Results)),
	}

	for _, r := range info.Results {
		resp.Results = append(resp.Results, commandResultResponse{
			Seq:     r.Seq,
			Command: r.Command,
			Kind:    string(r.Kind),
			OK:      r.OK,
			Code:    r.Code,
			Message: r.Message,
		})
	}

	return resp
}

func toKioskConfigResponse(cfg *usecase.KioskConfig) *kioskConfigResponse {
	return &kioskConfigResponse{
		DashboardURL:         cfg.DashboardURL,
		ConnectivityInterval: cfg.ConnectivityInterval.String(),
		ConnectivityFailures: cfg.ConnectivityFailures,
	}
}
