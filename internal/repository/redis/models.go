package redis

import "github.com/DRSN-tech/kiosk-printer/internal/domain"

// commandResultRedisModel — ответ устройства в журнале задания.
type commandResultRedisModel struct {
	Kind    string `json:"kind"`
	Command string `json:"command"`
	Seq     int    `json:"seq"`
	OK      bool   `json:"ok"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func toRedisModel(r domain.CommandResult) commandResultRedisModel {
	return commandResultRedisModel{
		Kind:    string(r.Kind),
		Command: r.Command,
		Seq:     r.Seq,
		OK:      r.OK,
		Code:    r.Code,
		Message: r.Message,
	}
}

func toDomain(m commandResultRedisModel) domain.CommandResult {
	return domain.CommandResult{
		Kind:    domain.ResultKind(m.Kind),
		Command: m.Command,
		Seq:     m.Seq,
		OK:      m.OK,
		Code:    m.Code,
		Message: m.Message,
	}
}
