package health

import (
	"time"

	"medcontrol/internal/domain"
)

type CreateHealthRecordRequest struct {
	Type string `json:"type" binding:"required" validate:"required,oneof=pressure glucose"`

	Systolic  *int `json:"systolic" validate:"omitempty,gt=0"`
	Diastolic *int `json:"diastolic" validate:"omitempty,gt=0"`
	Pulse     *int `json:"pulse" validate:"omitempty,gt=0"`

	Glucose *float64 `json:"glucose" validate:"omitempty,gt=0"`
	Fasting *bool    `json:"fasting"`

	Notes      string     `json:"notes" validate:"max=500"`
	MeasuredAt *time.Time `json:"measured_at"`
}

type UpdateHealthRecordRequest = CreateHealthRecordRequest

type HealthRecordResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Systolic   *int      `json:"systolic,omitempty"`
	Diastolic  *int      `json:"diastolic,omitempty"`
	Pulse      *int      `json:"pulse,omitempty"`
	Glucose    *float64  `json:"glucose,omitempty"`
	Fasting    *bool     `json:"fasting,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	MeasuredAt time.Time `json:"measured_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func toResponse(h *domain.HealthRecord) HealthRecordResponse {
	return HealthRecordResponse{
		ID:         h.ID,
		Type:       string(h.Type),
		Systolic:   h.Systolic,
		Diastolic:  h.Diastolic,
		Pulse:      h.Pulse,
		Glucose:    h.Glucose,
		Fasting:    h.Fasting,
		Notes:      h.Notes,
		MeasuredAt: h.MeasuredAt,
		CreatedAt:  h.CreatedAt,
	}
}

func toResponseList(hs []domain.HealthRecord) []HealthRecordResponse {
	out := make([]HealthRecordResponse, 0, len(hs))
	for i := range hs {
		out = append(out, toResponse(&hs[i]))
	}
	return out
}
