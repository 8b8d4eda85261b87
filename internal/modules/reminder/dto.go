package reminder

import (
	"time"

	"medcontrol/internal/domain"
)

type CreateReminderRequest struct {
	MedicationID string   `json:"medication_id" binding:"required" validate:"required"`
	Times        []string `json:"times" binding:"required" validate:"required,min=1,dive,datetime=15:04"`
	DaysOfWeek   []int    `json:"days_of_week" validate:"dive,gte=0,lte=6"`
	DoseQty      *float64 `json:"dose_qty" validate:"omitempty,gt=0"`
	Instructions string   `json:"instructions" validate:"max=500"`
	Active       *bool    `json:"active"`
}

type UpdateReminderRequest = CreateReminderRequest

type ReminderResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	Times        []string  `json:"times"`
	DaysOfWeek   []int     `json:"days_of_week,omitempty"`
	DoseQty      *float64  `json:"dose_qty,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	Active       bool      `json:"active"`
	DueToday     bool      `json:"due_today"`
	CreatedAt    time.Time `json:"created_at"`
}

func toResponse(r *domain.Reminder, today time.Time) ReminderResponse {
	return ReminderResponse{
		ID:           r.ID,
		MedicationID: r.MedicationID,
		Times:        r.Times,
		DaysOfWeek:   r.DaysOfWeek,
		DoseQty:      r.DoseQty,
		Instructions: r.Instructions,
		Active:       r.Active,
		DueToday:     r.Active && r.IsDueOn(today),
		CreatedAt:    r.CreatedAt,
	}
}

func toResponseList(rs []domain.Reminder, today time.Time) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(rs))
	for i := range rs {
		out = append(out, toResponse(&rs[i], today))
	}
	return out
}
