package medication

import (
	"time"

	"medcontrol/internal/domain"
)

type CreateMedicationRequest struct {
	FullName  string `json:"full_name" binding:"required" validate:"required,max=100"`
	ShortName string `json:"short_name" validate:"max=50"`
	Dosage    string `json:"dosage" validate:"max=50"`
	Form      string `json:"form" validate:"max=30"`
	PhotoURL  string `json:"photo_url"`
}

type UpdateMedicationRequest struct {
	FullName  string `json:"full_name" binding:"required" validate:"required,max=100"`
	ShortName string `json:"short_name" validate:"max=50"`
	Dosage    string `json:"dosage" validate:"max=50"`
	Form      string `json:"form" validate:"max=30"`
	PhotoURL  string `json:"photo_url"`
}

type MedicationResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	ShortName string    `json:"short_name"`
	Dosage    string    `json:"dosage"`
	Form      string    `json:"form"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(m *domain.Medication) MedicationResponse {
	return MedicationResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		ShortName: m.ShortName,
		Dosage:    m.Dosage,
		Form:      m.Form,
		PhotoURL:  m.PhotoURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toResponseList(ms []domain.Medication) []MedicationResponse {
	out := make([]MedicationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, toResponse(&ms[i]))
	}
	return out
}
