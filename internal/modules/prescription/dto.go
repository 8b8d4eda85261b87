package prescription

import (
	"time"

	"medcontrol/internal/domain"
)

type ItemRequest struct {
	MedicationID *string `json:"medication_id"`
	Description  string  `json:"description" binding:"required" validate:"required,max=200"`
	Directions   string  `json:"directions" validate:"max=500"`
	Quantity     *int    `json:"quantity" validate:"omitempty,gte=1"`
}

type CreatePrescriptionRequest struct {
	DoctorName string        `json:"doctor_name" validate:"max=100"`
	DoctorReg  string        `json:"doctor_reg" validate:"max=20"`
	IssuedAt   string        `json:"issued_at" binding:"required" validate:"required,datetime=2006-01-02"`
	ExpiresAt  string        `json:"expires_at" validate:"omitempty,datetime=2006-01-02"`
	Notes      string        `json:"notes"`
	ImageURL   string        `json:"image_url"`
	Items      []ItemRequest `json:"items" validate:"dive"`
}

type UpdatePrescriptionRequest = CreatePrescriptionRequest

type ItemResponse struct {
	ID           string  `json:"id"`
	MedicationID *string `json:"medication_id,omitempty"`
	Description  string  `json:"description"`
	Directions   string  `json:"directions"`
	Quantity     *int    `json:"quantity,omitempty"`
}

type PrescriptionResponse struct {
	ID         string         `json:"id"`
	DoctorName string         `json:"doctor_name,omitempty"`
	DoctorReg  string         `json:"doctor_reg,omitempty"`
	IssuedAt   string         `json:"issued_at"`
	ExpiresAt  *string        `json:"expires_at,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	ImageURL   string         `json:"image_url,omitempty"`
	Valid      bool           `json:"valid"`
	Items      []ItemResponse `json:"items"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toResponse(p *domain.Prescription, now time.Time) PrescriptionResponse {
	items := make([]ItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, ItemResponse{
			ID:           it.ID,
			MedicationID: it.MedicationID,
			Description:  it.Description,
			Directions:   it.Directions,
			Quantity:     it.Quantity,
		})
	}

	var expires *string
	if p.ExpiresAt != nil {
		s := p.ExpiresAt.Format("2006-01-02")
		expires = &s
	}

	return PrescriptionResponse{
		ID:         p.ID,
		DoctorName: p.DoctorName,
		DoctorReg:  p.DoctorReg,
		IssuedAt:   p.IssuedAt.Format("2006-01-02"),
		ExpiresAt:  expires,
		Notes:      p.Notes,
		ImageURL:   p.ImageURL,
		Valid:      p.IsValid(now),
		Items:      items,
		CreatedAt:  p.CreatedAt,
	}
}

func toResponseList(ps []domain.Prescription, now time.Time) []PrescriptionResponse {
	out := make([]PrescriptionResponse, 0, len(ps))
	for i := range ps {
		out = append(out, toResponse(&ps[i], now))
	}
	return out
}
