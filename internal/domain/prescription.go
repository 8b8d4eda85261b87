package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prescription groups the items a doctor prescribed in one document.
// Items are owned exclusively by their prescription and are replaced as a
// unit on update.
type Prescription struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID string `json:"user_id" gorm:"type:uuid;index;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	DoctorName string     `json:"doctor_name,omitempty" gorm:"size:100"`
	DoctorReg  string     `json:"doctor_reg,omitempty" gorm:"size:20"`
	IssuedAt   time.Time  `json:"issued_at" gorm:"not null"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	ImageURL   string     `json:"image_url,omitempty"`

	Items []PrescriptionItem `json:"items" gorm:"foreignKey:PrescriptionID"`

	CreatedAt time.Time `json:"created_at"`
}

func (Prescription) TableName() string { return "prescriptions" }

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsValid reports whether the prescription has not expired on the given day.
// No expiry date means it never expires; the expiry day itself still counts
// as valid.
func (p *Prescription) IsValid(today time.Time) bool {
	if p.ExpiresAt == nil {
		return true
	}
	y1, m1, d1 := today.Date()
	y2, m2, d2 := p.ExpiresAt.Date()
	day := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	exp := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return !day.After(exp)
}

type PrescriptionItem struct {
	ID             string `json:"id" gorm:"type:uuid;primaryKey"`
	PrescriptionID string `json:"prescription_id" gorm:"type:uuid;index;not null"`

	MedicationID *string     `json:"medication_id,omitempty" gorm:"type:uuid;index"`
	Medication   *Medication `json:"-" gorm:"foreignKey:MedicationID"`

	Description string `json:"description" gorm:"not null"`
	Directions  string `json:"directions" gorm:"not null"`
	Quantity    *int   `json:"quantity,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (PrescriptionItem) TableName() string { return "prescription_items" }

func (i *PrescriptionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
