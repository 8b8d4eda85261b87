package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthRecordType selects which measurement variant a record carries.
type HealthRecordType string

const (
	HealthPressure HealthRecordType = "pressure"
	HealthGlucose  HealthRecordType = "glucose"
)

// HealthRecord is a single self-measured health metric. Only the fields of
// the selected type are populated; the other variant's fields stay null.
type HealthRecord struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID string `json:"user_id" gorm:"type:uuid;index;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Type HealthRecordType `json:"type" gorm:"size:20;not null"`

	// Blood pressure variant
	Systolic  *int `json:"systolic,omitempty"`
	Diastolic *int `json:"diastolic,omitempty"`
	Pulse     *int `json:"pulse,omitempty"`

	// Blood glucose variant
	Glucose *float64 `json:"glucose,omitempty"`
	Fasting *bool    `json:"fasting,omitempty"`

	Notes      string    `json:"notes,omitempty"`
	MeasuredAt time.Time `json:"measured_at" gorm:"index;not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (HealthRecord) TableName() string { return "health_records" }

func (h *HealthRecord) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
