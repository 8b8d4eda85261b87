package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder schedules medication doses at fixed times of day, optionally
// restricted to certain weekdays (0=Sunday .. 6=Saturday).
type Reminder struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID string `json:"user_id" gorm:"type:uuid;index;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	MedicationID string     `json:"medication_id" gorm:"type:uuid;index;not null"`
	Medication   Medication `json:"-" gorm:"foreignKey:MedicationID"`

	Times        []string `json:"times" gorm:"serializer:json;not null"`
	DaysOfWeek   []int    `json:"days_of_week,omitempty" gorm:"serializer:json"`
	DoseQty      *float64 `json:"dose_qty,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Active       bool     `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
}

func (Reminder) TableName() string { return "reminders" }

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// IsDueOn reports whether the reminder fires on the given day.
// An empty weekday list means every day.
func (r *Reminder) IsDueOn(day time.Time) bool {
	if len(r.DaysOfWeek) == 0 {
		return true
	}
	weekday := int(day.Weekday())
	for _, d := range r.DaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}
