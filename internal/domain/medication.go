package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medication is a drug registered by a user; every other record that
// references a medication must reference one belonging to the same user.
type Medication struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID string `json:"user_id" gorm:"type:uuid;index;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	FullName  string `json:"full_name" gorm:"size:100;not null"`
	ShortName string `json:"short_name,omitempty" gorm:"size:50"`
	Dosage    string `json:"dosage,omitempty" gorm:"size:50"`
	Form      string `json:"form,omitempty" gorm:"size:30"`
	PhotoURL  string `json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Medication) TableName() string { return "medications" }

func (m *Medication) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
