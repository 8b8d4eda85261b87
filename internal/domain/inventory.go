package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem tracks how many units of a medication a user has at home.
type InventoryItem struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID string `json:"user_id" gorm:"type:uuid;index;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	MedicationID string     `json:"medication_id" gorm:"type:uuid;index;not null"`
	Medication   Medication `json:"-" gorm:"foreignKey:MedicationID"`

	CurrentQty int `json:"current_qty" gorm:"not null"`
	AlertQty   int `json:"alert_qty" gorm:"not null;default:5"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InventoryItem) TableName() string { return "inventory_items" }

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// IsLowStock reports whether the stock reached the alert threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentQty <= i.AlertQty
}
