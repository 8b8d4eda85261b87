package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"size:100;uniqueIndex;not null"`
	NationalID   *string    `json:"national_id,omitempty" gorm:"size:11;uniqueIndex"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Phone        string     `json:"phone,omitempty" gorm:"size:20"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
