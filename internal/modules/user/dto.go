package user

import (
	"medcontrol/internal/domain"
)

type UpdateUserRequest struct {
	Name       string `json:"name" binding:"required" validate:"required,max=100"`
	Email      string `json:"email" binding:"required" validate:"required,email"`
	NationalID string `json:"nationalId" validate:"omitempty,len=11,numeric"`
	BirthDate  string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Phone      string `json:"phone" validate:"max=20"`
	Password   string `json:"password" validate:"omitempty,min=8"`
}

type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	NationalID *string `json:"nationalId,omitempty"`
	BirthDate  *string `json:"birthDate,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

func toResponse(u *domain.User) UserResponse {
	var birthDate *string
	if u.BirthDate != nil {
		s := u.BirthDate.Format("2006-01-02")
		birthDate = &s
	}
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		NationalID: u.NationalID,
		BirthDate:  birthDate,
		Phone:      u.Phone,
		CreatedAt:  u.CreatedAt.Format("2006-01-02"),
	}
}
