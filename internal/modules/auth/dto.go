package auth

// Field names below are part of the API contract.

type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Email      string `json:"email" validate:"required,email"`
	NationalID string `json:"nationalId" validate:"omitempty,len=11,numeric"`
	BirthDate  string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Password   string `json:"password" validate:"required,min=6,max=100"`
	Phone      string `json:"phone" validate:"omitempty,min=10,max=20,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse is returned by register, login and refresh alike.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
}
