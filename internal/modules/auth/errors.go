package auth

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrNationalIDAlreadyExists  = errors.New("national id already exists")
	ErrInvalidRefreshToken      = errors.New("invalid refresh token")
	ErrRefreshTokenNotUsable    = errors.New("refresh token expired or revoked")
	ErrInvalidBirthDate         = errors.New("invalid birth date")
)
