package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrForbidden               = errors.New("operation allowed only on own account")
	ErrEmailAlreadyExists      = errors.New("email already registered")
	ErrNationalIDAlreadyExists = errors.New("national id already registered")
	ErrInvalidBirthDate        = errors.New("invalid birth date format")
)
