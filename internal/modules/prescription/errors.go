package prescription

import "errors"

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrInvalidDate          = errors.New("invalid date format")
	ErrUnknownMedication    = errors.New("referenced medication not found")
)
