package health

import "errors"

var (
	ErrHealthRecordNotFound = errors.New("health record not found")
	ErrInvalidRecordType    = errors.New("invalid health record type")
	ErrMissingMeasurement   = errors.New("measurement fields missing for record type")
	ErrInvalidPeriod        = errors.New("invalid period bounds")
)
