package reminder

import "errors"

var (
	ErrReminderNotFound  = errors.New("reminder not found")
	ErrUnknownMedication = errors.New("referenced medication not found")
)
