package inventory

import "errors"

var (
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrUnknownMedication     = errors.New("referenced medication not found")
)
