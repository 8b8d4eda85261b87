package inventory

import (
	"time"

	"medcontrol/internal/domain"
)

type CreateInventoryItemRequest struct {
	MedicationID string `json:"medication_id" binding:"required" validate:"required"`
	CurrentQty   int    `json:"current_qty" validate:"gte=0"`
	AlertQty     *int   `json:"alert_qty" validate:"omitempty,gte=0"`
}

type UpdateInventoryItemRequest struct {
	CurrentQty int  `json:"current_qty" validate:"gte=0"`
	AlertQty   *int `json:"alert_qty" validate:"omitempty,gte=0"`
}

type InventoryItemResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	CurrentQty   int       `json:"current_qty"`
	AlertQty     int       `json:"alert_qty"`
	LowStock     bool      `json:"low_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:           i.ID,
		MedicationID: i.MedicationID,
		CurrentQty:   i.CurrentQty,
		AlertQty:     i.AlertQty,
		LowStock:     i.IsLowStock(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func toResponseList(items []domain.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out
}
