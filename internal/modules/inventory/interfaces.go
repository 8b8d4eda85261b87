package inventory

import (
	"context"

	"medcontrol/internal/domain"
)

type InventoryRepositoryInterface interface {
	Create(ctx context.Context, i *domain.InventoryItem) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.InventoryItem, error)
	GetByUserAndMedication(ctx context.Context, userID, medicationID string) (*domain.InventoryItem, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.InventoryItem, int64, error)
	ListLowStock(ctx context.Context, userID string) ([]domain.InventoryItem, error)
	Update(ctx context.Context, i *domain.InventoryItem) error
	Delete(ctx context.Context, id, userID string) error
}

type MedicationReader interface {
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Medication, error)
}
