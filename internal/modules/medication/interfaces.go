package medication

import (
	"context"

	"medcontrol/internal/domain"
)

type MedicationRepositoryInterface interface {
	Create(ctx context.Context, m *domain.Medication) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Medication, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Medication, int64, error)
	SearchByName(ctx context.Context, name, userID string, limit, offset int) ([]domain.Medication, int64, error)
	Update(ctx context.Context, m *domain.Medication) error
	Delete(ctx context.Context, id, userID string) error
}
