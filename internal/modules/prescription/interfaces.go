package prescription

import (
	"context"
	"time"

	"medcontrol/internal/domain"
)

type PrescriptionRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Prescription) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Prescription, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Prescription, int64, error)
	ListActive(ctx context.Context, userID string, today time.Time) ([]domain.Prescription, error)
	Update(ctx context.Context, p *domain.Prescription, items []domain.PrescriptionItem) error
	Delete(ctx context.Context, id, userID string) error
}

// MedicationReader checks that item references point at the caller's own
// medications.
type MedicationReader interface {
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Medication, error)
}
