package reminder

import (
	"context"

	"medcontrol/internal/domain"
)

type ReminderRepositoryInterface interface {
	Create(ctx context.Context, r *domain.Reminder) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Reminder, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Reminder, int64, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Reminder, error)
	Update(ctx context.Context, r *domain.Reminder) error
	Delete(ctx context.Context, id, userID string) error
}

type MedicationReader interface {
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Medication, error)
}
