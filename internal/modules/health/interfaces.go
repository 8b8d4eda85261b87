package health

import (
	"context"
	"time"

	"medcontrol/internal/domain"
)

type HealthRecordRepositoryInterface interface {
	Create(ctx context.Context, h *domain.HealthRecord) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.HealthRecord, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.HealthRecord, int64, error)
	ListByType(ctx context.Context, userID string, t domain.HealthRecordType, limit, offset int) ([]domain.HealthRecord, int64, error)
	ListLatest(ctx context.Context, userID string, limit int) ([]domain.HealthRecord, error)
	ListByPeriod(ctx context.Context, userID string, start, end time.Time, limit, offset int) ([]domain.HealthRecord, int64, error)
	Update(ctx context.Context, h *domain.HealthRecord) error
	Delete(ctx context.Context, id, userID string) error
}
