package repository

import (
	"context"
	"time"

	"medcontrol/internal/domain"

	"gorm.io/gorm"
)

type HealthRecordRepository struct {
	db *gorm.DB
}

func NewHealthRecordRepository(db *gorm.DB) *HealthRecordRepository {
	return &HealthRecordRepository{db: db}
}

func (r *HealthRecordRepository) Create(ctx context.Context, h *domain.HealthRecord) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HealthRecordRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.HealthRecord, error) {
	var h domain.HealthRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HealthRecordRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.HealthRecord, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&domain.HealthRecord{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.HealthRecord
	err := q.Order("measured_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *HealthRecordRepository) ListByType(ctx context.Context, userID string, t domain.HealthRecordType, limit, offset int) ([]domain.HealthRecord, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.HealthRecord{}).
		Where("user_id = ? AND type = ?", userID, t)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.HealthRecord
	err := q.Order("measured_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *HealthRecordRepository) ListLatest(ctx context.Context, userID string, limit int) ([]domain.HealthRecord, error) {
	var items []domain.HealthRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("measured_at DESC").Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *HealthRecordRepository) ListByPeriod(ctx context.Context, userID string, start, end time.Time, limit, offset int) ([]domain.HealthRecord, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.HealthRecord{}).
		Where("user_id = ? AND measured_at >= ? AND measured_at <= ?", userID, start, end)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.HealthRecord
	err := q.Order("measured_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *HealthRecordRepository) Update(ctx context.Context, h *domain.HealthRecord) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HealthRecordRepository) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.HealthRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
