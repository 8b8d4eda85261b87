package repository

import (
	"context"

	"medcontrol/internal/domain"

	"gorm.io/gorm"
)

type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, rem *domain.Reminder) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *ReminderRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Reminder, error) {
	var rem domain.Reminder
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rem).Error
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *ReminderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Reminder, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&domain.Reminder{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Reminder
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// ListActiveByUser returns active reminders; "due today" filtering happens
// in the service because the weekday list lives in a serialized column.
func (r *ReminderRepository) ListActiveByUser(ctx context.Context, userID string) ([]domain.Reminder, error) {
	var items []domain.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *ReminderRepository) Update(ctx context.Context, rem *domain.Reminder) error {
	return r.db.WithContext(ctx).Save(rem).Error
}

func (r *ReminderRepository) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
