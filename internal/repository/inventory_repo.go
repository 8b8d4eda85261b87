package repository

import (
	"context"

	"medcontrol/internal/domain"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, i *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InventoryRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByUserAndMedication finds the single inventory row for a medication,
// if the user already tracks it.
func (r *InventoryRepository) GetByUserAndMedication(ctx context.Context, userID, medicationID string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND medication_id = ?", userID, medicationID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.InventoryItem, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&domain.InventoryItem{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.InventoryItem
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *InventoryRepository) ListLowStock(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND current_qty <= alert_qty", userID).
		Order("current_qty ASC").
		Find(&items).Error
	return items, err
}

func (r *InventoryRepository) Update(ctx context.Context, i *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InventoryRepository) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
