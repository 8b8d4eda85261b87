package repository

import (
	"context"
	"strings"

	"medcontrol/internal/domain"

	"gorm.io/gorm"
)

type MedicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

func (r *MedicationRepository) Create(ctx context.Context, m *domain.Medication) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByIDAndUser scopes the lookup by owner: a medication belonging to
// someone else is indistinguishable from a missing one.
func (r *MedicationRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Medication, error) {
	var m domain.Medication
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MedicationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Medication, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&domain.Medication{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Medication
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// SearchByName matches the full or short name, case-insensitive.
func (r *MedicationRepository) SearchByName(ctx context.Context, name, userID string, limit, offset int) ([]domain.Medication, int64, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(name)) + "%"
	q := r.db.WithContext(ctx).Model(&domain.Medication{}).
		Where("user_id = ? AND (LOWER(full_name) LIKE ? OR LOWER(short_name) LIKE ?)", userID, pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Medication
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *MedicationRepository) Update(ctx context.Context, m *domain.Medication) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MedicationRepository) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Medication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
