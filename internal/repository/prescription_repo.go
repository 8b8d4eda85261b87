package repository

import (
	"context"
	"time"

	"medcontrol/internal/domain"

	"gorm.io/gorm"
)

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

// Create persists the prescription together with its items in one
// transaction.
func (r *PrescriptionRepository) Create(ctx context.Context, p *domain.Prescription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := p.Items
		p.Items = nil
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PrescriptionID = p.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		p.Items = items
		return nil
	})
}

func (r *PrescriptionRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Prescription, error) {
	var p domain.Prescription
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrescriptionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Prescription, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Prescription{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Prescription
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("issued_at DESC").Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

// ListActive returns prescriptions with no expiry date or one on/after the
// given day.
func (r *PrescriptionRepository) ListActive(ctx context.Context, userID string, today time.Time) ([]domain.Prescription, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	var items []domain.Prescription
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND (expires_at IS NULL OR expires_at >= ?)", userID, day).
		Order("issued_at DESC").
		Find(&items).Error
	return items, err
}

// Update saves the prescription and replaces its items as a unit: explicit
// delete plus insert inside one transaction, no ORM cascade.
func (r *PrescriptionRepository) Update(ctx context.Context, p *domain.Prescription, items []domain.PrescriptionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.Items = nil
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if err := tx.Where("prescription_id = ?", p.ID).
			Delete(&domain.PrescriptionItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = ""
			items[i].PrescriptionID = p.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		p.Items = items
		return nil
	})
}

func (r *PrescriptionRepository) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Prescription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("prescription_id = ?", id).Delete(&domain.PrescriptionItem{}).Error
	})
}
