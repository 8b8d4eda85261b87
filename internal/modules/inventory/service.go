package inventory

import (
	"context"
	"errors"

	"medcontrol/internal/domain"
	"medcontrol/internal/pkg/pagination"

	"gorm.io/gorm"
)

const defaultAlertQty = 5

type Service struct {
	inventory   InventoryRepositoryInterface
	medications MedicationReader
}

func NewService(inventory InventoryRepositoryInterface, medications MedicationReader) *Service {
	return &Service{inventory: inventory, medications: medications}
}

// Create adds stock for a medication. If the user already tracks that
// medication, the quantities are merged into the existing row instead of
// creating a duplicate: current stock is incremented, the alert threshold
// replaced.
func (s *Service) Create(ctx context.Context, userID string, req CreateInventoryItemRequest) (*domain.InventoryItem, error) {
	if _, err := s.medications.GetByIDAndUser(ctx, req.MedicationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownMedication
		}
		return nil, err
	}

	existing, err := s.inventory.GetByUserAndMedication(ctx, userID, req.MedicationID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.CurrentQty += req.CurrentQty
		if req.AlertQty != nil {
			existing.AlertQty = *req.AlertQty
		}
		if err := s.inventory.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &domain.InventoryItem{
		UserID:       userID,
		MedicationID: req.MedicationID,
		CurrentQty:   req.CurrentQty,
		AlertQty:     defaultAlertQty,
	}
	if req.AlertQty != nil {
		item.AlertQty = *req.AlertQty
	}
	if err := s.inventory.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.InventoryItem, error) {
	item, err := s.inventory.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, userID string, p pagination.Params) (pagination.Page[InventoryItemResponse], error) {
	items, total, err := s.inventory.ListByUser(ctx, userID, p.Limit(), p.Offset())
	if err != nil {
		return pagination.Page[InventoryItemResponse]{}, err
	}
	return pagination.NewPage(toResponseList(items), p, total), nil
}

// ListLowStock returns items whose stock reached their alert threshold.
func (s *Service) ListLowStock(ctx context.Context, userID string) ([]InventoryItemResponse, error) {
	items, err := s.inventory.ListLowStock(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponseList(items), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateInventoryItemRequest) (*domain.InventoryItem, error) {
	item, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	item.CurrentQty = req.CurrentQty
	if req.AlertQty != nil {
		item.AlertQty = *req.AlertQty
	}

	if err := s.inventory.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	err := s.inventory.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInventoryItemNotFound
	}
	return err
}
