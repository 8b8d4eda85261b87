package medication

import (
	"context"
	"errors"
	"strings"

	"medcontrol/internal/domain"
	"medcontrol/internal/pkg/pagination"

	"gorm.io/gorm"
)

// Service contains business logic for the user's medication catalog.
// Every operation is scoped to the owning user: a medication belonging
// to someone else behaves as if it does not exist.
type Service struct {
	medications MedicationRepositoryInterface
}

func NewService(medications MedicationRepositoryInterface) *Service {
	return &Service{medications: medications}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateMedicationRequest) (*domain.Medication, error) {
	m := &domain.Medication{
		UserID:    userID,
		FullName:  strings.TrimSpace(req.FullName),
		ShortName: strings.TrimSpace(req.ShortName),
		Dosage:    req.Dosage,
		Form:      req.Form,
		PhotoURL:  req.PhotoURL,
	}
	if err := s.medications.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Medication, error) {
	m, err := s.medications.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, userID string, p pagination.Params) (pagination.Page[MedicationResponse], error) {
	items, total, err := s.medications.ListByUser(ctx, userID, p.Limit(), p.Offset())
	if err != nil {
		return pagination.Page[MedicationResponse]{}, err
	}
	return pagination.NewPage(toResponseList(items), p, total), nil
}

// Search matches the query against full and short names, case-insensitively.
func (s *Service) Search(ctx context.Context, userID, query string, p pagination.Params) (pagination.Page[MedicationResponse], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx, userID, p)
	}
	items, total, err := s.medications.SearchByName(ctx, query, userID, p.Limit(), p.Offset())
	if err != nil {
		return pagination.Page[MedicationResponse]{}, err
	}
	return pagination.NewPage(toResponseList(items), p, total), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateMedicationRequest) (*domain.Medication, error) {
	m, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	m.FullName = strings.TrimSpace(req.FullName)
	m.ShortName = strings.TrimSpace(req.ShortName)
	m.Dosage = req.Dosage
	m.Form = req.Form
	m.PhotoURL = req.PhotoURL

	if err := s.medications.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	err := s.medications.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMedicationNotFound
	}
	return err
}
