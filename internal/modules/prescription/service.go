package prescription

import (
	"context"
	"errors"
	"time"

	"medcontrol/internal/domain"
	"medcontrol/internal/pkg/pagination"

	"gorm.io/gorm"
)

type Service struct {
	prescriptions PrescriptionRepositoryInterface
	medications   MedicationReader
}

func NewService(prescriptions PrescriptionRepositoryInterface, medications MedicationReader) *Service {
	return &Service{prescriptions: prescriptions, medications: medications}
}

func (s *Service) Create(ctx context.Context, userID string, req CreatePrescriptionRequest) (*domain.Prescription, error) {
	issuedAt, expiresAt, err := parseDates(req.IssuedAt, req.ExpiresAt)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, userID, req.Items)
	if err != nil {
		return nil, err
	}

	p := &domain.Prescription{
		UserID:     userID,
		DoctorName: req.DoctorName,
		DoctorReg:  req.DoctorReg,
		IssuedAt:   issuedAt,
		ExpiresAt:  expiresAt,
		Notes:      req.Notes,
		ImageURL:   req.ImageURL,
		Items:      items,
	}
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Prescription, error) {
	p, err := s.prescriptions.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, userID string, p pagination.Params) (pagination.Page[PrescriptionResponse], error) {
	items, total, err := s.prescriptions.ListByUser(ctx, userID, p.Limit(), p.Offset())
	if err != nil {
		return pagination.Page[PrescriptionResponse]{}, err
	}
	return pagination.NewPage(toResponseList(items, time.Now()), p, total), nil
}

// ListActive returns prescriptions still valid today, newest first.
func (s *Service) ListActive(ctx context.Context, userID string) ([]PrescriptionResponse, error) {
	now := time.Now()
	items, err := s.prescriptions.ListActive(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return toResponseList(items, now), nil
}

// Update replaces the prescription and its items as a whole.
func (s *Service) Update(ctx context.Context, userID, id string, req UpdatePrescriptionRequest) (*domain.Prescription, error) {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	issuedAt, expiresAt, err := parseDates(req.IssuedAt, req.ExpiresAt)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, userID, req.Items)
	if err != nil {
		return nil, err
	}

	p.DoctorName = req.DoctorName
	p.DoctorReg = req.DoctorReg
	p.IssuedAt = issuedAt
	p.ExpiresAt = expiresAt
	p.Notes = req.Notes
	p.ImageURL = req.ImageURL

	if err := s.prescriptions.Update(ctx, p, items); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	err := s.prescriptions.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPrescriptionNotFound
	}
	return err
}

func (s *Service) buildItems(ctx context.Context, userID string, reqs []ItemRequest) ([]domain.PrescriptionItem, error) {
	items := make([]domain.PrescriptionItem, 0, len(reqs))
	for _, it := range reqs {
		if it.MedicationID != nil {
			if _, err := s.medications.GetByIDAndUser(ctx, *it.MedicationID, userID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrUnknownMedication
				}
				return nil, err
			}
		}
		items = append(items, domain.PrescriptionItem{
			MedicationID: it.MedicationID,
			Description:  it.Description,
			Directions:   it.Directions,
			Quantity:     it.Quantity,
		})
	}
	return items, nil
}

func parseDates(issued, expires string) (time.Time, *time.Time, error) {
	issuedAt, err := time.ParseInLocation("2006-01-02", issued, time.Local)
	if err != nil {
		return time.Time{}, nil, ErrInvalidDate
	}
	if expires == "" {
		return issuedAt, nil, nil
	}
	expiresAt, err := time.ParseInLocation("2006-01-02", expires, time.Local)
	if err != nil {
		return time.Time{}, nil, ErrInvalidDate
	}
	return issuedAt, &expiresAt, nil
}
