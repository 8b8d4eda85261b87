package health

import (
	"context"
	"errors"
	"time"

	"medcontrol/internal/domain"
	"medcontrol/internal/pkg/pagination"

	"gorm.io/gorm"
)

const defaultLatestLimit = 10

type Service struct {
	records HealthRecordRepositoryInterface
}

func NewService(records HealthRecordRepositoryInterface) *Service {
	return &Service{records: records}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateHealthRecordRequest) (*domain.HealthRecord, error) {
	recordType, err := parseRecordType(req.Type)
	if err != nil {
		return nil, err
	}

	h := &domain.HealthRecord{
		UserID:     userID,
		Type:       recordType,
		Notes:      req.Notes,
		MeasuredAt: time.Now(),
	}
	if req.MeasuredAt != nil {
		h.MeasuredAt = *req.MeasuredAt
	}
	if err := applyMeasurements(h, req); err != nil {
		return nil, err
	}

	if err := s.records.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.HealthRecord, error) {
	h, err := s.records.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHealthRecordNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) List(ctx context.Context, userID string, p pagination.Params) (pagination.Page[HealthRecordResponse], error) {
	items, total, err := s.records.ListByUser(ctx, userID, p.Limit(), p.Offset())
	if err != nil {
		return pagination.Page[HealthRecordResponse]{}, err
	}
	return pagination.NewPage(toResponseList(items), p, total), nil
}

func (s *Service) ListByType(ctx context.Context, userID, rawType string, p pagination.Params) (pagination.Page[HealthRecordResponse], error) {
	recordType, err := parseRecordType(rawType)
	if err != nil {
		return pagination.Page[HealthRecordResponse]{}, err
	}
	items, total, err := s.records.ListByType(ctx, userID, recordType, p.Limit(), p.Offset())
	if err != nil {
		return pagination.Page[HealthRecordResponse]{}, err
	}
	return pagination.NewPage(toResponseList(items), p, total), nil
}

// ListLatest returns the most recent measurements, newest first.
func (s *Service) ListLatest(ctx context.Context, userID string, limit int) ([]HealthRecordResponse, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	items, err := s.records.ListLatest(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return toResponseList(items), nil
}

// ListByPeriod returns measurements taken between start and end inclusive.
func (s *Service) ListByPeriod(ctx context.Context, userID string, start, end time.Time, p pagination.Params) (pagination.Page[HealthRecordResponse], error) {
	if end.Before(start) {
		return pagination.Page[HealthRecordResponse]{}, ErrInvalidPeriod
	}
	items, total, err := s.records.ListByPeriod(ctx, userID, start, end, p.Limit(), p.Offset())
	if err != nil {
		return pagination.Page[HealthRecordResponse]{}, err
	}
	return pagination.NewPage(toResponseList(items), p, total), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateHealthRecordRequest) (*domain.HealthRecord, error) {
	h, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	recordType, err := parseRecordType(req.Type)
	if err != nil {
		return nil, err
	}

	h.Type = recordType
	h.Notes = req.Notes
	if req.MeasuredAt != nil {
		h.MeasuredAt = *req.MeasuredAt
	}
	if err := applyMeasurements(h, req); err != nil {
		return nil, err
	}

	if err := s.records.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	err := s.records.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrHealthRecordNotFound
	}
	return err
}

func parseRecordType(raw string) (domain.HealthRecordType, error) {
	switch domain.HealthRecordType(raw) {
	case domain.HealthPressure:
		return domain.HealthPressure, nil
	case domain.HealthGlucose:
		return domain.HealthGlucose, nil
	default:
		return "", ErrInvalidRecordType
	}
}

// applyMeasurements copies the fields of the selected variant and nulls the
// other one, so a record never carries both kinds of readings.
func applyMeasurements(h *domain.HealthRecord, req CreateHealthRecordRequest) error {
	switch h.Type {
	case domain.HealthPressure:
		if req.Systolic == nil || req.Diastolic == nil {
			return ErrMissingMeasurement
		}
		h.Systolic = req.Systolic
		h.Diastolic = req.Diastolic
		h.Pulse = req.Pulse
		h.Glucose = nil
		h.Fasting = nil
	case domain.HealthGlucose:
		if req.Glucose == nil {
			return ErrMissingMeasurement
		}
		h.Glucose = req.Glucose
		h.Fasting = req.Fasting
		h.Systolic = nil
		h.Diastolic = nil
		h.Pulse = nil
	}
	return nil
}
