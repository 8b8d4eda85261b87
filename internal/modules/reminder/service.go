package reminder

import (
	"context"
	"errors"
	"sort"
	"time"

	"medcontrol/internal/domain"
	"medcontrol/internal/pkg/pagination"

	"gorm.io/gorm"
)

type Service struct {
	reminders   ReminderRepositoryInterface
	medications MedicationReader
}

func NewService(reminders ReminderRepositoryInterface, medications MedicationReader) *Service {
	return &Service{reminders: reminders, medications: medications}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateReminderRequest) (*domain.Reminder, error) {
	if _, err := s.medications.GetByIDAndUser(ctx, req.MedicationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownMedication
		}
		return nil, err
	}

	r := &domain.Reminder{
		UserID:       userID,
		MedicationID: req.MedicationID,
		Times:        normalizeTimes(req.Times),
		DaysOfWeek:   req.DaysOfWeek,
		DoseQty:      req.DoseQty,
		Instructions: req.Instructions,
		Active:       true,
	}
	if req.Active != nil {
		r.Active = *req.Active
	}

	if err := s.reminders.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Reminder, error) {
	r, err := s.reminders.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, userID string, p pagination.Params) (pagination.Page[ReminderResponse], error) {
	items, total, err := s.reminders.ListByUser(ctx, userID, p.Limit(), p.Offset())
	if err != nil {
		return pagination.Page[ReminderResponse]{}, err
	}
	return pagination.NewPage(toResponseList(items, time.Now()), p, total), nil
}

// ListActive returns all enabled reminders regardless of schedule.
func (s *Service) ListActive(ctx context.Context, userID string) ([]ReminderResponse, error) {
	items, err := s.reminders.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponseList(items, time.Now()), nil
}

// ListDueToday returns the enabled reminders whose weekday schedule fires
// today. The weekday lists live in a serialized column, so filtering
// happens here rather than in SQL.
func (s *Service) ListDueToday(ctx context.Context, userID string) ([]ReminderResponse, error) {
	items, err := s.reminders.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	due := make([]domain.Reminder, 0, len(items))
	for _, r := range items {
		if r.IsDueOn(today) {
			due = append(due, r)
		}
	}
	return toResponseList(due, today), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateReminderRequest) (*domain.Reminder, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.MedicationID != r.MedicationID {
		if _, err := s.medications.GetByIDAndUser(ctx, req.MedicationID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownMedication
			}
			return nil, err
		}
		r.MedicationID = req.MedicationID
	}

	r.Times = normalizeTimes(req.Times)
	r.DaysOfWeek = req.DaysOfWeek
	r.DoseQty = req.DoseQty
	r.Instructions = req.Instructions
	if req.Active != nil {
		r.Active = *req.Active
	}

	if err := s.reminders.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	err := s.reminders.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReminderNotFound
	}
	return err
}

// normalizeTimes sorts dose times and drops duplicates.
func normalizeTimes(times []string) []string {
	seen := make(map[string]struct{}, len(times))
	out := make([]string, 0, len(times))
	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
