package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"medcontrol/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users    UserRepositoryInterface
	sessions SessionRevoker
}

func NewService(users UserRepositoryInterface, sessions SessionRevoker) *Service {
	return &Service{users: users, sessions: sessions}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Update modifies the account profile. Users can only edit their own
// account.
func (s *Service) Update(ctx context.Context, callerID, targetID string, req UpdateUserRequest) (*domain.User, error) {
	if callerID != targetID {
		return nil, ErrForbidden
	}

	u, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := s.users.ExistsByEmailExcept(ctx, email, targetID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	if req.NationalID != "" {
		taken, err := s.users.ExistsByNationalIDExcept(ctx, req.NationalID, targetID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNationalIDAlreadyExists
		}
		nid := req.NationalID
		u.NationalID = &nid
	} else {
		u.NationalID = nil
	}

	if req.BirthDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.BirthDate, time.Local)
		if err != nil {
			return nil, ErrInvalidBirthDate
		}
		u.BirthDate = &d
	} else {
		u.BirthDate = nil
	}

	u.Name = req.Name
	u.Email = email
	u.Phone = req.Phone

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

// Delete removes the account and revokes its sessions. Users can only
// delete their own account.
func (s *Service) Delete(ctx context.Context, callerID, targetID string) error {
	if callerID != targetID {
		return ErrForbidden
	}

	if _, err := s.sessions.RevokeAllByUser(ctx, targetID); err != nil {
		return err
	}

	err := s.users.Delete(ctx, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
