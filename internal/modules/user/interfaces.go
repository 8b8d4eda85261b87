package user

import (
	"context"

	"medcontrol/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmailExcept(ctx context.Context, email, exceptID string) (bool, error)
	ExistsByNationalIDExcept(ctx context.Context, nationalID, exceptID string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

// SessionRevoker ends all sessions when an account is removed.
type SessionRevoker interface {
	RevokeAllByUser(ctx context.Context, userID string) (int64, error)
}
