package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"medcontrol/internal/domain"
	"medcontrol/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateAccessToken(subjectEmail string, extraClaims map[string]any) (string, error)
}

// Service contains all business logic for authentication: credential
// verification, token issuance, refresh rotation and logout.
type Service struct {
	users      UserRepositoryInterface
	tokens     RefreshTokenRepositoryInterface
	jwt        jwtService
	pepper     string
	refreshTTL time.Duration
}

// Result is what every successful auth operation hands back to the handler.
type Result struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(
	users UserRepositoryInterface,
	tokens RefreshTokenRepositoryInterface,
	jwt jwtService,
	pepper string,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		jwt:        jwt,
		pepper:     pepper,
		refreshTTL: refreshTTL,
	}
}

// Register creates the user and their first session. User row and refresh
// token are written in one transaction: if session creation fails, the user
// must not persist either.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Result, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	if req.NationalID != "" {
		exists, err := s.users.ExistsByNationalID(ctx, req.NationalID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrNationalIDAlreadyExists
		}
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.BirthDate, time.Local)
		if err != nil {
			return nil, ErrInvalidBirthDate
		}
		birthDate = &d
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        email,
		BirthDate:    birthDate,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
	}
	if req.NationalID != "" {
		nid := req.NationalID
		user.NationalID = &nid
	}

	refreshRaw, refreshHash, err := generateOpaqueRefreshToken(s.pepper)
	if err != nil {
		return nil, err
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&domain.RefreshToken{
			UserID:    user.ID,
			TokenHash: refreshHash,
			ExpiresAt: time.Now().Add(s.refreshTTL),
		}).Error
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, s.classifyDuplicate(ctx, email, req.NationalID)
		}
		return nil, err
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.Email, nil)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &Result{User: user, AccessToken: accessToken, RefreshToken: refreshRaw}, nil
}

// classifyDuplicate decides which unique constraint an insert raced on.
// The driver error text differs per database, so the existence checks are
// re-run instead of parsing the constraint name out of the error.
func (s *Service) classifyDuplicate(ctx context.Context, email, nationalID string) error {
	if taken, err := s.users.ExistsByEmail(ctx, email); err == nil && taken {
		return ErrEmailAlreadyExists
	}
	if nationalID != "" {
		if taken, err := s.users.ExistsByNationalID(ctx, nationalID); err == nil && taken {
			return ErrNationalIDAlreadyExists
		}
	}
	return ErrEmailAlreadyExists
}

// Login verifies credentials and opens a new session. Unknown email and
// wrong password produce the same error so the response cannot be used to
// tell which emails are registered.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.Email, nil)
	if err != nil {
		return nil, err
	}

	refreshRaw, refreshHash, err := generateOpaqueRefreshToken(s.pepper)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Create(ctx, &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: refreshHash,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &Result{User: user, AccessToken: accessToken, RefreshToken: refreshRaw}, nil
}

// Refresh rotates a refresh token: the presented token is consumed and a
// fresh one issued. The whole exchange runs in one transaction; revocation
// of the old token is a guarded update on revoked_at, so two concurrent
// uses of the same value cannot both commit a live successor.
func (s *Service) Refresh(ctx context.Context, refreshRaw string) (*Result, error) {
	now := time.Now()
	hash := hashTokenWithPepper(refreshRaw, s.pepper)
	var result *Result

	err := s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.RefreshToken
		if err := tx.Where("token_hash = ?", hash).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidRefreshToken
			}
			return err
		}

		if !current.IsValid(now) {
			return ErrRefreshTokenNotUsable
		}

		var user domain.User
		if err := tx.Where("id = ?", current.UserID).First(&user).Error; err != nil {
			return err
		}

		accessToken, err := s.jwt.GenerateAccessToken(user.Email, nil)
		if err != nil {
			return err
		}

		newRaw, newHash, err := generateOpaqueRefreshToken(s.pepper)
		if err != nil {
			return err
		}

		next := &domain.RefreshToken{
			UserID:    user.ID,
			TokenHash: newHash,
			ExpiresAt: now.Add(s.refreshTTL),
		}
		if err := tx.Create(next).Error; err != nil {
			return err
		}

		res := tx.Model(&domain.RefreshToken{}).
			Where("id = ? AND revoked_at IS NULL", current.ID).
			Updates(map[string]any{"revoked_at": now, "replaced_by_id": next.ID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost the race: someone else consumed this token first
			return ErrRefreshTokenNotUsable
		}

		user.PasswordHash = ""
		result = &Result{User: &user, AccessToken: accessToken, RefreshToken: newRaw}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Logout revokes every refresh token of the user. Succeeds even when the
// user has no live tokens.
func (s *Service) Logout(ctx context.Context, userID string) error {
	_, err := s.tokens.RevokeAllByUser(ctx, userID)
	return err
}

// PurgeExpired deletes refresh-token records whose expiry has passed.
func (s *Service) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.tokens.DeleteExpired(ctx, now)
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateOpaqueRefreshToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashTokenWithPepper(raw, pepper)
	return raw, hash, nil
}

func hashTokenWithPepper(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}
