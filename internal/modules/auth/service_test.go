package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"medcontrol/internal/database"
	"medcontrol/internal/domain"
	jwtpkg "medcontrol/internal/pkg/jwt"
	"medcontrol/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	dialector := gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")

	users := repository.NewUserRepository(db)
	tokens := repository.NewRefreshTokenRepository(db)
	jwtSvc := jwtpkg.New("test-secret", 15*time.Minute, 168*time.Hour)

	return NewService(users, tokens, jwtSvc, "test-pepper", time.Hour), db
}

func registerTestUser(t *testing.T, svc *Service, email string) *Result {
	t.Helper()
	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return result
}

func TestRegisterIssuesTokens(t *testing.T) {
	svc, db := setupTestService(t)

	result := registerTestUser(t, svc, "alice@example.com")
	assert.NotEmpty(t, result.User.ID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Empty(t, result.User.PasswordHash, "password hash must not leak")

	var count int64
	require.NoError(t, db.Model(&domain.RefreshToken{}).Where("user_id = ?", result.User.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored domain.RefreshToken
	require.NoError(t, db.Where("user_id = ?", result.User.ID).First(&stored).Error)
	assert.NotEqual(t, result.RefreshToken, stored.TokenHash, "refresh token must be stored hashed")
}

func TestRegisterNormalizesEmailAndRejectsDuplicates(t *testing.T) {
	svc, _ := setupTestService(t)

	registerTestUser(t, svc, "bob@example.com")

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Other Bob",
		Email:    "  BOB@Example.COM ",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterRejectsDuplicateNationalID(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Name:       "First",
		Email:      "first@example.com",
		Password:   "password123",
		NationalID: "12345678901",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Name:       "Second",
		Email:      "second@example.com",
		Password:   "password123",
		NationalID: "12345678901",
	})
	assert.ErrorIs(t, err, ErrNationalIDAlreadyExists)
}

// racingUserRepo hides an existing national ID from the first existence
// check, so the insert itself runs into the unique constraint the way a
// concurrent registration would.
type racingUserRepo struct {
	*repository.UserRepository
	hideNationalID bool
}

func (r *racingUserRepo) ExistsByNationalID(ctx context.Context, nid string) (bool, error) {
	if r.hideNationalID {
		r.hideNationalID = false
		return false, nil
	}
	return r.UserRepository.ExistsByNationalID(ctx, nid)
}

func TestRegisterRaceOnNationalIDReportsNationalID(t *testing.T) {
	_, db := setupTestService(t)

	nid := "12345678901"
	require.NoError(t, db.Create(&domain.User{
		Name:       "First",
		Email:      "first@example.com",
		NationalID: &nid,
	}).Error)

	users := &racingUserRepo{
		UserRepository: repository.NewUserRepository(db),
		hideNationalID: true,
	}
	tokens := repository.NewRefreshTokenRepository(db)
	jwtSvc := jwtpkg.New("test-secret", 15*time.Minute, 168*time.Hour)
	svc := NewService(users, tokens, jwtSvc, "test-pepper", time.Hour)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:       "Second",
		Email:      "second@example.com",
		Password:   "password123",
		NationalID: nid,
	})
	assert.ErrorIs(t, err, ErrNationalIDAlreadyExists,
		"a raced national ID must not be reported as a duplicate email")
}

func TestRegisterRejectsBadBirthDate(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:      "Bad Date",
		Email:     "baddate@example.com",
		Password:  "password123",
		BirthDate: "01.02.1990",
	})
	assert.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestLoginVerifiesCredentials(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "carol@example.com")

	result, err := svc.Login(ctx, LoginRequest{Email: "carol@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	_, wrongPass := svc.Login(ctx, LoginRequest{Email: "carol@example.com", Password: "wrong"})
	_, noUser := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, noUser, "unknown email and wrong password must be indistinguishable")
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	registered := registerTestUser(t, svc, "dave@example.com")

	rotated, err := svc.Refresh(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, registered.User.ID, rotated.User.ID)

	// the consumed token is revoked and linked to its successor
	var old domain.RefreshToken
	require.NoError(t, db.Where("token_hash = ?", hashTokenWithPepper(registered.RefreshToken, "test-pepper")).First(&old).Error)
	assert.True(t, old.IsRevoked())
	require.NotNil(t, old.ReplacedByID)

	// second use of the same value must fail
	_, err = svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenNotUsable)

	// the successor still works
	_, err = svc.Refresh(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsUnknownAndExpiredTokens(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	registered := registerTestUser(t, svc, "erin@example.com")
	require.NoError(t, db.Model(&domain.RefreshToken{}).
		Where("user_id = ?", registered.User.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err = svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenNotUsable)
}

func TestLogoutRevokesAllSessions(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	registered := registerTestUser(t, svc, "frank@example.com")
	_, err := svc.Login(ctx, LoginRequest{Email: "frank@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, registered.User.ID))

	var live int64
	require.NoError(t, db.Model(&domain.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", registered.User.ID).
		Count(&live).Error)
	assert.Zero(t, live)

	_, err = svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenNotUsable)

	// logging out twice is fine
	assert.NoError(t, svc.Logout(ctx, registered.User.ID))
}

func TestPurgeExpiredDeletesOnlyExpired(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	registered := registerTestUser(t, svc, "grace@example.com")
	require.NoError(t, db.Create(&domain.RefreshToken{
		UserID:    registered.User.ID,
		TokenHash: "stale-hash",
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}).Error)

	deleted, err := svc.PurgeExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining int64
	require.NoError(t, db.Model(&domain.RefreshToken{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}
