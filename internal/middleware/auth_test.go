package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medcontrol/internal/domain"
	jwtsvc "medcontrol/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubUserLookup struct {
	users map[string]*domain.User
}

func (s *stubUserLookup) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newProtectedRouter(jwt *jwtsvc.Service, users UserLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(jwt, users))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": CallerID(c),
			"email":   c.GetString(ContextUserEmail),
		})
	})
	return router
}

func TestAuthResolvesCaller(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour, 24*time.Hour)
	token, err := jwt.GenerateAccessToken("known@example.com", nil)
	assert.NoError(t, err)

	lookup := &stubUserLookup{users: map[string]*domain.User{
		"known@example.com": {ID: "user-42", Email: "known@example.com"},
	}}
	router := newProtectedRouter(jwt, lookup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
	assert.Contains(t, w.Body.String(), "known@example.com")
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour, 24*time.Hour)
	router := newProtectedRouter(jwt, &stubUserLookup{})

	cases := map[string]string{
		"missing":       "",
		"not bearer":    "Basic abc123",
		"empty token":   "Bearer   ",
		"garbage token": "Bearer not-a-jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		})
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	expired := jwtsvc.New("test-secret", -time.Minute, 24*time.Hour)
	token, err := expired.GenerateAccessToken("known@example.com", nil)
	assert.NoError(t, err)

	jwt := jwtsvc.New("test-secret", time.Hour, 24*time.Hour)
	router := newProtectedRouter(jwt, &stubUserLookup{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsUnknownSubject(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour, 24*time.Hour)
	token, err := jwt.GenerateAccessToken("deleted@example.com", nil)
	assert.NoError(t, err)

	router := newProtectedRouter(jwt, &stubUserLookup{users: map[string]*domain.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
