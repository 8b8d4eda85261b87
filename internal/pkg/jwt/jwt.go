package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Service issues and verifies stateless HS256 tokens. The subject claim is
// the user's email. One symmetric key, loaded once at startup; no rotation.
type Service struct {
	secret    []byte
	accessTTL time.Duration
	longTTL   time.Duration
}

type Claims struct {
	jwtlib.RegisteredClaims
}

func New(secret string, accessTTL, longTTL time.Duration) *Service {
	return &Service{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		longTTL:   longTTL,
	}
}

// GenerateAccessToken signs a short-lived token for the given subject.
// Extra claims are merged in without overriding the registered ones.
func (s *Service) GenerateAccessToken(subjectEmail string, extraClaims map[string]any) (string, error) {
	return s.generate(subjectEmail, extraClaims, s.accessTTL)
}

// GenerateLongLivedToken signs a token with the long (refresh-grade) TTL.
func (s *Service) GenerateLongLivedToken(subjectEmail string) (string, error) {
	return s.generate(subjectEmail, nil, s.longTTL)
}

func (s *Service) generate(subject string, extraClaims map[string]any, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtlib.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = jwtlib.NewNumericDate(now)
	claims["exp"] = jwtlib.NewNumericDate(now.Add(ttl))

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks signature and expiry and returns the claims.
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Verify reports whether the token is well-signed, unexpired and issued for
// the expected subject.
func (s *Service) Verify(tokenStr, expectedSubject string) bool {
	claims, err := s.ValidateToken(tokenStr)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

// ExtractSubject returns the subject of a valid token.
func (s *Service) ExtractSubject(tokenStr string) (string, error) {
	claims, err := s.ValidateToken(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
