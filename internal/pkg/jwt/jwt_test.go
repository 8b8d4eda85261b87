package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndVerify(t *testing.T) {
	svc := New("test-secret", 15*time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken("a@x.com", nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.True(t, svc.Verify(token, "a@x.com"))
	assert.False(t, svc.Verify(token, "b@x.com"))

	subject, err := svc.ExtractSubject(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := New("secret-one", 15*time.Minute, 7*24*time.Hour)
	verifier := New("secret-two", 15*time.Minute, 7*24*time.Hour)

	token, err := issuer.GenerateAccessToken("a@x.com", nil)
	assert.NoError(t, err)

	assert.False(t, verifier.Verify(token, "a@x.com"))
	_, err = verifier.ExtractSubject(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := New("test-secret", -time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken("a@x.com", nil)
	assert.NoError(t, err)

	assert.False(t, svc.Verify(token, "a@x.com"))
}

func TestExtractSubjectRejectsMalformed(t *testing.T) {
	svc := New("test-secret", 15*time.Minute, 7*24*time.Hour)

	_, err := svc.ExtractSubject("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLongLivedTokenCarriesSubject(t *testing.T) {
	svc := New("test-secret", 15*time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateLongLivedToken("a@x.com")
	assert.NoError(t, err)
	assert.True(t, svc.Verify(token, "a@x.com"))
}
