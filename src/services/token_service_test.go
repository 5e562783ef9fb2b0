package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-unit-tests-32ch!"

func TestNewJWTTokenService_RejectsShortSecret(t *testing.T) {
	_, err := NewJWTTokenService("short", 3600)
	require.Error(t, err)

	_, err = NewJWTTokenService("", 3600)
	require.Error(t, err)
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTTokenService(testSecret, 3600)
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue(7, "admin@tula.local")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
	assert.Equal(t, "admin@tula.local", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestJWTTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTTokenService(testSecret, 3600)
	require.NoError(t, err)

	// Well-formed token signed with the right secret, but past expiry
	claims := AdminClaims{
		AdminID: 7,
		Email:   "admin@tula.local",
		Role:    RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    tokenIssuer,
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTTokenService(testSecret, 3600)
	require.NoError(t, err)
	verifier, err := NewJWTTokenService("another-secret-that-is-32-chars!", 3600)
	require.NoError(t, err)

	token, _, err := issuer.Issue(1, "admin@tula.local")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTTokenService(testSecret, 3600)
	require.NoError(t, err)

	_, err = svc.Verify("not-a-token")
	assert.Error(t, err)
}
