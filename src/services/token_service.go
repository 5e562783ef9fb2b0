package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role issued today.
const RoleAdmin = "admin"

const tokenIssuer = "tula-directory"

// AdminClaims represents the session token payload for an administrator
type AdminClaims struct {
	AdminID int64  `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens. Validity is exactly
// signature validity plus the expiry window; there is no revocation.
type TokenService interface {
	Issue(adminID int64, email string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*AdminClaims, error)
}

// JWTTokenService is the HMAC-SHA256 implementation of TokenService
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTTokenService creates a token service from a shared secret and
// an expiry in seconds
func NewJWTTokenService(secret string, expirySeconds int) (*JWTTokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}
	if expirySeconds <= 0 {
		expirySeconds = 3600
	}
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}, nil
}

// Issue creates a signed session token for an administrator
func (s *JWTTokenService) Issue(adminID int64, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		Role:    RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the decoded claims
func (s *JWTTokenService) Verify(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

// Ensure JWTTokenService implements the interface
var _ TokenService = (*JWTTokenService)(nil)
