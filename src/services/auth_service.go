package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps login timing comparable when the email does not
// exist: a bcrypt comparison runs either way.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService verifies administrator credentials and issues session
// tokens
type AuthService struct {
	admins repositories.AdminRepository
	tokens TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(admins repositories.AdminRepository, tokens TokenService) *AuthService {
	return &AuthService{admins: admins, tokens: tokens}
}

// LoginResult is returned on a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     models.AdminIdentity
}

// NormalizeEmail lowercases and trims an email for lookup and storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies an email/password pair and issues a session token.
// Unknown emails and wrong passwords both return ErrInvalidCredentials.
// The last-login timestamp is recorded in the background; a recording
// failure never fails the login.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = NormalizeEmail(email)

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	go s.recordLogin(admin.ID, admin.Email)

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     models.AdminIdentity{ID: admin.ID, Email: admin.Email},
	}, nil
}

// recordLogin updates last_login_at best-effort, detached from the
// request that triggered it
func (s *AuthService) recordLogin(adminID int64, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.admins.UpdateLastLogin(ctx, adminID); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to record login timestamp")
	}
}

// EnsureDefaultAdmin creates the configured super-admin account if no
// account with that email exists. At most one account is auto-created
// per configured email; losing a creation race is not an error.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check for existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.SuperAdmin{Email: email, PasswordHash: string(hash)}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	log.Info().Str("email", email).Msg("default super admin created")
	return nil
}
