// Package services contains the server-side business logic. AuthService owns
// the authentication lifecycle: registration, credential verification, and
// token issuance/validation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/avoronov/authkeeper/internal/common"
	"github.com/avoronov/authkeeper/internal/server/auth"
	"github.com/avoronov/authkeeper/internal/server/config"
	"github.com/avoronov/authkeeper/internal/server/models"
	"github.com/avoronov/authkeeper/internal/server/repositories/repomanager"
)

// MinPasswordLength is the registration password policy.
const MinPasswordLength = 6

// emailShape is a cheap plausibility check, not RFC validation. The store's
// unique index is the real gatekeeper for identity.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService implements the authentication core. Each call is independent;
// the service holds no mutable state, so concurrent use is safe.
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                auth.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService from repositories and config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.Hasher, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new identity and returns it, without the password hash,
// together with a freshly issued token. A taken email yields
// common.ErrorEmailExists whether it is caught by the pre-check or by the
// store's unique index during a concurrent race.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, "", err
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", common.ErrorEmailExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", common.ErrorInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, "", common.ErrorEmailExists
		}
		return nil, "", common.ErrorInternal
	}

	return s.issueToken(user)
}

// Login verifies the credential pair and returns the identity with a fresh
// token. Unknown email and wrong password are indistinguishable to the
// caller, and the dummy-digest verification keeps the two paths close in
// time as well.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, auth.DummyDigest)
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", common.ErrorInvalidCredentials
	}

	return s.issueToken(user)
}

// VerifyToken validates a bearer token, re-reads the identity it asserts, and
// re-issues a fresh token bound to the current snapshot. Any token defect —
// malformed, bad signature, expired — and a vanished subject all collapse
// into common.ErrorUnauthorized, so callers get no verification oracle.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.User, string, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, "", common.ErrorUnauthorized
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*models.User, string, error) {
	token, err := auth.GenerateToken(user, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	return user.Sanitized(), token, nil
}

func validateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return common.ErrorValidation
	}
	if !emailShape.MatchString(email) {
		return common.ErrorValidation
	}
	if len(password) < MinPasswordLength {
		return common.ErrorValidation
	}
	return nil
}
