// Package service contains the application services for accounts and gifts.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/giftlink/giftlink-backend/internal/crypto"
	"github.com/giftlink/giftlink-backend/internal/errs"
	"github.com/giftlink/giftlink-backend/internal/models"
	"github.com/giftlink/giftlink-backend/internal/repository"
	"github.com/giftlink/giftlink-backend/internal/token"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// ProfilePatch is an explicit partial update: nil fields retain their
// prior value. Applied field-by-field, never by document merge.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Password  *string
}

// AuthResult is returned by every operation that establishes an identity.
// It never carries the password or its hash.
type AuthResult struct {
	Token     string
	UserID    string
	Email     string
	FirstName string
}

// AuthService defines the account credential operations.
type AuthService interface {
	// Register creates a new account and issues a token for it.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	// Login verifies credentials and issues a token.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// UpdateProfile applies a partial update to the account identified by
	// the verified token claim and re-issues a token.
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*AuthResult, error)
	// LoginWithGoogle signs in a Google-verified email, creating the
	// account on first sight.
	LoginWithGoogle(ctx context.Context, email, firstName, lastName string) (*AuthResult, error)
}

// AuthServiceImpl orchestrates the credential store, the password hashing
// service and the token issuer.
type AuthServiceImpl struct {
	users  repository.UserRepository
	issuer *token.Issuer
	logger *zap.Logger
}

// NewAuthService constructs an AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, issuer *token.Issuer, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, issuer: issuer, logger: logger}
}

// Register creates the user record and returns a token bound to the new id.
// Not idempotent: a second call with the same email yields a conflict.
func (s *AuthServiceImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Email == "" || in.FirstName == "" || in.LastName == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email, firstName, lastName and password are required", errs.ErrValidation)
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", errs.ErrConflict)
	}

	hash, err := crypto.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	authtoken, err := s.issuer.Issue(id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", id))
	return &AuthResult{Token: authtoken, UserID: id, Email: user.Email, FirstName: user.FirstName}, nil
}

// Login verifies the password and issues a token. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !crypto.VerifyPassword(password, user.PasswordHash) {
		s.logger.Info("authentication failed", zap.String("email", email))
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
	}

	authtoken, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.Hex()))
	return &AuthResult{Token: authtoken, UserID: user.ID.Hex(), Email: user.Email, FirstName: user.FirstName}, nil
}

// UpdateProfile applies the patch to the stored user. Omitted fields keep
// their prior value; a present password is re-hashed. Last writer wins:
// there is no optimistic concurrency token, so two simultaneous updates to
// the same user may lose one writer's change silently.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*AuthResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user identity", errs.ErrValidation)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", errs.ErrNotFound)
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Password != nil {
		hash, err := crypto.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	now := time.Now()
	user.UpdatedAt = &now

	updated, err := s.users.FindAndReplace(ctx, user.Email, user)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: user not found", errs.ErrNotFound)
	}

	authtoken, err := s.issuer.Issue(updated.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user updated", zap.String("user_id", updated.ID.Hex()))
	return &AuthResult{Token: authtoken, UserID: updated.ID.Hex(), Email: updated.Email, FirstName: updated.FirstName}, nil
}

// LoginWithGoogle issues a token for a Google-verified email address,
// registering the account on first login. Accounts created this way carry
// no usable password hash until the user sets one.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email, firstName, lastName string) (*AuthResult, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", errs.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &models.User{
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			CreatedAt: time.Now(),
		}
		if _, err := s.users.Insert(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("user registered via google", zap.String("user_id", user.ID.Hex()))
	}

	authtoken, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{Token: authtoken, UserID: user.ID.Hex(), Email: user.Email, FirstName: user.FirstName}, nil
}
