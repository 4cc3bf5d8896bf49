package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/giftlink/giftlink-backend/internal/crypto"
	"github.com/giftlink/giftlink-backend/internal/errs"
	"github.com/giftlink/giftlink-backend/internal/models"
	"github.com/giftlink/giftlink-backend/internal/repository"
	"github.com/giftlink/giftlink-backend/internal/token"
)

// Reset codes stay valid for this long; requesting a new one earlier is rejected.
const resetCodeTTL = 3 * time.Minute

// ResetMailer delivers a reset code to the account's email address.
type ResetMailer interface {
	SendResetCode(to, code string) error
}

// PasswordResetService drives the forgot-password flow: emailed code,
// code verification, then a short-lived reset token that authorizes the
// actual password change.
type PasswordResetService struct {
	users  repository.UserRepository
	resets repository.ResetRepository
	issuer *token.Issuer
	mailer ResetMailer // nil when SMTP is not configured
	logger *zap.Logger
}

// NewPasswordResetService constructs the reset flow service. mailer may be
// nil; codes are then logged for development use.
func NewPasswordResetService(users repository.UserRepository, resets repository.ResetRepository,
	issuer *token.Issuer, mailer ResetMailer, logger *zap.Logger) *PasswordResetService {
	return &PasswordResetService{users: users, resets: resets, issuer: issuer, mailer: mailer, logger: logger}
}

// Start generates a single-use code for the account and sends it by email.
func (s *PasswordResetService) Start(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", errs.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: no account with this email", errs.ErrNotFound)
	}

	// Refuse a new code while a previous one is still live.
	latest, err := s.resets.Latest(ctx, email)
	if err != nil {
		return err
	}
	if latest != nil && !latest.Used && time.Now().Before(latest.ExpiresAt) {
		return fmt.Errorf("%w: a verification code was already sent", errs.ErrConflict)
	}

	code, err := generateVerificationCode(6)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	now := time.Now()
	reset := &models.PasswordReset{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(resetCodeTTL),
		CreatedAt: now,
	}
	if err := s.resets.Save(ctx, reset); err != nil {
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendResetCode(email, code); err != nil {
			return fmt.Errorf("send reset email: %w", err)
		}
	} else {
		s.logger.Info("reset code generated (smtp not configured)",
			zap.String("email", email), zap.String("code", code))
	}
	return nil
}

// VerifyCode checks the emailed code and exchanges it for a reset token.
func (s *PasswordResetService) VerifyCode(ctx context.Context, email, code string) (string, error) {
	if email == "" || code == "" {
		return "", fmt.Errorf("%w: email and code are required", errs.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("%w: no account with this email", errs.ErrNotFound)
	}

	latest, err := s.resets.Latest(ctx, email)
	if err != nil {
		return "", err
	}
	switch {
	case latest == nil:
		return "", fmt.Errorf("%w: no verification code found", errs.ErrUnauthorized)
	case latest.Used:
		return "", fmt.Errorf("%w: verification code already used", errs.ErrUnauthorized)
	case time.Now().After(latest.ExpiresAt):
		return "", fmt.Errorf("%w: verification code expired", errs.ErrUnauthorized)
	case latest.Code != code:
		return "", fmt.Errorf("%w: incorrect verification code", errs.ErrUnauthorized)
	}

	return s.issuer.IssueResetToken(user.ID.Hex(), email, code)
}

// Complete validates the reset token, re-hashes the new password and
// persists it, consuming the verification code.
func (s *PasswordResetService) Complete(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return fmt.Errorf("%w: reset token and new password are required", errs.ErrValidation)
	}

	claims, err := s.issuer.VerifyResetToken(resetToken)
	if err != nil {
		return fmt.Errorf("%w: invalid reset token", errs.ErrUnauthorized)
	}

	latest, err := s.resets.Latest(ctx, claims.Email)
	if err != nil {
		return err
	}
	if latest == nil || latest.Used || latest.Code != claims.Code || time.Now().After(latest.ExpiresAt) {
		return fmt.Errorf("%w: verification no longer valid", errs.ErrUnauthorized)
	}

	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", errs.ErrNotFound)
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	now := time.Now()
	user.UpdatedAt = &now

	if _, err := s.users.FindAndReplace(ctx, user.Email, user); err != nil {
		return err
	}
	if err := s.resets.MarkUsed(ctx, claims.Email, claims.Code); err != nil {
		return err
	}

	s.logger.Info("password reset completed", zap.String("user_id", user.ID.Hex()))
	return nil
}

// generateVerificationCode returns n cryptographically random decimal digits.
func generateVerificationCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
