package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetClaims represents the JWT claims for a password reset token.
// The code ties the token back to the verification record it proved.
type ResetClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Code   string `json:"code"`
	jwt.RegisteredClaims
}

// IssueResetToken creates a short-lived token proving the holder passed
// email verification for a password reset.
func (i *Issuer) IssueResetToken(userID, email, code string) (string, error) {
	now := time.Now()
	claims := &ResetClaims{
		UserID: userID,
		Email:  email,
		Code:   code,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.resetTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   resetSubject,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// VerifyResetToken validates and parses a reset token.
func (i *Issuer) VerifyResetToken(tokenString string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid || claims.Subject != resetSubject {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
