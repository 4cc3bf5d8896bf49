// Package token issues and verifies the signed bearer tokens used for
// authentication. The claim carries only the user id.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

const resetSubject = "password_reset"

// Claims represents the claims in an auth token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a symmetric secret. Every auth
// token gets the same bounded TTL; there are no unexpiring tokens.
type Issuer struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

// NewIssuer constructs an Issuer from the configured secret and TTLs.
func NewIssuer(secret string, accessTTL, resetTTL time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), accessTTL: accessTTL, resetTTL: resetTTL}
}

// Issue creates a signed HS256 token bound to the given user id.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// Verify validates a token and returns the user id it is bound to.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !tok.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	// Reset tokens are not valid as bearer tokens.
	if claims.Subject == resetSubject {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
