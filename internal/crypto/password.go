// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// Work factor for bcrypt. Each hash carries its own random salt.
const hashCost = 10

// HashPassword returns a salted bcrypt digest of the plaintext password.
// A hashing failure must abort the calling operation; there is no
// plaintext fallback.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the digest.
// Comparison is constant-time with respect to the digest contents.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
