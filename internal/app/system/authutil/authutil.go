// Package authutil provides password hashing for account credentials.
package authutil

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost used for all stored credential hashes.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. The salt is
// embedded in the returned hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
