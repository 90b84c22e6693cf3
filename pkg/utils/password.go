package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword turns a plaintext password into a salted bcrypt hash. Two
// calls with the same input produce different hashes, and both verify.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a plaintext password against a stored hash. It
// returns false for any mismatch, including malformed hashes.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
