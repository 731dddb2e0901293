package helpers

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = bcrypt.DefaultCost

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), passwordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CompareDummyPassword burns the same bcrypt work as a real comparison.
// Login calls it for unknown emails so response time does not reveal them.
func CompareDummyPassword(plain string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), passwordCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}
