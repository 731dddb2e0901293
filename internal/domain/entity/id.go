package entity

import "github.com/google/uuid"

// CanonicalID normalizes a UUID to its lowercase hyphenated form.
// ok is false when id is not a well-formed UUID.
func CanonicalID(id string) (canonical string, ok bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// NewID returns a fresh random identifier.
func NewID() string { return uuid.NewString() }
