package entity

import (
	"time"
)

// User is the authenticated principal.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns a copy of u without the credential.
func (u User) Public() User {
	u.Password = ""
	return u
}
