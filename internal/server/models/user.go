package models

import "time"

// User is an identity record. UserName is stored lowercase and trimmed;
// PasswordHash holds a bcrypt hash, never the clear password.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// UserProfile carries optional profile changes. Nil fields are left as is.
type UserProfile struct {
	PasswordHash []byte
	FirstName    *string
	LastName     *string
}
