// Package models holds the CLI view of server data.
package models

// User is a wallet user as returned by the directory search.
type User struct {
	Id        string
	Username  string
	FirstName string
	LastName  string
}

// DisplayName is "First Last", falling back to the username.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}

// ProfileUpdate lists the profile fields to change; nil fields are kept.
type ProfileUpdate struct {
	Password  *string
	FirstName *string
	LastName  *string
}

// Empty reports whether the update changes nothing.
func (p ProfileUpdate) Empty() bool {
	return p.Password == nil && p.FirstName == nil && p.LastName == nil
}
