package models

// Account holds the wallet balance of exactly one user, in minor units.
type Account struct {
	ID      string
	UserID  string
	Balance int64
}
