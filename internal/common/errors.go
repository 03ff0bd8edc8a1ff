// Package common defines shared constants and sentinel errors used across
// client and server layers of gophwallet. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Transfer rejections. These are business-rule failures: they are
	// detected before commit and reported to the caller as client errors.
	ErrInvalidAmount     = errors.New("invalid transfer amount")
	ErrAccountNotFound   = errors.New("account not found")
	ErrRecipientNotFound = errors.New("recipient account not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrSelfTransfer      = errors.New("cannot transfer to own account")

	// Transfer infrastructure failures.
	ErrTransferTimeout = errors.New("transfer timed out")
	ErrTxAborted       = errors.New("transaction aborted")

	// ErrTxConflict marks a write-write conflict reported by the storage
	// engine. The transaction was rolled back and may be retried.
	ErrTxConflict = errors.New("transaction conflict")
)

var businessErrors = []error{
	ErrInvalidAmount,
	ErrAccountNotFound,
	ErrRecipientNotFound,
	ErrInsufficientFunds,
	ErrSelfTransfer,
}

// IsBusinessError reports whether err is a transfer rejection caused by the
// request itself rather than by the infrastructure.
func IsBusinessError(err error) bool {
	for _, e := range businessErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
