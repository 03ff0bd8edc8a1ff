package client

import "errors"

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotLoggedIn   = errors.New("not logged in")

	// ErrRejected wraps a request the server refused on business grounds,
	// such as an invalid amount or insufficient balance. The wrapping error
	// carries the server's message.
	ErrRejected = errors.New("request rejected")
)
