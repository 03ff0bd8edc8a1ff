// Package client talks to the wallet server on behalf of the CLI.
//
// Client is the transport-agnostic contract; GRPCClient implements it over
// gRPC with the JSON codec. GRPCClient attaches the access token to every
// call and, when the server answers "token expired", exchanges the refresh
// token once and retries. Rotated tokens are reported through
// OnTokensRefreshed so the caller can persist them.
//
// Status codes map onto sentinel errors: ErrUnauthorized, ErrUnavailable,
// ErrAlreadyExists and ErrRejected, which wraps the server's message for
// business rejections like insufficient balance.
//
// InitDatabase and RunMigrations open the local SQLite file that keeps the
// session between runs.
package client
