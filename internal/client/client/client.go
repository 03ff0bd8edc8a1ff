package client

import (
	"context"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
)

// Client is the wallet API as seen by the CLI. Amounts sent to Transfer are
// display units; Balance returns minor units.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, password, firstName, lastName string) (string, error)
	Login(ctx context.Context, username, password string) error
	SetTokens(accessToken, refreshToken string)
	Tokens() (accessToken, refreshToken string)
	OnTokensRefreshed(fn func(accessToken, refreshToken string))
	Balance(ctx context.Context) (int64, error)
	Transfer(ctx context.Context, to string, amount float64) error
	FindUsers(ctx context.Context, filter string) ([]*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
}
