// Package refreshtokens stores the long-lived tokens that let a client obtain
// a new access token without presenting the password again. Tokens are single
// use: the user service deletes a token when it is redeemed.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, valid until now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
	// DeleteByUser revokes every token issued to userID.
	DeleteByUser(ctx context.Context, userID string) error
}
