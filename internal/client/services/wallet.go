package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/client/client"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/money"
)

// WalletService wraps balance, transfer and directory calls with the
// display-unit formatting the CLI shows.
type WalletService interface {
	Balance(ctx context.Context) (string, error)
	Transfer(ctx context.Context, to, amount string) error
	FindUsers(ctx context.Context, filter string) ([]*models.User, error)
}

type walletService struct {
	client client.Client
}

func NewWalletService(c client.Client) WalletService {
	return &walletService{client: c}
}

// Balance returns the balance formatted for display, e.g. "₹60.00".
func (w *walletService) Balance(ctx context.Context) (string, error) {
	minor, err := w.client.Balance(ctx)
	if err != nil {
		return "", err
	}
	return money.Format(minor), nil
}

// Transfer parses amount as display units and sends it to the user with id to.
// Amounts that do not survive rounding to whole minor units are rejected
// locally.
func (w *walletService) Transfer(ctx context.Context, to, amount string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("%w: recipient is required", client.ErrRejected)
	}

	minor, err := money.ParseDisplay(amount)
	if err != nil {
		return fmt.Errorf("%w: %s", client.ErrRejected, err.Error())
	}
	if minor <= 0 {
		return fmt.Errorf("%w: %s", client.ErrRejected, common.ErrInvalidAmount.Error())
	}

	return w.client.Transfer(ctx, to, money.ToFloat(minor))
}

func (w *walletService) FindUsers(ctx context.Context, filter string) ([]*models.User, error) {
	return w.client.FindUsers(ctx, strings.TrimSpace(filter))
}
