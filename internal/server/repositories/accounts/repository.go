// Package accounts is the Account Store: the persistent mapping from a user to
// that user's balance in minor currency units.
//
// Credit and Debit are the only operations that change a balance after the
// account is created. Debit never lets a balance go below zero: it is a single
// conditional decrement, so a concurrent writer cannot slip in between the
// check and the write.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophwallet/internal/common"
)

type Repository interface {
	// Create opens the account of userID with the given balance.
	// A second account for the same user yields common.ErrorAlreadyExists.
	Create(ctx context.Context, userID string, initial int64) error
	GetBalance(ctx context.Context, userID string) (int64, error)
	// GetBalanceForUpdate reads the balance and, where the backend supports
	// it, holds a row lock until the surrounding transaction ends.
	GetBalanceForUpdate(ctx context.Context, userID string) (int64, error)
	Credit(ctx context.Context, userID string, amount int64) error
	// Debit returns common.ErrInsufficientFunds and changes nothing when the
	// balance is lower than amount.
	Debit(ctx context.Context, userID string, amount int64) error
}

func checkAmount(amount int64) error {
	if amount <= 0 {
		return common.ErrInvalidAmount
	}
	return nil
}
