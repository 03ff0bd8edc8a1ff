package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBusinessError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid amount", ErrInvalidAmount, true},
		{"account not found", ErrAccountNotFound, true},
		{"recipient not found", ErrRecipientNotFound, true},
		{"insufficient funds", ErrInsufficientFunds, true},
		{"self transfer", ErrSelfTransfer, true},
		{"wrapped insufficient", fmt.Errorf("debit: %w", ErrInsufficientFunds), true},
		{"timeout", ErrTransferTimeout, false},
		{"aborted", ErrTxAborted, false},
		{"conflict", ErrTxConflict, false},
		{"random", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBusinessError(tt.err))
		})
	}
}
