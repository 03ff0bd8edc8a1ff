package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/dmitrijs2005/gophwallet/internal/money"
	"github.com/dmitrijs2005/gophwallet/internal/server/config"
	"github.com/dmitrijs2005/gophwallet/internal/server/notify"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophwallet/internal/server/telemetry"
	"github.com/sethvargo/go-retry"
)

const defaultRetryBase = 10 * time.Millisecond

// WalletService reads balances and moves money between accounts.
//
// A transfer either debits the sender and credits the recipient by the same
// amount, or changes nothing. Every rejection is reported with one of the
// common transfer errors.
type WalletService struct {
	repomanager repomanager.RepositoryManager
	notifier    notify.Notifier
	log         logging.Logger
	timeout     time.Duration
	maxRetries  uint64
	retryBase   time.Duration
}

func NewWalletService(m repomanager.RepositoryManager, cfg *config.Config, n notify.Notifier, log logging.Logger) *WalletService {
	if n == nil {
		n = notify.Nop{}
	}
	return &WalletService{
		repomanager: m,
		notifier:    n,
		log:         log.With("module", "wallet"),
		timeout:     cfg.TransferTimeout,
		maxRetries:  cfg.TransferMaxRetries,
		retryBase:   defaultRetryBase,
	}
}

// Balance returns the balance of userID in minor units.
func (s *WalletService) Balance(ctx context.Context, userID string) (int64, error) {
	b, err := s.repomanager.Accounts().GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrAccountNotFound
		}
		return 0, err
	}
	return b, nil
}

// Transfer moves amount, given in display units, from the caller's account to
// the recipient's account.
func (s *WalletService) Transfer(ctx context.Context, callerID, recipientID string, amount float64) error {
	start := time.Now()

	minor, err := s.transfer(ctx, callerID, recipientID, amount)

	status := telemetry.TransferStatus(err)
	telemetry.TransfersTotal.WithLabelValues(status).Inc()
	telemetry.TransferProcessingDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if common.IsBusinessError(err) {
			s.log.Info(ctx, "transfer rejected", "from", callerID, "to", recipientID, "status", status)
		} else {
			s.log.Error(ctx, "transfer failed", "from", callerID, "to", recipientID, "error", err)
		}
		return err
	}

	telemetry.TransferAmount.Observe(float64(minor))
	s.log.Info(ctx, "transfer committed", "from", callerID, "to", recipientID, "amount", minor)

	s.notifier.TransferCompleted(context.WithoutCancel(ctx), notify.TransferEvent{
		From:   callerID,
		To:     recipientID,
		Amount: minor,
		At:     time.Now().UTC(),
	})
	return nil
}

func (s *WalletService) transfer(ctx context.Context, from, to string, amount float64) (int64, error) {
	minor, err := money.ToMinorUnits(amount)
	if err != nil || minor <= 0 {
		return 0, common.ErrInvalidAmount
	}
	if to == "" {
		return 0, common.ErrRecipientNotFound
	}
	if from == to {
		return 0, common.ErrSelfTransfer
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	attempt := 0
	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.retryBase))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			telemetry.TransferRetriesTotal.Inc()
		}

		err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx repomanager.Repositories) error {
			return moveFunds(ctx, tx.Accounts(), from, to, minor)
		})
		if errors.Is(err, common.ErrTxConflict) {
			return retry.RetryableError(err)
		}
		return err
	})

	switch {
	case err == nil:
		return minor, nil
	case common.IsBusinessError(err):
		return 0, err
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return 0, fmt.Errorf("%w: %w", common.ErrTransferTimeout, err)
	case errors.Is(err, common.ErrTxConflict):
		return 0, fmt.Errorf("%w: gave up after %d attempts: %w", common.ErrTxAborted, attempt, err)
	case errors.Is(err, context.Canceled):
		return 0, fmt.Errorf("%w: %w", common.ErrTxAborted, err)
	default:
		return 0, err
	}
}

// moveFunds runs inside a transaction. Both accounts are locked in ascending
// id order, so two opposite transfers cannot deadlock.
func moveFunds(ctx context.Context, repo accounts.Repository, from, to string, amount int64) error {
	first, second := from, to
	if second < first {
		first, second = second, first
	}

	found := make(map[string]int64, 2)
	for _, id := range []string{first, second} {
		b, err := repo.GetBalanceForUpdate(ctx, id)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		found[id] = b
	}

	balance, ok := found[from]
	if !ok {
		return common.ErrAccountNotFound
	}
	if balance < amount {
		return common.ErrInsufficientFunds
	}
	if _, ok := found[to]; !ok {
		return common.ErrRecipientNotFound
	}

	if err := repo.Debit(ctx, from, amount); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrAccountNotFound
		}
		return err
	}
	if err := repo.Credit(ctx, to, amount); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrRecipientNotFound
		}
		return err
	}
	return nil
}
