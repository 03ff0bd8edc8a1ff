package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, initial int64) error {
	if initial < 0 {
		return common.ErrInvalidAmount
	}

	query := `INSERT INTO accounts (user_id, balance) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, userID, initial); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	return r.balance(ctx, `SELECT balance FROM accounts WHERE user_id = $1`, userID)
}

func (r *PostgresRepository) GetBalanceForUpdate(ctx context.Context, userID string) (int64, error) {
	return r.balance(ctx, `SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *PostgresRepository) balance(ctx context.Context, query, userID string) (int64, error) {
	// user_id is a UUID column; anything else cannot match a row.
	if _, err := uuid.Parse(userID); err != nil {
		return 0, common.ErrorNotFound
	}

	var balance int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, wrapErr(err)
	}
	return balance, nil
}

func (r *PostgresRepository) Credit(ctx context.Context, userID string, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if _, err := uuid.Parse(userID); err != nil {
		return common.ErrorNotFound
	}

	query := `UPDATE accounts SET balance = balance + $2 WHERE user_id = $1`

	n, err := r.exec(ctx, query, userID, amount)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Debit(ctx context.Context, userID string, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if _, err := uuid.Parse(userID); err != nil {
		return common.ErrorNotFound
	}

	query := `UPDATE accounts SET balance = balance - $2 WHERE user_id = $1 AND balance >= $2`

	n, err := r.exec(ctx, query, userID, amount)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Nothing matched: either there is no account or the funds are short.
	if _, err := r.GetBalance(ctx, userID); err != nil {
		return err
	}
	return common.ErrInsufficientFunds
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// wrapErr marks serialization failures and deadlocks so the caller can retry
// the whole transaction.
func wrapErr(err error) error {
	if dbx.IsTxConflict(err) {
		return fmt.Errorf("%w: %w", common.ErrTxConflict, err)
	}
	return fmt.Errorf("db error: %w", err)
}
