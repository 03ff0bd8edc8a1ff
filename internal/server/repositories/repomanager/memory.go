package repomanager

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/server/models"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/users"
	"github.com/google/uuid"
)

// memState is the whole in-memory database. Transactions work on a clone and
// swap it in on commit.
type memState struct {
	users    map[string]models.User
	accounts map[string]int64
	tokens   map[string]models.RefreshToken
}

func newMemState() *memState {
	return &memState{
		users:    map[string]models.User{},
		accounts: map[string]int64{},
		tokens:   map[string]models.RefreshToken{},
	}
}

func (s *memState) clone() *memState {
	return &memState{
		users:    maps.Clone(s.users),
		accounts: maps.Clone(s.accounts),
		tokens:   maps.Clone(s.tokens),
	}
}

// MemoryRepositoryManager keeps everything in process memory. Every call and
// every transaction holds one lock, so transactions are fully serialised.
// It backs tests and the "memory" storage option.
type MemoryRepositoryManager struct {
	sem   chan struct{}
	state *memState
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{sem: make(chan struct{}, 1), state: newMemState()}
}

func (m *MemoryRepositoryManager) acquire(ctx context.Context) error {
	select {
	case m.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MemoryRepositoryManager) release() { <-m.sem }

// run executes fn against the live state under the lock.
func (m *MemoryRepositoryManager) run(ctx context.Context, fn func(st *memState) error) error {
	if err := m.acquire(ctx); err != nil {
		return err
	}
	defer m.release()
	return fn(m.state)
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return memUsers{exec: m.run}
}

func (m *MemoryRepositoryManager) Accounts() accounts.Repository {
	return memAccounts{exec: m.run}
}

func (m *MemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return memTokens{exec: m.run}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close(context.Context) error { return nil }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error {
	if err := m.acquire(ctx); err != nil {
		return fmt.Errorf("%w: begin: %w", common.ErrTxAborted, err)
	}
	defer m.release()

	work := m.state.clone()
	if err := fn(ctx, memTx{st: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: commit: %w", common.ErrTxAborted, err)
	}
	m.state = work
	return nil
}

// memTx binds repositories to a transaction's private state. The manager
// lock is already held by WithTx.
type memTx struct {
	st *memState
}

func (t memTx) exec(_ context.Context, fn func(st *memState) error) error {
	return fn(t.st)
}

func (t memTx) Users() users.Repository                 { return memUsers{exec: t.exec} }
func (t memTx) Accounts() accounts.Repository           { return memAccounts{exec: t.exec} }
func (t memTx) RefreshTokens() refreshtokens.Repository { return memTokens{exec: t.exec} }

type execFunc func(ctx context.Context, fn func(st *memState) error) error

type memUsers struct {
	exec execFunc
}

func (r memUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.exec(ctx, func(st *memState) error {
		for _, u := range st.users {
			if u.UserName == user.UserName {
				return common.ErrorAlreadyExists
			}
		}
		user.ID = uuid.NewString()
		user.CreatedAt = time.Now().UTC()
		st.users[user.ID] = *user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r memUsers) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	var found *models.User
	err := r.exec(ctx, func(st *memState) error {
		for _, u := range st.users {
			if u.UserName == login {
				found = &u
				return nil
			}
		}
		return common.ErrorNotFound
	})
	return found, err
}

func (r memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	var found *models.User
	err := r.exec(ctx, func(st *memState) error {
		u, ok := st.users[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &u
		return nil
	})
	return found, err
}

func (r memUsers) UpdateProfile(ctx context.Context, id string, p models.UserProfile) error {
	return r.exec(ctx, func(st *memState) error {
		u, ok := st.users[id]
		if !ok {
			return common.ErrorNotFound
		}
		if p.PasswordHash != nil {
			u.PasswordHash = slices.Clone(p.PasswordHash)
		}
		if p.FirstName != nil {
			u.FirstName = *p.FirstName
		}
		if p.LastName != nil {
			u.LastName = *p.LastName
		}
		st.users[id] = u
		return nil
	})
}

func (r memUsers) Find(ctx context.Context, filter string, limit int) ([]*models.User, error) {
	needle := strings.ToLower(filter)
	var result []*models.User
	err := r.exec(ctx, func(st *memState) error {
		for _, u := range st.users {
			if strings.Contains(strings.ToLower(u.FirstName), needle) ||
				strings.Contains(strings.ToLower(u.LastName), needle) {
				result = append(result, &models.User{
					ID: u.ID, UserName: u.UserName, FirstName: u.FirstName, LastName: u.LastName,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b *models.User) int { return strings.Compare(a.UserName, b.UserName) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type memAccounts struct {
	exec execFunc
}

func (r memAccounts) Create(ctx context.Context, userID string, initial int64) error {
	if initial < 0 {
		return common.ErrInvalidAmount
	}
	return r.exec(ctx, func(st *memState) error {
		if _, ok := st.users[userID]; !ok {
			return fmt.Errorf("db error: user %q does not exist", userID)
		}
		if _, ok := st.accounts[userID]; ok {
			return common.ErrorAlreadyExists
		}
		st.accounts[userID] = initial
		return nil
	})
}

func (r memAccounts) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.exec(ctx, func(st *memState) error {
		b, ok := st.accounts[userID]
		if !ok {
			return common.ErrorNotFound
		}
		balance = b
		return nil
	})
	return balance, err
}

// GetBalanceForUpdate needs no extra locking: transactions are serialised.
func (r memAccounts) GetBalanceForUpdate(ctx context.Context, userID string) (int64, error) {
	return r.GetBalance(ctx, userID)
}

func (r memAccounts) Credit(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return common.ErrInvalidAmount
	}
	return r.exec(ctx, func(st *memState) error {
		b, ok := st.accounts[userID]
		if !ok {
			return common.ErrorNotFound
		}
		st.accounts[userID] = b + amount
		return nil
	})
}

func (r memAccounts) Debit(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return common.ErrInvalidAmount
	}
	return r.exec(ctx, func(st *memState) error {
		b, ok := st.accounts[userID]
		if !ok {
			return common.ErrorNotFound
		}
		if b < amount {
			return common.ErrInsufficientFunds
		}
		st.accounts[userID] = b - amount
		return nil
	})
}

type memTokens struct {
	exec execFunc
}

func (r memTokens) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	return r.exec(ctx, func(st *memState) error {
		now := time.Now()
		st.tokens[token] = models.RefreshToken{UserID: userID, Token: token, Expires: now.Add(validity), CreatedAt: now}
		return nil
	})
}

func (r memTokens) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	var found *models.RefreshToken
	err := r.exec(ctx, func(st *memState) error {
		t, ok := st.tokens[token]
		if !ok {
			return common.ErrorNotFound
		}
		found = &t
		return nil
	})
	return found, err
}

func (r memTokens) Delete(ctx context.Context, token string) error {
	return r.exec(ctx, func(st *memState) error {
		delete(st.tokens, token)
		return nil
	})
}

func (r memTokens) DeleteByUser(ctx context.Context, userID string) error {
	return r.exec(ctx, func(st *memState) error {
		maps.DeleteFunc(st.tokens, func(_ string, t models.RefreshToken) bool { return t.UserID == userID })
		return nil
	})
}
