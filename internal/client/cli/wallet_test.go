package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophwallet/internal/client/client"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fmtLine(a ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(a...), "\n")
}

func nopLogger() logging.Logger { return logging.Nop{} }

type fakeWallet struct {
	balance    string
	balanceErr error

	to, amount  string
	transferErr error

	filter string
	users  []*models.User
}

func (f *fakeWallet) Balance(context.Context) (string, error) { return f.balance, f.balanceErr }
func (f *fakeWallet) Transfer(_ context.Context, to, amount string) error {
	f.to, f.amount = to, amount
	return f.transferErr
}
func (f *fakeWallet) FindUsers(_ context.Context, filter string) ([]*models.User, error) {
	f.filter = filter
	return f.users, nil
}

func loggedIn(w *fakeWallet, auth *fakeAuth) *App {
	return &App{
		authService:   auth,
		walletService: w,
		session:       &services.Session{UserID: "u1", Username: "a@b.c"},
		logger:        nopLogger(),
	}
}

func TestBalance(t *testing.T) {
	lines := silence(t)
	a := loggedIn(&fakeWallet{balance: "₹60.00"}, &fakeAuth{})

	require.NoError(t, a.Balance(context.Background()))
	assert.Equal(t, []string{"Balance: ₹60.00"}, *lines)
}

func TestBalance_UnauthorizedDropsSession(t *testing.T) {
	silence(t)
	auth := &fakeAuth{}
	a := loggedIn(&fakeWallet{balanceErr: client.ErrUnauthorized}, auth)

	require.Error(t, a.Balance(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.True(t, auth.logoutCalled)
}

func TestBalance_UnavailableKeepsSession(t *testing.T) {
	silence(t)
	a := loggedIn(&fakeWallet{balanceErr: client.ErrUnavailable}, &fakeAuth{})

	require.ErrorIs(t, a.Balance(context.Background()), client.ErrUnavailable)
	assert.True(t, a.isLoggedIn())
}

func TestTransfer_FromArgs(t *testing.T) {
	lines := silence(t)
	w := &fakeWallet{}
	a := loggedIn(w, &fakeAuth{})

	require.NoError(t, a.Transfer(context.Background(), []string{"u2", "40.50"}))
	assert.Equal(t, "u2", w.to)
	assert.Equal(t, "40.50", w.amount)
	assert.Contains(t, *lines, "Transfer successful")
}

func TestTransfer_Prompts(t *testing.T) {
	silence(t)
	w := &fakeWallet{}
	a := loggedIn(w, &fakeAuth{})
	stubInputs(t, []string{"u3", "12"}, nil)

	require.NoError(t, a.Transfer(context.Background(), nil))
	assert.Equal(t, "u3", w.to)
	assert.Equal(t, "12", w.amount)
}

func TestTransfer_Rejected(t *testing.T) {
	silence(t)
	w := &fakeWallet{transferErr: fmt.Errorf("%w: insufficient balance", client.ErrRejected)}
	a := loggedIn(w, &fakeAuth{})

	err := a.Transfer(context.Background(), []string{"u2", "70"})
	require.ErrorIs(t, err, client.ErrRejected)
	assert.True(t, a.isLoggedIn())
}

func TestFind(t *testing.T) {
	lines := silence(t)
	w := &fakeWallet{users: []*models.User{{Id: "u2", Username: "bob@example.com", FirstName: "Bob", LastName: "Iyer"}}}
	a := loggedIn(w, &fakeAuth{})

	require.NoError(t, a.Find(context.Background(), []string{"bob", "iyer"}))
	assert.Equal(t, "bob iyer", w.filter)
	assert.Equal(t, []string{"u2  Bob Iyer <bob@example.com>"}, *lines)
}

func TestFind_Empty(t *testing.T) {
	lines := silence(t)
	a := loggedIn(&fakeWallet{}, &fakeAuth{})
	stubInputs(t, []string{""}, nil)

	require.NoError(t, a.Find(context.Background(), nil))
	assert.Equal(t, []string{"No users found"}, *lines)
}
