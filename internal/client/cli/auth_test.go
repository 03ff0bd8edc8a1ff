package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/gophwallet/internal/client/client"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInputs answers text prompts from texts in order and every password
// prompt with password.
func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmtLine(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeAuth struct {
	regIn  services.RegisterInput
	regErr error

	loginUser, loginPass string
	loginErr             error

	restored   *services.Session
	restoreErr error

	update    *models.ProfileUpdate
	updateErr error

	logoutCalled bool
	logoutErr    error
	pingErr      error
}

func (f *fakeAuth) Register(_ context.Context, in services.RegisterInput) (*services.Session, error) {
	f.regIn = in
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &services.Session{UserID: "u1", Username: in.Username}, nil
}
func (f *fakeAuth) Login(_ context.Context, user, pass string) (*services.Session, error) {
	f.loginUser, f.loginPass = user, pass
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &services.Session{UserID: "u1", Username: user}, nil
}
func (f *fakeAuth) RestoreSession(context.Context) (*services.Session, error) {
	return f.restored, f.restoreErr
}
func (f *fakeAuth) UpdateProfile(_ context.Context, u models.ProfileUpdate) error {
	f.update = &u
	return f.updateErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Close(ctx context.Context) error { return nil }
func (f *fakeAuth) Ping(ctx context.Context) error  { return f.pingErr }

func TestRegister_Success(t *testing.T) {
	silence(t)
	f := &fakeAuth{}
	a := &App{authService: f}
	stubInputs(t, []string{"alice@example.org", "Alice", "Rao"}, []byte("secret"))

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, services.RegisterInput{Username: "alice@example.org", Password: "secret", FirstName: "Alice", LastName: "Rao"}, f.regIn)
	assert.True(t, a.isLoggedIn())
}

func TestRegister_Error(t *testing.T) {
	silence(t)
	f := &fakeAuth{regErr: client.ErrAlreadyExists}
	a := &App{authService: f}
	stubInputs(t, []string{"alice@example.org", "Alice", "Rao"}, []byte("secret"))

	require.ErrorIs(t, a.Register(context.Background()), client.ErrAlreadyExists)
	assert.False(t, a.isLoggedIn())
}

func TestLogin(t *testing.T) {
	silence(t)
	f := &fakeAuth{}
	a := &App{authService: f}
	stubInputs(t, []string{"bob@example.org"}, []byte("pw"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "bob@example.org", f.loginUser)
	assert.Equal(t, "pw", f.loginPass)
	assert.Equal(t, "bob@example.org", a.session.Username)
}

func TestLogin_Failure(t *testing.T) {
	silence(t)
	a := &App{authService: &fakeAuth{loginErr: client.ErrUnauthorized}}
	stubInputs(t, []string{"bob@example.org"}, []byte("bad"))

	require.ErrorIs(t, a.Login(context.Background()), client.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
}

func TestLogout(t *testing.T) {
	silence(t)
	f := &fakeAuth{}
	a := &App{authService: f, session: &services.Session{UserID: "u1"}}
	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.logoutCalled)
	assert.False(t, a.isLoggedIn())
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{logoutErr: errors.New("clean-fail")}
	a := &App{authService: f, session: &services.Session{UserID: "u1"}}
	require.Error(t, a.Logout(context.Background()))
	assert.True(t, a.isLoggedIn())
}

func TestProfile_NamesOnly(t *testing.T) {
	lines := silence(t)
	f := &fakeAuth{}
	a := &App{authService: f, session: &services.Session{UserID: "u1"}}
	stubInputs(t, []string{" Asha ", ""}, nil)

	require.NoError(t, a.Profile(context.Background()))
	require.NotNil(t, f.update)
	assert.Equal(t, "Asha", *f.update.FirstName)
	assert.Nil(t, f.update.LastName)
	assert.Nil(t, f.update.Password)
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, *lines, "Updated successfully")
}

func TestProfile_PasswordEndsSession(t *testing.T) {
	silence(t)
	f := &fakeAuth{}
	a := &App{authService: f, session: &services.Session{UserID: "u1"}}
	stubInputs(t, []string{"", ""}, []byte("secret2"))

	require.NoError(t, a.Profile(context.Background()))
	assert.Equal(t, "secret2", *f.update.Password)
	assert.False(t, a.isLoggedIn())
}

func TestProfile_Nothing(t *testing.T) {
	lines := silence(t)
	f := &fakeAuth{}
	a := &App{authService: f, session: &services.Session{UserID: "u1"}}
	stubInputs(t, []string{"", ""}, nil)

	require.NoError(t, a.Profile(context.Background()))
	assert.Nil(t, f.update)
	assert.Contains(t, *lines, "Nothing to update")
}

func TestProfile_ExpiredSession(t *testing.T) {
	silence(t)
	f := &fakeAuth{updateErr: client.ErrUnauthorized}
	a := &App{authService: f, session: &services.Session{UserID: "u1"}}
	stubInputs(t, []string{"Asha", ""}, nil)

	err := a.Profile(context.Background())
	require.ErrorContains(t, err, "session expired")
	assert.False(t, a.isLoggedIn())
	assert.True(t, f.logoutCalled)
}

func TestRestoreSession(t *testing.T) {
	a := &App{authService: &fakeAuth{restored: &services.Session{UserID: "u1", Username: "a@b.c"}}, logger: nopLogger()}
	a.restoreSession(context.Background())
	assert.True(t, a.isLoggedIn())

	a = &App{authService: &fakeAuth{restoreErr: client.ErrNotLoggedIn}, logger: nopLogger()}
	a.restoreSession(context.Background())
	assert.False(t, a.isLoggedIn())
}
