package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/config"
	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_OpensLocalDatabase(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseFile = filepath.Join(t.TempDir(), "nested", "wallet.db")

	a, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.authService.Close(context.Background()) })

	assert.NotNil(t, a.walletService)
	assert.FileExists(t, c.DatabaseFile)
}

func TestStartOnlineStatusWatcher(t *testing.T) {
	auth := &fakeAuth{}
	a := &App{authService: auth, logger: nopLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return a.mode() == ModeOnline }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	auth.pingErr = errors.New("down")
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return a.mode() == ModeOffline }, time.Second, 5*time.Millisecond)
}

func TestGetStatus(t *testing.T) {
	a := &App{logger: nopLogger()}
	assert.Equal(t, "", a.getStatus())

	a.session = &services.Session{Username: "a@b.c"}
	a.setMode(context.Background(), ModeOnline)
	assert.Equal(t, "(a@b.c online)", a.getStatus())
}
