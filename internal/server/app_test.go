package server

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/server/config"
	"github.com/dmitrijs2005/gophwallet/internal/server/notify"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.Storage = config.StorageMemory
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.EndpointAddrGRPC = "127.0.0.1:0"
	return c
}

func TestNewApp_MemoryStorage(t *testing.T) {
	var out bytes.Buffer
	app, err := newApp(context.Background(), memoryConfig(), &out)
	require.NoError(t, err)

	assert.IsType(t, &repomanager.MemoryRepositoryManager{}, app.repos)
	assert.Equal(t, notify.Nop{}, app.notifier)
	assert.NotNil(t, app.userService)
	assert.NotNil(t, app.walletService)
}

func TestNewApp_UnreachableNATSFallsBackToNop(t *testing.T) {
	c := memoryConfig()
	c.NatsURL = "nats://127.0.0.1:1"

	var out bytes.Buffer
	app, err := newApp(context.Background(), c, &out)
	require.NoError(t, err)
	assert.Equal(t, notify.Nop{}, app.notifier)
	assert.Contains(t, out.String(), "notifications disabled")
}

func TestNewApp_PostgresUnreachable(t *testing.T) {
	c := memoryConfig()
	c.Storage = config.StoragePostgres
	c.DatabaseDSN = "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := newApp(ctx, c, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	var out bytes.Buffer
	app, err := newApp(context.Background(), memoryConfig(), &out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
