package cli

import (
	"bufio"
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/client"
	"github.com/dmitrijs2005/gophwallet/internal/client/config"
	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	authService   services.AuthService
	walletService services.WalletService
	session       *services.Session
	reader        *bufio.Reader

	mu   sync.Mutex
	Mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewText(os.Stderr, "info")

	db, err := client.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewWalletClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:        c,
		logger:        logger,
		authService:   services.NewAuthService(apiClient, db, logger),
		walletService: services.NewWalletService(apiClient),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "Connection status changed", "mode", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.authService.Close(ctx); err != nil {
			a.logger.Warn(ctx, "close error", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// restoreSession picks up the session stored by a previous run.
func (a *App) restoreSession(ctx context.Context) {
	s, err := a.authService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrNotLoggedIn) {
			a.logger.Warn(ctx, "failed to restore session", "error", err)
		}
		return
	}
	a.session = s
}

// dropSessionOn ends the local session when the server no longer accepts it.
func (a *App) dropSessionOn(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) && a.session != nil {
		_ = a.authService.Logout(ctx)
		a.session = nil
		return errors.New("session expired, please login again")
	}
	return err
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
