// Package server initializes and runs the wallet server.
// It opens the configured storage backend, applies migrations, connects the
// optional NATS notifier and runs the HTTP and gRPC servers until a signal
// arrives or one of them fails.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/dmitrijs2005/gophwallet/internal/server/config"
	"github.com/dmitrijs2005/gophwallet/internal/server/httpapi"
	"github.com/dmitrijs2005/gophwallet/internal/server/notify"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophwallet/internal/server/services"

	gs "github.com/dmitrijs2005/gophwallet/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	repos         repomanager.RepositoryManager
	notifier      notify.Notifier
	userService   *services.UserService
	walletService *services.WalletService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {

	logger := logging.NewJSON(logOut, c.LogLevel)

	repos, err := openStorage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	notifier, err := notify.Connect(c.NatsURL, c.NatsSubject, logger)
	if err != nil {
		logger.Warn(ctx, "NATS unavailable, transfer notifications disabled", "error", err)
		notifier = notify.Nop{}
	}

	return &App{
		config:        c,
		logger:        logger,
		repos:         repos,
		notifier:      notifier,
		userService:   services.NewUserService(repos, c, logger),
		walletService: services.NewWalletService(repos, c, notifier, logger),
	}, nil
}

func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.Storage {
	case config.StorageMemory:
		return repomanager.NewMemoryRepositoryManager(), nil
	case config.StorageMongo:
		client, err := repomanager.ConnectMongo(ctx, c.MongoURI)
		if err != nil {
			return nil, err
		}
		return repomanager.NewMongoRepositoryManager(client, c.MongoDatabase), nil
	default:
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return repomanager.NewPostgresRepositoryManager(db), nil
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.walletService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.walletService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or a server
// fails, then releases the storage and notifier.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.notifier.Close()
	if err := app.repos.Close(context.WithoutCancel(ctx)); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
