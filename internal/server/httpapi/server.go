// Package httpapi exposes the wallet over HTTP/JSON using gin.
//
// Routes live under /api/v1. User routes answer validation failures with
// status 411 and a {"message"} body; account routes answer failures with an
// {"error", "code"} body.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/dmitrijs2005/gophwallet/internal/server/models"
	"github.com/dmitrijs2005/gophwallet/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type userService interface {
	Signup(ctx context.Context, in services.SignupInput) (*models.User, *services.TokenPair, error)
	Signin(ctx context.Context, in services.SigninInput) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	UpdateProfile(ctx context.Context, userID string, in services.UpdateProfileInput) error
	FindUsers(ctx context.Context, filter string) ([]*models.User, error)
	Authenticate(accessToken string) (string, error)
}

type walletService interface {
	Balance(ctx context.Context, userID string) (int64, error)
	Transfer(ctx context.Context, callerID, recipientID string, amount float64) error
}

const shutdownTimeout = 10 * time.Second

type Server struct {
	address string
	users   userService
	wallet  walletService
	logger  logging.Logger
	engine  *gin.Engine
}

func NewServer(address string, l logging.Logger, us userService, ws walletService) *Server {
	s := &Server{
		address: address,
		users:   us,
		wallet:  ws,
		logger:  l.With("module", "http_server"),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(metrics())
	r.Use(s.accessLog())

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	user := v1.Group("/user")
	{
		user.POST("/signup", s.signup)
		user.POST("/signin", s.signin)
		user.POST("/refresh", s.refresh)
		user.PUT("", s.authRequired(), s.updateProfile)
		user.GET("/bulk", s.authRequired(), s.findUsers)
	}

	account := v1.Group("/account", s.authRequired())
	{
		account.GET("/balance", s.balance)
		account.POST("/transfer", s.transfer)
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server forced to shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
