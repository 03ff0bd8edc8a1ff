package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophwallet/internal/logging"
	pb "github.com/dmitrijs2005/gophwallet/internal/proto"
	"github.com/dmitrijs2005/gophwallet/internal/server/models"
	"github.com/dmitrijs2005/gophwallet/internal/server/services"
	"google.golang.org/grpc"
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

type GRPCServer struct {
	pb.UnimplementedWalletServiceServer
	address string
	users   userService
	wallet  walletService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us userService, ws walletService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		wallet:  ws,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(metricsInterceptor, s.accessTokenInterceptor))
	pb.RegisterWalletServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
