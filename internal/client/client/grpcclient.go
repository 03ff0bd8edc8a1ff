package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/common"
	pb "github.com/dmitrijs2005/gophwallet/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.WalletServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(accessToken, refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token and, when the
// server reports it expired, rotates the token pair once and retries.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if method == pb.WalletService_RefreshToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.Tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	onRefresh := s.onRefresh
	s.mu.Unlock()

	if onRefresh != nil {
		onRefresh(resp.AccessToken, resp.RefreshToken)
	}

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewWalletClient connects to the wallet gRPC endpoint. Every call is bounded
// by timeout unless the caller's context expires first.
func NewWalletClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewWalletServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// OnTokensRefreshed registers fn to be called after a transparent token
// rotation, so the caller can persist the new pair.
func (s *GRPCClient) OnTokensRefreshed(fn func(accessToken, refreshToken string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, password, firstName, lastName string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.SignupRequest{Username: username, Password: password, FirstName: firstName, LastName: lastName}
	resp, err := s.client.Signup(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return resp.UserId, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Signin(ctx, &pb.SigninRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Balance(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetBalance(ctx, &pb.GetBalanceRequest{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Balance, nil
}

func (s *GRPCClient) Transfer(ctx context.Context, to string, amount float64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Transfer(ctx, &pb.TransferRequest{To: to, Amount: amount})
	return s.mapError(err)
}

func (s *GRPCClient) FindUsers(ctx context.Context, filter string) ([]*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.FindUsers(ctx, &pb.FindUsersRequest{Filter: filter})
	if err != nil {
		return nil, s.mapError(err)
	}

	users := make([]*models.User, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, &models.User{Id: u.Id, Username: u.Username, FirstName: u.FirstName, LastName: u.LastName})
	}
	return users, nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.UpdateProfileRequest{Password: update.Password, FirstName: update.FirstName, LastName: update.LastName}
	_, err := s.client.UpdateProfile(ctx, req)
	return s.mapError(err)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	if st.Code() == codes.DeadlineExceeded && st.Message() == common.ErrTransferTimeout.Error() {
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument, codes.NotFound, codes.FailedPrecondition, codes.Aborted:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
