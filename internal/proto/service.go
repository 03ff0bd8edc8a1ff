package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "gophwallet.WalletService"

const (
	WalletService_Ping_FullMethodName          = "/gophwallet.WalletService/Ping"
	WalletService_Signup_FullMethodName        = "/gophwallet.WalletService/Signup"
	WalletService_Signin_FullMethodName        = "/gophwallet.WalletService/Signin"
	WalletService_RefreshToken_FullMethodName  = "/gophwallet.WalletService/RefreshToken"
	WalletService_UpdateProfile_FullMethodName = "/gophwallet.WalletService/UpdateProfile"
	WalletService_FindUsers_FullMethodName     = "/gophwallet.WalletService/FindUsers"
	WalletService_GetBalance_FullMethodName    = "/gophwallet.WalletService/GetBalance"
	WalletService_Transfer_FullMethodName      = "/gophwallet.WalletService/Transfer"
)

// WalletServiceServer is the server API for the wallet service.
type WalletServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Signup(context.Context, *SignupRequest) (*SignupResponse, error)
	Signin(context.Context, *SigninRequest) (*SigninResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	FindUsers(context.Context, *FindUsersRequest) (*FindUsersResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	Transfer(context.Context, *TransferRequest) (*TransferResponse, error)
}

// UnimplementedWalletServiceServer answers every method with
// codes.Unimplemented. Embed it to stay forward compatible.
type UnimplementedWalletServiceServer struct{}

func (UnimplementedWalletServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedWalletServiceServer) Signup(context.Context, *SignupRequest) (*SignupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Signup not implemented")
}
func (UnimplementedWalletServiceServer) Signin(context.Context, *SigninRequest) (*SigninResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Signin not implemented")
}
func (UnimplementedWalletServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedWalletServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}
func (UnimplementedWalletServiceServer) FindUsers(context.Context, *FindUsersRequest) (*FindUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FindUsers not implemented")
}
func (UnimplementedWalletServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedWalletServiceServer) Transfer(context.Context, *TransferRequest) (*TransferResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Transfer not implemented")
}

func unary[Req, Resp any](name, fullMethod string, call func(WalletServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(WalletServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(WalletServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// WalletService_ServiceDesc describes the wallet service for grpc.Server.
var WalletService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WalletServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", WalletService_Ping_FullMethodName, WalletServiceServer.Ping),
		unary("Signup", WalletService_Signup_FullMethodName, WalletServiceServer.Signup),
		unary("Signin", WalletService_Signin_FullMethodName, WalletServiceServer.Signin),
		unary("RefreshToken", WalletService_RefreshToken_FullMethodName, WalletServiceServer.RefreshToken),
		unary("UpdateProfile", WalletService_UpdateProfile_FullMethodName, WalletServiceServer.UpdateProfile),
		unary("FindUsers", WalletService_FindUsers_FullMethodName, WalletServiceServer.FindUsers),
		unary("GetBalance", WalletService_GetBalance_FullMethodName, WalletServiceServer.GetBalance),
		unary("Transfer", WalletService_Transfer_FullMethodName, WalletServiceServer.Transfer),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophwallet/wallet.json",
}

func RegisterWalletServiceServer(s grpc.ServiceRegistrar, srv WalletServiceServer) {
	s.RegisterService(&WalletService_ServiceDesc, srv)
}

// WalletServiceClient is the client API for the wallet service. Every call
// is sent with the JSON content-subtype.
type WalletServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error)
	Signin(ctx context.Context, in *SigninRequest, opts ...grpc.CallOption) (*SigninResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
	FindUsers(ctx context.Context, in *FindUsersRequest, opts ...grpc.CallOption) (*FindUsersResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error)
}

type walletServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWalletServiceClient(cc grpc.ClientConnInterface) WalletServiceClient {
	return &walletServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *walletServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, WalletService_Ping_FullMethodName, in, opts)
}

func (c *walletServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error) {
	return invoke[SignupResponse](ctx, c.cc, WalletService_Signup_FullMethodName, in, opts)
}

func (c *walletServiceClient) Signin(ctx context.Context, in *SigninRequest, opts ...grpc.CallOption) (*SigninResponse, error) {
	return invoke[SigninResponse](ctx, c.cc, WalletService_Signin_FullMethodName, in, opts)
}

func (c *walletServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, WalletService_RefreshToken_FullMethodName, in, opts)
}

func (c *walletServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	return invoke[UpdateProfileResponse](ctx, c.cc, WalletService_UpdateProfile_FullMethodName, in, opts)
}

func (c *walletServiceClient) FindUsers(ctx context.Context, in *FindUsersRequest, opts ...grpc.CallOption) (*FindUsersResponse, error) {
	return invoke[FindUsersResponse](ctx, c.cc, WalletService_FindUsers_FullMethodName, in, opts)
}

func (c *walletServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	return invoke[GetBalanceResponse](ctx, c.cc, WalletService_GetBalance_FullMethodName, in, opts)
}

func (c *walletServiceClient) Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error) {
	return invoke[TransferResponse](ctx, c.cc, WalletService_Transfer_FullMethodName, in, opts)
}
