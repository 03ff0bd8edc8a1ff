package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	pb "github.com/dmitrijs2005/gophwallet/internal/proto"
	"github.com/dmitrijs2005/gophwallet/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.SignupResponse, error) {

	user, tokens, err := s.users.Signup(ctx, services.SignupInput{
		UserName:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, s.userError(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.SignupResponse{UserId: user.ID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

func (s *GRPCServer) Signin(ctx context.Context, req *pb.SigninRequest) (*pb.SigninResponse, error) {

	tokens, err := s.users.Signin(ctx, services.SigninInput{UserName: req.Username, Password: req.Password})
	if err != nil {
		return nil, s.userError(ctx, err)
	}

	return &pb.SigninResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.userError(ctx, err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	err = s.users.UpdateProfile(ctx, userID, services.UpdateProfileInput{
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, s.userError(ctx, err)
	}

	return &pb.UpdateProfileResponse{}, nil

}

func (s *GRPCServer) FindUsers(ctx context.Context, req *pb.FindUsersRequest) (*pb.FindUsersResponse, error) {

	found, err := s.users.FindUsers(ctx, req.Filter)
	if err != nil {
		return nil, s.userError(ctx, err)
	}

	resp := &pb.FindUsersResponse{Users: make([]*pb.UserInfo, 0, len(found))}
	for _, u := range found {
		resp.Users = append(resp.Users, &pb.UserInfo{Id: u.ID, Username: u.UserName, FirstName: u.FirstName, LastName: u.LastName})
	}
	return resp, nil

}

func (s *GRPCServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := s.wallet.Balance(ctx, userID)
	if err != nil {
		return nil, s.walletError(ctx, err)
	}

	return &pb.GetBalanceResponse{Balance: balance}, nil

}

func (s *GRPCServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.wallet.Transfer(ctx, userID, req.To, req.Amount); err != nil {
		return nil, s.walletError(ctx, err)
	}

	return &pb.TransferResponse{}, nil

}

func (s *GRPCServer) userError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "user not found")
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) walletError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidAmount), errors.Is(err, common.ErrSelfTransfer):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrAccountNotFound), errors.Is(err, common.ErrRecipientNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrTransferTimeout):
		return status.Error(codes.DeadlineExceeded, common.ErrTransferTimeout.Error())
	case errors.Is(err, common.ErrTxAborted):
		return status.Error(codes.Aborted, common.ErrTxAborted.Error())
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
