package grpc

import (
	"context"
	"errors"

	"github.com/avoronov/authkeeper/internal/common"
	pb "github.com/avoronov/authkeeper/internal/proto"
	"github.com/avoronov/authkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.AuthResponse, error) {

	user, token, err := s.auth.Register(ctx, req.Name, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			s.logger.Error(ctx, "registration failed", "error", err.Error())
		}
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "registered", "email", user.Email)
	return &pb.AuthResponse{User: toPBUser(user), Token: token}, nil

}

func (s *GRPCServer) LoginUser(ctx context.Context, req *pb.LoginUserRequest) (*pb.AuthResponse, error) {

	user, token, err := s.auth.Login(ctx, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			s.logger.Error(ctx, "login failed", "error", err.Error())
		}
		return nil, statusFromError(err)
	}

	return &pb.AuthResponse{User: toPBUser(user), Token: token}, nil

}

func (s *GRPCServer) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.AuthResponse, error) {

	user, token, err := s.auth.VerifyToken(ctx, req.Token)

	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			s.logger.Error(ctx, "token verification failed", "error", err.Error())
		}
		return nil, statusFromError(err)
	}

	return &pb.AuthResponse{User: toPBUser(user), Token: token}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

// statusFromError maps the service taxonomy onto wire codes. Internal
// details never cross the boundary; callers get generic messages.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, "invalid request")
	case errors.Is(err, common.ErrorEmailExists):
		return status.Error(codes.AlreadyExists, "email already registered")
	case errors.Is(err, common.ErrorInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toPBUser(u *models.User) *pb.User {
	return &pb.User{Id: u.ID, Name: u.Name, Email: u.Email}
}
