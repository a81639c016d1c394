package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/univerp/authd/internal/common"
	pb "github.com/univerp/authd/internal/proto"
	"github.com/univerp/authd/internal/server/models"
	"github.com/univerp/authd/internal/server/services"
)

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	result, err := s.auth.Login(ctx, req.Username, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			return nil, status.Error(codes.Unauthenticated, err.Error())
		case errors.Is(err, common.ErrAccountLocked):
			return nil, status.Error(codes.PermissionDenied, err.Error())
		case errors.Is(err, common.ErrMaintenanceMode):
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		default:
			s.logger.Error(ctx, "login failed", "error", err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.LoginResponse{
		SessionToken: result.SessionToken,
		UserId:       result.Identity.UserID,
		Username:     result.Identity.Username,
		Role:         string(result.Identity.Role),
	}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {

	userID, ok := callerID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	err := s.auth.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrIncorrectOldPassword):
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		case errors.Is(err, common.ErrUserNotFound):
			return nil, status.Error(codes.NotFound, err.Error())
		default:
			s.logger.Error(ctx, "password change failed", "error", err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	id, err := s.admin.RegisterUser(ctx, req.Username, req.Password, models.Role(req.Role))

	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, "registration failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "registered", "username", req.Username)
	return &pb.RegisterUserResponse{UserId: id}, nil
}

func (s *GRPCServer) SetMaintenanceMode(ctx context.Context, req *pb.SetMaintenanceModeRequest) (*pb.SetMaintenanceModeResponse, error) {

	if err := s.admin.SetMaintenanceMode(ctx, req.Enabled); err != nil {
		s.logger.Error(ctx, "maintenance toggle failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SetMaintenanceModeResponse{}, nil
}

func (s *GRPCServer) GetMaintenanceMode(ctx context.Context, req *pb.GetMaintenanceModeRequest) (*pb.GetMaintenanceModeResponse, error) {

	on, err := s.admin.MaintenanceModeOn(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetMaintenanceModeResponse{Enabled: on}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}
