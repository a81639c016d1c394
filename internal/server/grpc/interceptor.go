package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/univerp/authd/internal/common"
	"github.com/univerp/authd/internal/server/auth"
	"github.com/univerp/authd/internal/server/models"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	roleKey   ctxKey = "role"
)

// openMethods need no session token: Login is how you get one, Ping and the
// maintenance probe serve the login screen before authentication.
var openMethods = map[string]bool{
	"/univerp.auth.UnivErpAuthService/Login":              true,
	"/univerp.auth.UnivErpAuthService/Ping":               true,
	"/univerp.auth.UnivErpAuthService/GetMaintenanceMode": true,
}

// adminMethods additionally require the ADMIN role from the token.
var adminMethods = map[string]bool{
	"/univerp.auth.UnivErpAuthService/RegisterUser":       true,
	"/univerp.auth.UnivErpAuthService/SetMaintenanceMode": true,
}

// sessionTokenInterceptor authenticates protected methods from the
// session_token metadata entry and stores the caller's id and role on the
// context for handlers.
func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if openMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.SessionTokenHeaderName)
		if len(values) > 0 {
			token = values[0]
		}
	}
	if len(token) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, role, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	if adminMethods[info.FullMethod] && role != models.RoleAdmin {
		return nil, status.Error(codes.PermissionDenied, "admin role required")
	}

	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, roleKey, role)

	return handler(ctx, req)
}

// callerID returns the authenticated user id the interceptor stored.
func callerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
