// Package client wraps the gRPC connection to the auth server and keeps the
// session token obtained at login, attaching it to every subsequent call.
package client

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/univerp/authd/internal/common"
	pb "github.com/univerp/authd/internal/proto"
)

// Identity is the authenticated user as reported by the server.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.UnivErpAuthServiceClient
	sessionToken string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if c.sessionToken != "" {
		ctx = withSessionToken(ctx, c.sessionToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.sessionTokenInterceptor),
	)
	if err != nil {
		return nil, fmt.Errorf("grpc client error: %w", err)
	}

	c.conn = conn
	c.client = pb.NewUnivErpAuthServiceClient(conn)
	return c, nil
}

// Login authenticates and remembers the session token for later calls.
func (c *GRPCClient) Login(ctx context.Context, username, password string) (*Identity, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, convertError(err)
	}

	c.sessionToken = resp.SessionToken
	return &Identity{UserID: resp.UserId, Username: resp.Username, Role: resp.Role}, nil
}

// Logout drops the session token.
func (c *GRPCClient) Logout() {
	c.sessionToken = ""
}

func (c *GRPCClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := c.client.ChangePassword(ctx, &pb.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	return convertError(err)
}

func (c *GRPCClient) RegisterUser(ctx context.Context, username, password, role string) (string, error) {
	resp, err := c.client.RegisterUser(ctx, &pb.RegisterUserRequest{Username: username, Password: password, Role: role})
	if err != nil {
		return "", convertError(err)
	}
	return resp.UserId, nil
}

func (c *GRPCClient) SetMaintenanceMode(ctx context.Context, on bool) error {
	_, err := c.client.SetMaintenanceMode(ctx, &pb.SetMaintenanceModeRequest{Enabled: on})
	return convertError(err)
}

func (c *GRPCClient) MaintenanceOn(ctx context.Context) (bool, error) {
	resp, err := c.client.GetMaintenanceMode(ctx, &pb.GetMaintenanceModeRequest{})
	if err != nil {
		return false, convertError(err)
	}
	return resp.Enabled, nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &pb.PingRequest{})
	return convertError(err)
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// convertError turns gRPC transport failures into ErrUnavailable and keeps
// the server's message for everything else, so the CLI can show the
// attempt-count and lockout texts verbatim.
func convertError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.Unavailable {
		return ErrUnavailable
	}

	return errors.New(st.Message())
}
