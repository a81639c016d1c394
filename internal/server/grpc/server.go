package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/univerp/authd/internal/logging"
	pb "github.com/univerp/authd/internal/proto"
	"github.com/univerp/authd/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedUnivErpAuthServiceServer
	address   string
	auth      *services.AuthService
	admin     *services.AdminService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, as *services.AuthService, ads *services.AdminService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		auth:      as,
		admin:     ads,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.sessionTokenInterceptor))

	pb.RegisterUnivErpAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
