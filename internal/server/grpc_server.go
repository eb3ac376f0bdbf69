package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/logger"
	_ "github.com/oggyb/muzz-dating/internal/rpc" // registers the JSON codec
)

// GRPCServer owns the gRPC server and its listener.
type GRPCServer struct {
	server *grpc.Server
	addr   string
}

// NewGRPCServer builds a gRPC server with the auth and logging interceptors
// and registers all provided services.
func NewGRPCServer(appCtx *app.AppContext, registrars ...Registrar) *GRPCServer {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(),
			AuthInterceptor(appCtx),
		),
	)

	// register all services
	for _, r := range registrars {
		r.Register(s)
	}

	addr := ""
	if appCtx.Config != nil {
		addr = fmt.Sprintf("%s:%s", appCtx.Config.GRPC.Host, appCtx.Config.GRPC.Port)
	}
	return &GRPCServer{server: s, addr: addr}
}

// Start listens on the configured address and serves until Stop.
func (g *GRPCServer) Start() error {
	lis, err := net.Listen("tcp", g.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", g.addr, err)
	}
	return g.Serve(lis)
}

// Serve runs the server on an existing listener.
func (g *GRPCServer) Serve(lis net.Listener) error {
	logger.Info("gRPC server listening", "addr", lis.Addr().String())
	return g.server.Serve(lis)
}

// Stop drains in-flight calls and stops the server.
func (g *GRPCServer) Stop() {
	g.server.GracefulStop()
}
