package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-notes-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	g := &grpcServer{
		handler:         handler,
		gRPCNetListener: listener,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	g.server = grpc.NewServer(grpc.ChainUnaryInterceptor(g.logUnary))
	handler.Register(g.server)

	return g, nil
}

func (g *grpcServer) Addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown reports NOT_SERVING, then drains in-flight calls. Calls still
// running after the shutdown timeout are cancelled.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	if g.shutdownTimeout <= 0 {
		g.server.GracefulStop()
		return
	}

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Dur("timeout", g.shutdownTimeout).Msg("gRPC graceful stop timed out, forcing")
		g.server.Stop()
	}
}

func (g *grpcServer) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	g.logger.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")

	return resp, err
}
