package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-notes-keeper/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-notes-keeper/internal/handler/http"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func testHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, cfg, logger.Nop()),
		GRPC: myGRPC.NewHandler(nil, logger.Nop()),
	}
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BusyAddress(t *testing.T) {
	cfg := testServerConfig()
	cfg.GRPCAddress = ""

	first, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	defer first.(*server).httpServer.listener.Close()

	cfg.HTTPAddress = first.(*server).httpServer.Addr().String()
	_, err = NewServer(testHandlers(cfg), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunServesAndShutsDown(t *testing.T) {
	cfg := testServerConfig()
	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	// ── HTTP ──
	httpURL := "http://" + s.httpServer.Addr().String() + "/api/unknown"
	resp, err := http.Get(httpURL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	// ── gRPC health ──
	conn, err := grpc.NewClient(s.gRPCServer.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer checkCancel()
	hc, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.GetStatus())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get(httpURL)
	assert.Error(t, err, "HTTP listener must be closed after shutdown")
}

func TestServer_RunWithoutTransports(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersAreCreated)
}
