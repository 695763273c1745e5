package grpc

import (
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NotesServiceName is the service name reported by the health endpoint next
// to the overall "" status.
const NotesServiceName = "notes.NotesService"

// Handler is the root gRPC transport handler.
//
// It serves the standard gRPC health checking protocol so that orchestrators
// can probe the notes server. A handler instance is created once at startup
// and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] that reports SERVING for the whole
// server and for [NotesServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus(NotesServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown switches every reported status to NOT_SERVING. It is called
// before the transports stop so that probes fail first.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health: NOT_SERVING")
	h.health.Shutdown()
}
