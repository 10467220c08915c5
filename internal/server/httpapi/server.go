// Package httpapi is the thin HTTP binding over the auth core: routing,
// request parsing, and the health endpoint. All business outcomes come from
// the service layer as Response values; this layer only maps them onto the
// wire.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
)

// AuthService is the part of the service layer the HTTP binding needs.
type AuthService interface {
	Register(ctx context.Context, email, username, password, role string) *services.Response
	Login(ctx context.Context, username, password string) (*services.Response, error)
}

type Server struct {
	address string
	logger  logging.Logger
	auth    AuthService
}

func NewServer(address string, logger logging.Logger, auth AuthService) *Server {
	return &Server{
		address: address,
		logger:  logger.With("module", "http_server"),
		auth:    auth,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
