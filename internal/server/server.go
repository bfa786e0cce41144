package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nomix/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP listener for the API.
type Server struct {
	http *http.Server
}

// New creates a Server listening on addr.
func New(addr string, handler http.Handler) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("server")
	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
