package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/pietro1412/fantacontratti/controller"
	"github.com/pietro1412/fantacontratti/metrics"
	"github.com/unrolled/render"
)

type Server struct {
	server *http.Server
	logger *slog.Logger
}

func NewServer(port int, ctrl controller.C, m *metrics.Metrics, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	render := render.New()
	router := getRouter(ctrl, render, m)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
		logger: logger,
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Error("error shutting down server", "err", err)
		}
	}()

	s.logger.Info("web server is listening", "addr", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("fatal error with server", "err", err)
	}
}
