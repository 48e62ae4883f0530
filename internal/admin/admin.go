// Package admin serves the optional HTTP and gRPC operator endpoints.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/rbright/windowcaster/internal/logging"
)

// Server runs the admin HTTP router and the gRPC health service. Either
// address may be empty to disable that endpoint.
type Server struct {
	httpAddr string
	grpcAddr string
	handler  http.Handler
	health   *Health
	logger   *slog.Logger

	mu       sync.Mutex
	httpSrv  *http.Server
	grpcSrv  *grpc.Server
	httpLn   net.Listener
	grpcLn   net.Listener
	wg       sync.WaitGroup
	shutdown bool
}

// New configures an admin server. handler is usually NewRouter's result.
func New(httpAddr, grpcAddr string, handler http.Handler, health *Health, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		httpAddr: httpAddr,
		grpcAddr: grpcAddr,
		handler:  handler,
		health:   health,
		logger:   logger,
	}
}

// Start binds the configured endpoints and serves them in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lc net.ListenConfig
	if s.httpAddr != "" {
		ln, err := lc.Listen(ctx, "tcp", s.httpAddr)
		if err != nil {
			return fmt.Errorf("listen admin http %s: %w", s.httpAddr, err)
		}
		s.httpLn = ln
		s.httpSrv = &http.Server{
			Handler:           s.handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("admin http stopped", "error", err.Error())
			}
		}()
		s.logger.Info("admin http listening", "addr", ln.Addr().String())
	}

	if s.grpcAddr != "" {
		ln, err := lc.Listen(ctx, "tcp", s.grpcAddr)
		if err != nil {
			if s.httpSrv != nil {
				_ = s.httpSrv.Close()
				s.httpSrv, s.httpLn = nil, nil
			}
			return fmt.Errorf("listen admin grpc %s: %w", s.grpcAddr, err)
		}
		s.grpcLn = ln
		s.grpcSrv = grpc.NewServer()
		if s.health != nil {
			s.health.Register(s.grpcSrv)
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := s.grpcSrv.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				s.logger.Error("admin grpc stopped", "error", err.Error())
			}
		}()
		s.logger.Info("admin grpc listening", "addr", ln.Addr().String())
	}
	return nil
}

// HTTPAddr returns the bound HTTP address, or "" when disabled.
func (s *Server) HTTPAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.httpLn == nil {
		return ""
	}
	return s.httpLn.Addr().String()
}

// GRPCAddr returns the bound gRPC address, or "" when disabled.
func (s *Server) GRPCAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grpcLn == nil {
		return ""
	}
	return s.grpcLn.Addr().String()
}

// Shutdown stops both endpoints and waits for their serve loops.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return nil
	}
	s.shutdown = true
	err := s.closeLocked(ctx)
	s.mu.Unlock()

	s.wg.Wait()
	return err
}

func (s *Server) closeLocked(ctx context.Context) error {
	var err error
	if s.health != nil && s.grpcSrv != nil {
		s.health.Shutdown()
	}
	if s.grpcSrv != nil {
		s.grpcSrv.GracefulStop()
	}
	if s.httpSrv != nil {
		err = s.httpSrv.Shutdown(ctx)
	}
	return err
}
