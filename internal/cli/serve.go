package cli

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quisqueya-quiz/backend/internal/api"
	"github.com/quisqueya-quiz/backend/internal/infrastructure/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load(logger)

	svc, cleanup, err := buildService(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, api.NewHandler(svc, logger))

	// Middleware chain: Logging -> CORS -> mux
	logged := api.Logging(logger)(api.CORS(mux))

	server := &http.Server{
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	listener, err := net.Listen("tcp", cfg.ServerAddress)
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting server", "address", cfg.ServerAddress)
	return serveUntilShutdown(server, listener, sigChan, cfg.ShutdownTimeout, logger)
}

// serveUntilShutdown serves until a signal arrives, then drains in-flight
// requests before returning. The caller's cleanup must not run while
// handlers can still reach the service, so the shutdown goroutine is
// awaited, not fired and forgotten.
func serveUntilShutdown(server *http.Server, listener net.Listener, sig <-chan os.Signal, timeout time.Duration, logger *slog.Logger) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-sig

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-done
	return nil
}
