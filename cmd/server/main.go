package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/config"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/server"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/storage/sqlite"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	handler := server.New(store)

	// Wrap with h2c so local clients can use HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: h2cHandler}

	go func() {
		slog.Info("Server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
