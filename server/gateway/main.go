package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mydarts/pkg/logger"
	handlers "mydarts/server/gateway/handler"
	"mydarts/server/gateway/pkg/config"
	"mydarts/server/gateway/rpc"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.yaml)")
	flag.Parse()

	// 1. config and logging
	config.InitConfig(*configPath)
	cfg := config.AppConfig
	logger.Setup(cfg.Log.Level, cfg.Server.Mode)

	// 2. game service client
	client, conn, err := rpc.NewGameClient(cfg.RPC.GameServiceAddr)
	if err != nil {
		slog.Error("rpc init failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// 3. routes
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(handlers.NewGameHandler(client, cfg.RPC.Timeout), cfg.JWT.Secret, cfg.Server.AllowOrigin)
	if cfg.JWT.Secret == "" {
		slog.Warn("jwt.secret is empty, API is unauthenticated")
	}

	// 4. serve until signalled
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}
	go func() {
		slog.Info("gateway listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("gateway failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down gateway")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("gateway shutdown", "error", err)
	}
}
