package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mydarts/pkg/logger"
	"mydarts/server/game-service/internal/dao"
	"mydarts/server/game-service/internal/handler"
	"mydarts/server/game-service/internal/mq"
	"mydarts/server/game-service/internal/service"
	"mydarts/server/game-service/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.yaml)")
	flag.Parse()

	config.InitConfig(*configPath)
	cfg := config.AppConfig
	logger.Setup(cfg.Log.Level, cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.Database.SQLite
	if cfg.Database.Driver == "mysql" {
		dsn = cfg.Database.MySQL.DSN()
	}
	db, err := dao.OpenDB(cfg.Database.Driver, dsn)
	if err != nil {
		fatal("database init failed", err)
	}
	store := dao.NewStore(db)

	var cache service.Cache
	var redisCache *dao.Cache
	if cfg.Redis.Enabled {
		rdb, err := dao.NewRedis(ctx, dao.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			fatal("redis init failed", err)
		}
		defer rdb.Close()
		redisCache = dao.NewCache(rdb, cfg.Redis.CareerTTL)
		cache = redisCache
	}

	var events service.Publisher
	if cfg.MQ.Enabled {
		conn, ch, err := mq.Dial(cfg.MQ.Url, cfg.MQ.Exchange)
		if err != nil {
			fatal("mq init failed", err)
		}
		defer conn.Close()
		events = mq.NewProducer(ch, cfg.MQ.Exchange)

		if redisCache != nil {
			consumeCh, err := conn.Channel()
			if err != nil {
				fatal("mq consumer channel failed", err)
			}
			go func() {
				if err := mq.StartConsumer(ctx, consumeCh, cfg.MQ.Exchange, redisCache); err != nil {
					slog.Error("mq consumer stopped", "error", err)
				}
			}()
		}
	}

	svc := service.NewGameService(store, cache, events, service.Options{
		LockTimeout: cfg.Game.LockTimeout,
		IdleTTL:     cfg.Game.IdleTTL,
	})
	go svc.Run(ctx, cfg.Game.CleanupInterval)

	srv := handler.NewGRPCServer(svc)
	go func() {
		if err := handler.StartGRPC(srv, cfg.Server.GrpcPort); err != nil {
			fatal("gRPC server failed", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down game service")

	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		srv.Stop()
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
