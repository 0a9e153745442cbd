// Command api runs the StudentMarket HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/Student-market-place/StudentMarket-sub001/internal/auth"
	"github.com/Student-market-place/StudentMarket-sub001/internal/config"
	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/server"
	"github.com/Student-market-place/StudentMarket-sub001/internal/storage"
	"github.com/Student-market-place/StudentMarket-sub001/internal/workflow"
)

func main() {
	cfg := config.MustLoad()

	db, err := database.NewDBInstance(cfg.Database)
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}
	defer func() { _ = db.Close() }()

	if cfg.Auth.AdminUsername != "" && cfg.Auth.AdminPassword != "" {
		db.CreateAdminIfMissing(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	}

	// Redis backs both the token blacklist and the event queue. When it is
	// unreachable the API still runs, with in-process fallbacks.
	var blacklist auth.JwtBlacklistStore
	var notifier workflow.Notifier

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Printf("redis unreachable (%v), using in-memory blacklist and log notifier", err)
		blacklist = auth.NewInMemoryBlacklistStore()
		notifier = workflow.LogNotifier{}
	} else {
		blacklist = auth.NewRedisBlacklistStore(redisClient)
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = asynqClient.Close() }()
		notifier = workflow.NewQueueNotifier(asynqClient)
	}
	cancelPing()

	var store *storage.Client
	if cfg.MinIO.AccessKeyID != "" {
		store, err = storage.NewClient(cfg.MinIO)
		if err != nil {
			log.Printf("object storage unavailable (%v), uploads disabled", err)
			store = nil
		}
	}

	srv := server.New(*cfg, db, notifier, store, blacklist).HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %s", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %s", err)
	}
}
