// Command worker consumes queued application events and delivers
// notifications.
package main

import (
	"log"

	"github.com/hibiken/asynq"

	"github.com/Student-market-place/StudentMarket-sub001/internal/config"
	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/metrics"
	"github.com/Student-market-place/StudentMarket-sub001/internal/worker"
)

func main() {
	cfg := config.MustLoad()

	db, err := database.NewDBInstance(cfg.Database)
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}
	defer func() { _ = db.Close() }()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
		},
	)

	mux := asynq.NewServeMux()
	mux.Use(metrics.AsynqMiddleware())
	worker.RegisterHandlers(mux, db)

	// Run blocks until SIGINT/SIGTERM and drains in-flight tasks.
	if err := srv.Run(mux); err != nil {
		log.Fatalf("worker stopped: %s", err)
	}
}
