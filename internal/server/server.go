// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Student-market-place/StudentMarket-sub001/internal/auth"
	"github.com/Student-market-place/StudentMarket-sub001/internal/config"
	"github.com/Student-market-place/StudentMarket-sub001/internal/database"
	"github.com/Student-market-place/StudentMarket-sub001/internal/storage"
	"github.com/Student-market-place/StudentMarket-sub001/internal/workflow"
)

// MyServer bundles everything the HTTP layer needs. All dependencies are
// passed in explicitly; nothing here reaches for globals.
type MyServer struct {
	Cfg       config.Config
	DB        *database.DBinstanceStruct
	Notifier  workflow.Notifier
	Storage   *storage.Client
	Blacklist auth.JwtBlacklistStore
}

// New constructs a MyServer. Notifier falls back to logging and Blacklist
// to the in-memory store when nil.
func New(cfg config.Config, db *database.DBinstanceStruct, notifier workflow.Notifier, st *storage.Client, bl auth.JwtBlacklistStore) *MyServer {
	if notifier == nil {
		notifier = workflow.LogNotifier{}
	}
	if bl == nil {
		bl = auth.NewInMemoryBlacklistStore()
	}
	return &MyServer{
		Cfg:       cfg,
		DB:        db,
		Notifier:  notifier,
		Storage:   st,
		Blacklist: bl,
	}
}

// HTTPServer wraps the routes in an http.Server with sane timeouts.
func (s *MyServer) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Cfg.API.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
