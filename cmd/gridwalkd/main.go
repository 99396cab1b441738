// Command gridwalkd serves grids and search sessions over HTTP.
//
// Configuration comes from the environment or a .env file (see package
// config). The server stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/api"
	"github.com/katalvlaran/gridwalk/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(log)
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	log.SetLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	store := api.NewStore(cfg.GridRows, cfg.GridCols, cfg.Strategy, log,
		api.WithMaxCells(cfg.MaxGridCells),
		api.WithSessionTTL(cfg.SessionTTL),
	)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(api.Config{BaseURL: "/api", Store: store, Logger: log}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.HTTPAddr, "strategy": cfg.Strategy}).Info("gridwalkd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
