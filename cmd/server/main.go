// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/nahtanPNG/spy-game-backend/internal/config"
	"github.com/nahtanPNG/spy-game-backend/internal/handlers"
	"github.com/nahtanPNG/spy-game-backend/internal/locations"
	"github.com/nahtanPNG/spy-game-backend/internal/metrics"
	"github.com/nahtanPNG/spy-game-backend/internal/middleware"
	"github.com/nahtanPNG/spy-game-backend/internal/room"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	registry := room.New(locations.Catalog, logger)
	registry.Retention = cfg.RoomRetention

	m := metrics.New("spygame")
	gs := handlers.NewGameServer(registry, logger, cfg.Origins)

	mux := http.NewServeMux()
	mux.Handle("/", middleware.LogMiddleware(logger)(handlers.IndexHandler(registry)))
	mux.Handle("/health", middleware.LogMiddleware(logger)(handlers.HealthHandler()))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/ws", handlers.WSHandler(logger, gs))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Hourly expiry sweep over the registry. The janitor itself never
	// self-schedules; this loop is its external scheduler.
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				count := registry.SweepExpired(time.Now())
				m.AddExpired(count)
				if count > 0 {
					logger.WithField("removed", count).Info("expiry sweep finished")
				}
			}
		}
	}()

	// Periodic stats log plus gauge refresh.
	go func() {
		ticker := time.NewTicker(cfg.StatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := registry.Stats()
				m.ObserveStats(stats)
				if stats.TotalRooms > 0 || stats.TotalPlayers > 0 {
					logger.WithFields(logrus.Fields{
						"rooms":   stats.TotalRooms,
						"players": stats.TotalPlayers,
					}).Info("active sessions")
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	go func() {
		logger.Infof("Running on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server exited: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
