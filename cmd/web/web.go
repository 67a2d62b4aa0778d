package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/navbryce/daily-sns/config"
	"github.com/navbryce/daily-sns/controllers"
	"github.com/navbryce/daily-sns/logging"
	"github.com/navbryce/daily-sns/routes"
	"github.com/navbryce/daily-sns/services"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("SNS_CONFIG"), "path to a YAML config file")
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataService, err := newMockDataService(cfg, logger)
	if err != nil {
		return err
	}
	refreshInterval, err := cfg.AlbumRefreshInterval()
	if err != nil {
		return err
	}
	albumController, err := controllers.NewAlbumController(ctx, dataService, refreshInterval, logger.Named("albums"))
	if err != nil {
		return fmt.Errorf("an error occurred while initializing the album controller: %w", err)
	}
	defer albumController.Stop()

	gin.SetMode(cfg.Server.GinMode)
	r := routes.NewRouter(dataService, albumController, logger.Named("http"), cors.New(cors.Config{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error when attempting to run web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newMockDataService(cfg *config.Config, logger *zap.Logger) (*services.MockDataService, error) {
	delay, err := cfg.MockDelay()
	if err != nil {
		return nil, err
	}
	opts := []services.MockOption{
		services.WithDelay(delay),
		services.WithLogger(logger.Named("mock")),
	}
	if cfg.Mock.Seed != 0 {
		opts = append(opts, services.WithRand(rand.New(rand.NewSource(cfg.Mock.Seed))))
	}
	return services.NewMockDataService(opts...), nil
}
