package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Estefano-cmd/impulsoApi/api"
	"github.com/Estefano-cmd/impulsoApi/config"
	"github.com/Estefano-cmd/impulsoApi/internal/auth"
	"github.com/Estefano-cmd/impulsoApi/internal/cache"
	"github.com/Estefano-cmd/impulsoApi/internal/database"
	"github.com/Estefano-cmd/impulsoApi/internal/messaging"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"
	"github.com/Estefano-cmd/impulsoApi/internal/service"
	"github.com/Estefano-cmd/impulsoApi/internal/telemetry"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	// Serve command flags
	disableNewRelic bool
	serverPort      int
	gracefulTimeout int
	migrateOnStart  bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Starts the HTTP API server.

The server respects the configuration in config.yaml or specified via the --config flag.
It will gracefully shut down on receiving SIGINT or SIGTERM signals.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&disableNewRelic, "disable-newrelic", false, "Disable New Relic monitoring")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "Server port (overrides config file)")
	serveCmd.Flags().IntVar(&gracefulTimeout, "graceful-timeout", 30, "Graceful shutdown timeout in seconds")
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Run database migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	if serverPort > 0 {
		cfg.Server.Port = serverPort
	}

	issuer, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return errors.Wrap(err, "auth.jwt_secret (or JWT_SECRET) must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"port":             cfg.Server.Port,
		"detail_mode":      cfg.Routes.DetailMode,
		"redis_enabled":    cfg.Redis.Enabled,
		"newrelic_enabled": cfg.NewRelic.Enabled && !disableNewRelic,
	}).Info("Initializing service components...")

	db, err := connectWithRetry(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing database connection...")
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Error closing database connection")
		}
	}()

	if migrateOnStart {
		log.Info("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
	}

	detailCache := cache.NewNoopRouteDetailCache()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.WithError(err).Warn("Failed to connect to Redis, continuing without route detail cache")
		} else {
			defer redisClient.Close()
			detailCache = cache.NewRouteDetailCache(redisClient, cfg.Redis.TTL, log)
		}
	}

	sbClient, err := messaging.NewServiceBusClient(cfg.ServiceBus, "impulso-api", log)
	if err != nil {
		return errors.Wrap(err, "failed to connect to Azure Service Bus")
	}
	defer func() {
		if err := sbClient.Close(); err != nil {
			log.WithError(err).Error("Error closing messaging connection")
		}
	}()

	if disableNewRelic {
		cfg.NewRelic.Enabled = false
	}
	nrApp, err := telemetry.InitNewRelic(cfg.NewRelic, log)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize New Relic")
	}
	if nrApp != nil {
		defer nrApp.Shutdown(5 * time.Second)
	}

	svc, err := service.New(service.Config{
		Repository: repository.NewRepository(db),
		Issuer:     issuer,
		Cache:      detailCache,
		Publisher:  messaging.NewPublisher(sbClient, log),
		Logger:     log,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize services")
	}

	server := api.NewServer(cfg, log, nrApp, svc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(gracefulTimeout)*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "server error")
	}

	log.Info("Server shutdown complete")
	return nil
}

// connectWithRetry opens the database, backing off between attempts
func connectWithRetry(cfg config.DatabaseConfig) (database.DB, error) {
	var (
		db  database.DB
		err error
	)
	maxRetries := 5
	retryInterval := time.Second

	for i := 0; i < maxRetries; i++ {
		log.WithField("attempt", i+1).Info("Connecting to database...")
		db, err = database.Connect(cfg)
		if err == nil {
			log.Info("Successfully connected to database")
			return db, nil
		}

		log.WithError(err).WithFields(logrus.Fields{
			"retry_attempt": i + 1,
			"max_retries":   maxRetries,
		}).Error("Failed to connect to database, retrying...")

		if i < maxRetries-1 {
			time.Sleep(retryInterval)
			retryInterval *= 2
		}
	}

	return nil, errors.Wrapf(err, "failed to connect to database after %d attempts", maxRetries)
}
