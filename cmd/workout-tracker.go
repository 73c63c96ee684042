package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/maya-clifford/final-case/pkg/config"
	"github.com/maya-clifford/final-case/pkg/domain"
	"github.com/maya-clifford/final-case/pkg/logger"
	"github.com/maya-clifford/final-case/pkg/server"
	"github.com/maya-clifford/final-case/pkg/storage"
	"github.com/maya-clifford/final-case/pkg/storage/mongostore"
)

func main() {
	cfg := config.Load()

	// Command line flags override the environment
	var (
		host     = flag.String("host", cfg.Host, "Bind host")
		port     = flag.Int("port", cfg.Port, "Server port")
		driver   = flag.String("store", cfg.StoreDriver, "Storage driver: mongo or memory")
		showHelp = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nworkout-tracker is a REST API for logging workouts and querying stats.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # MongoDB at MONGO_URI\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -store memory -port 9090          # No database needed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nWith -store memory, set DATA_FILE and SAVE_INTERVAL to keep data between runs.\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	cfg.Host = *host
	cfg.Port = *port
	cfg.StoreDriver = *driver

	log := logger.New(cfg.LogLevel)

	store, err := openStore(cfg, log)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.StoreDriver).Fatal("failed to open store")
	}

	srv := server.NewServer(store, server.Options{
		StaticDir:  cfg.StaticDir,
		CORSOrigin: cfg.CORSOrigin,
	}, log)

	httpServer := server.NewHTTPServer(server.HTTPConfig{
		Address:      cfg.Address(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, srv.Router())

	// Start server in a goroutine
	go func() {
		log.WithFields(logrus.Fields{
			"address": cfg.Address(),
			"driver":  cfg.StoreDriver,
		}).Info("workout-tracker listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}

	if err := store.Close(ctx); err != nil {
		log.WithError(err).Error("failed to close store")
	}

	log.Info("server exited")
}

// openStore builds the storage gateway selected by cfg.StoreDriver.
func openStore(cfg config.Config, log *logrus.Logger) (domain.WorkoutStore, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		return mongostore.Connect(context.Background(), mongostore.Options{
			URI:            cfg.MongoURI,
			Database:       cfg.DatabaseName,
			ConnectTimeout: cfg.MongoConnectTimeout,
			Logger:         log,
		})
	case config.DriverMemory:
		options := []storage.StorageOption{storage.WithLogger(log)}
		if cfg.DataFile != "" {
			options = append(options, storage.WithDataFile(cfg.DataFile))
		}
		if cfg.SaveInterval > 0 {
			options = append(options, storage.WithBackgroundSave(cfg.SaveInterval))
		} else if cfg.DataFile != "" {
			log.Warn("background save disabled, data only saved on graceful shutdown")
		}

		engine := storage.NewStorageEngine(options...)
		if cfg.DataFile != "" {
			if err := engine.LoadFromFile(cfg.DataFile); err != nil {
				return nil, err
			}
		}
		engine.StartBackgroundWorkers()
		return engine, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
