package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense_manager/internal/handlers"
	"expense_manager/internal/logger"
	"expense_manager/internal/repository"
	"expense_manager/internal/repository/db"
	"expense_manager/internal/server"
	"expense_manager/internal/service"

	"github.com/spf13/viper"
)

const defaultDBFile = "expense_manager.db"

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	store, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(store)
	services := service.NewService(repos, serviceConfig(log))
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", defaultDBFile)
		dbPath = defaultDBFile
	}
	return db.InitDB(dbPath)
}

// serviceConfig extracts the auth knobs from config.
func serviceConfig(log *logger.Logger) service.Config {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		log.Fatalw("auth.signing_key must be set in config")
	}
	ttlHours := viper.GetInt("auth.token_ttl_hours")
	if ttlHours < 0 {
		log.Fatalw("auth.token_ttl_hours must not be negative", "value", ttlHours)
	}
	return service.Config{
		SigningKey: key,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
