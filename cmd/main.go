package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"expense_tracker/internal/config"
	"expense_tracker/internal/handlers"
	"expense_tracker/internal/logger"
	"expense_tracker/internal/repository"
	"expense_tracker/internal/repository/db"
	"expense_tracker/internal/server"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

//go:generate swag init -g main.go -d ./,../internal/handlers,../internal/models -o ../docs

// @title                       Expense Tracker API
// @version                     1.0
// @description                 Personal expense tracking: register, log in, record and query expenses.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml + .env + EXPENSES_* env
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Errorw("server stopped with error", "err", err)
		os.Exit(1)
	}
	log.Infow("server stopped")
}

func run(cfg *config.Config, log *logger.Logger) error {
	// open DB and apply migrations
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()
	log.Infow("database ready", "path", cfg.DB.Path)

	// wire dependencies
	gin.SetMode(cfg.GinMode)
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Deps{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	apiHandler := handlers.NewHandler(services, log)

	srv := server.New(server.Config{
		Port:              cfg.Port,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}, apiHandler.InitRoutes())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("http server listening", "addr", srv.Addr())
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server...")

		// allow in-flight requests to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
