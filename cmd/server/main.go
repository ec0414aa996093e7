package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/notes-backend/internal/api"
	notesapi "github.com/evgeniy-krivenko/notes-backend/internal/api/notes"
	usersapi "github.com/evgeniy-krivenko/notes-backend/internal/api/users"
	"github.com/evgeniy-krivenko/notes-backend/internal/config"
	"github.com/evgeniy-krivenko/notes-backend/internal/repository"
	"github.com/evgeniy-krivenko/notes-backend/internal/repository/migrations"
	"github.com/evgeniy-krivenko/notes-backend/internal/usecase/notes"
	"github.com/evgeniy-krivenko/notes-backend/internal/usecase/users"
	"github.com/evgeniy-krivenko/notes-backend/pkg/database"
	"github.com/evgeniy-krivenko/notes-backend/pkg/gwserver"
	"github.com/evgeniy-krivenko/notes-backend/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/notes-backend/pkg/metrics"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return err
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		net.JoinHostPort(cfg.Database.Host, cfg.Database.Port),
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		database.WithRetryAttempts(cfg.Database.RetryAttempts),
		database.WithMaxConns(cfg.Database.MaxConns),
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("connect to database: %v", err)
	}

	db := database.NewDatabase(pool)
	defer db.Close()

	if cfg.App.Migrate {
		if err := db.Migrate(ctx, migrations.FS, "."); err != nil {
			return fmt.Errorf("migrate database: %v", err)
		}
	}

	repo := repository.New(db)

	usersUC, err := users.New(users.NewOptions(repo, db))
	if err != nil {
		return fmt.Errorf("init users usecase: %v", err)
	}

	notesUC, err := notes.New(notes.NewOptions(repo, db))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	handler, err := api.NewRouter(api.NewOptions(
		cfg.HTTP.AllowedOrigins,
		metrics.New("notes"),
		api.WithServices(usersapi.New(usersUC), notesapi.New(notesUC)),
		api.WithDb(db),
	))
	if err != nil {
		return fmt.Errorf("init router: %v", err)
	}

	srv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		handler,
		gwserver.WithMiddlewares(api.RequestMiddlewares()...),
		gwserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	slogx.Info(ctx, "app stopped")

	return nil
}
