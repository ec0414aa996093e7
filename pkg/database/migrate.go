package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

var errNoPool = errors.New("database is not backed by a pgx pool")

var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies every pending goose migration found in dir of fsys.
func (db *Database) Migrate(ctx context.Context, fsys fs.FS, dir string) error {
	p, ok := db.p.(*pgxpool.Pool)
	if !ok {
		return fmt.Errorf("apply migrations: %w", errNoPool)
	}

	sqlDB := stdlib.OpenDBFromPool(p)
	defer sqlDB.Close()

	return migrate(ctx, sqlDB, fsys, dir)
}

func migrate(ctx context.Context, sqlDB *sql.DB, fsys fs.FS, dir string) error {
	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %v", err)
	}

	if err := gooseUpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("apply migrations: %v", err)
	}

	return nil
}
