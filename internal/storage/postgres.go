package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const checkDatabaseExist = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`

// Database - пул соединений с PostgreSQL и параметры подключения
type Database struct {
	Pool   *pgxpool.Pool
	Config *pgx.ConnConfig
	DSN    string
}

// Создание хранилища
func NewDatabase(dsn string) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return &Database{Pool: pool, Config: cfg.ConnConfig, DSN: dsn}, nil
}

// Initialize - подготовка хранилища: создание БД при необходимости
// и прогон миграций
func (s *Database) Initialize(ctx context.Context) error {
	if err := s.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("error create database: %w", err)
	}
	if err := s.migrate(); err != nil {
		return fmt.Errorf("error migrate database: %w", err)
	}
	return nil
}

// migrate - применение встроенных goose-миграций.
// goose работает через database/sql, поэтому открывается
// отдельное соединение поверх pgx/stdlib.
func (s *Database) migrate() error {
	db, err := sql.Open("pgx", s.DSN)
	if err != nil {
		return fmt.Errorf("open db error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect error: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose run migrations error: %w", err)
	}
	return nil
}

// ensureDatabase - goose не умеет создавать БД: если подключение по DSN
// не удалось, пробуем через служебную БД postgres создать целевую
func (s *Database) ensureDatabase(ctx context.Context) error {
	conn, err := pgx.ConnectConfig(ctx, s.Config)
	if err == nil {
		return conn.Close(ctx)
	}

	cfg := s.Config.Copy()
	cfg.Database = `postgres`
	conn, err = pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer conn.Close(ctx)

	var exist bool
	if err := conn.QueryRow(ctx, checkDatabaseExist, s.Config.Database).Scan(&exist); err != nil {
		return fmt.Errorf("failed to check database exists: %w", err)
	}
	if !exist {
		if _, err := conn.Exec(ctx, fmt.Sprintf(`CREATE DATABASE %s`, s.Config.Database)); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}
	return nil
}

func (s *Database) Close() error {
	s.Pool.Close()
	return nil
}
