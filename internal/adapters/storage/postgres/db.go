package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"pet-boarding/internal/ports/storage"
)

var (
	ErrNotFound   = storage.ErrNotFound
	ErrBuildQuery = errors.New("build query")
)

//go:embed schema.sql
var schema string

// psql: todas las consultas con placeholders $n.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Store implementa storage.Store sobre una sola conexión pool.
type Store struct {
	db       *sql.DB
	animals  *AnimalsRepo
	bookings *BookingsRepo
	expenses *ExpensesRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		animals:  NewAnimalsRepo(db),
		bookings: NewBookingsRepo(db),
		expenses: NewExpensesRepo(db),
	}
}

func (s *Store) Animals() storage.Animals   { return s.animals }
func (s *Store) Bookings() storage.Bookings { return s.bookings }
func (s *Store) Expenses() storage.Expenses { return s.expenses }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func execOne(ctx context.Context, db *sql.DB, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
