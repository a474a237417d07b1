package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"taskhub/pkg/storage"
)

// Options holds the connection settings for the PostgreSQL backend.
type Options struct {
	// Username is the role to connect as
	Username string
	// Password authenticates the role
	Password string
	// Host is the server hostname or IP address
	Host string
	// SslMode is passed through to the driver ("disable", "require", ...)
	SslMode string
	// Port is the server port
	Port int
	// Database is the database name
	Database string
	// ConnMaxLifetime bounds how long a pooled connection may be reused
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime bounds how long a pooled connection may sit idle
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections caps the pool size
	MaxOpenConnections int
	// MaxIdleConnections is the number of connections the pool keeps warm
	MaxIdleConnections int
}

// DB is the subset of database/sql methods the query code relies on. *sql.DB
// and *sql.Tx both satisfy it, so the same repositories run inside and
// outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the slice of the goqu API used to build queries. Satisfied by
// both goqu database and transaction handles.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// PgSQL is the PostgreSQL implementation of storage.Storage, built on
// database/sql with goqu for query construction.
type PgSQL struct {
	// DB executes queries. Outside a transaction it is a *sql.DB, inside
	// one it is the *sql.Tx.
	DB DB
	// Builder constructs SQL bound to DB.
	Builder Builder
	// Pool is the pgx pool backing DB, nil for transactional handles.
	Pool *pgxpool.Pool
}

// Close releases the pgx pool and the database/sql wrapper around it.
func (p *PgSQL) Close() error {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}

	return nil
}

// Commit finishes the current transaction, or returns storage.ErrNotInTx when
// the handle is not transactional.
func (p *PgSQL) Commit() error {
	db, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := db.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction, or returns storage.ErrNotInTx when
// the handle is not transactional.
func (p *PgSQL) Rollback() error {
	db, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := db.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin opens a transaction and returns a handle scoped to it. Nested
// transactions are not supported, calling Begin on a transactional handle
// returns storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
	}, nil
}

// WithTx runs cb inside a transaction. The transaction is committed when cb
// returns nil and rolled back otherwise.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// New connects to PostgreSQL through pgxpool and wraps the pool in a
// database/sql handle so goqu and goose can share it.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}
