// Package gormdb adapts a GORM client to the query.Querier and
// query.Beginner interfaces, for applications that already carry a GORM
// connection and want the result-oriented query layer on top of it.
//
// The adapter only uses GORM's raw SQL surface (Raw, Exec, Begin); no model
// mapping is involved. Statement parameters use @Name placeholders, resolved
// through GORM named arguments.
//
// GORM's TranslateError option must stay disabled: it would replace driver
// errors with GORM sentinels before the sqlerr classifier can inspect them.
// NewDB opens connections with it off.
package gormdb

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Connection        Connection
	ConnectionDetails ConnectionDetails
}

type Connection struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
	SSLMode  string
}

type ConnectionDetails struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB is a GORM-backed database adapter.
type DB struct {
	client *gorm.DB
}

// NewDB connects to PostgreSQL via GORM with the provided configuration and
// configures the connection pool.
//
// Returns *DB concrete type (following Go best practice: "accept interfaces,
// return structs").
func NewDB(cfg Config) (*DB, error) {
	client, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("error in connecting to postgres via gorm: %w", err)
	}
	return &DB{client: client}, nil
}

// NewDBFromClient wraps an existing GORM client. The client must not have
// TranslateError enabled.
func NewDBFromClient(client *gorm.DB) *DB {
	return &DB{client: client}
}

// connect establishes the GORM connection and sets the pool parameters,
// applying package defaults for unset values.
func connect(cfg Config) (*gorm.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Connection.Host,
		cfg.Connection.Port,
		cfg.Connection.User,
		cfg.Connection.Password,
		cfg.Connection.DbName,
		cfg.Connection.SSLMode)

	client, err := gorm.Open(
		postgres.Open(connStr),
		&gorm.Config{
			// Raw driver errors must reach the constraint classifier.
			TranslateError: false,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	instance, err := client.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgreSQL database instance: %w", err)
	}

	maxOpen := cfg.ConnectionDetails.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 50
	}
	maxIdle := cfg.ConnectionDetails.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 25
	}
	maxLifetime := cfg.ConnectionDetails.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = 1 * time.Minute
	}

	instance.SetMaxOpenConns(maxOpen)
	instance.SetMaxIdleConns(maxIdle)
	instance.SetConnMaxLifetime(maxLifetime)

	return client, nil
}

// Client returns the underlying GORM client for cases where direct access
// is needed.
func (d *DB) Client() *gorm.DB {
	return d.client
}

// GracefulShutdown closes the underlying connection pool.
func (d *DB) GracefulShutdown() error {
	instance, err := d.client.DB()
	if err != nil {
		return err
	}
	return instance.Close()
}
