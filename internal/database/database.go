package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Role partitions every private entity between the two organizations.
// It is the sole multi-tenancy mechanism: both organizations share one
// table per entity type, distinguished only by this tag.
type Role string

const (
	RoleOSIS Role = "OSIS"
	RoleMPK  Role = "MPK"
)

// ParseRole validates a client-supplied role value. Only public question
// submission may carry a role in the request body; everything else takes
// the role from the verified token.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOSIS, RoleMPK:
		return Role(s), nil
	default:
		return "", fmt.Errorf("database: unknown role %q", s)
	}
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrProkerNotFound  = errors.New("proker not found")
	ErrBeritaNotFound  = errors.New("berita not found")
	ErrQnaNotFound     = errors.New("qna not found")
	ErrSettingNotFound = errors.New("setting not found")
	ErrDuplicateNISN   = errors.New("nisn already registered")
)

type Database struct {
	Pool *pgxpool.Pool

	connString string
}

func NewDatabase() Database {
	return Database{}
}

func (db *Database) Connect(ctx context.Context, connString string) error {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return fmt.Errorf("database: unable to parse configuration: %w", err)
	}

	db.Pool, err = pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("database: unable to create pool: %w", err)
	}

	if err := db.Pool.Ping(ctx); err != nil {
		db.Pool.Close()
		return fmt.Errorf("database: unable to ping: %w", err)
	}

	db.connString = connString
	return nil
}

func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Migrate applies all pending embedded migrations.
func (db *Database) Migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("database: failed to load embedded migrations: %w", err)
	}

	// golang-migrate selects its driver by URL scheme.
	url := "pgx5://" + strings.TrimPrefix(db.connString, "postgres://")

	m, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return fmt.Errorf("database: failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("database: failed to apply migrations: %w", err)
	}

	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return fmt.Errorf("database: failed to close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("database: failed to close migration connection: %w", dbErr)
	}

	return nil
}
