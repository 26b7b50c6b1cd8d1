package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
	"todomac/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 2
	postgresConnMaxIdleTime   = 5 * time.Minute
)

// Handle is the statement surface the repositories use. Both *sqlx.DB and *sqlx.Tx satisfy it.
type Handle interface {
	sqlx.ExtContext
}

// Connection holds the read and write pools. They may point at the same database.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools. Startup fails when either database is unreachable.
func New(cfg *config.Config) (*Connection, error) {
	ctx := context.Background()

	read, err := Connect(ctx, "read", cfg.DB.Postgres.Read, cfg)
	if err != nil {
		return nil, err
	}

	write, err := Connect(ctx, "write", cfg.DB.Postgres.Write, cfg)
	if err != nil {
		if closeErr := read.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed closing read pool")
		}

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

// NewFromDB uses one pool for reads and writes.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}

func (c *Connection) Close() error {
	var firstErr error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing postgres pool: %w", err)
		}

		if c.Read == c.Write {
			break
		}
	}

	return firstErr
}

// DSN builds a lib/pq URL. connect_timeout bounds how long a new pool connection may take.
func DSN(conn config.PostgresConnection, connectTimeoutSeconds int) string {
	query := url.Values{}
	query.Set("sslmode", conn.SSLMode)

	if connectTimeoutSeconds > 0 {
		query.Set("connect_timeout", strconv.Itoa(connectTimeoutSeconds))
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(conn.Username, conn.Password),
		Host:     net.JoinHostPort(conn.Host, conn.Port),
		Path:     "/" + conn.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Connect retries up to MaxRetry times, waiting RetryWaitTime seconds between attempts.
func Connect(ctx context.Context, name string, conn config.PostgresConnection, cfg *config.Config) (*sqlx.DB, error) {
	pg := cfg.DB.Postgres
	descriptor := DSN(conn, pg.ConnectTimeoutSeconds)

	maxRetry := max(pg.MaxRetry, 1)

	var lastErr error

	for retry := range maxRetry {
		sqlDB, err := sqlx.ConnectContext(ctx, driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", conn.Host).
				Str("port", conn.Port).
				Str("dbName", conn.Name).
				Msg("Connected to database")

			sqlDB.SetMaxOpenConns(max(pg.MaxOpenConnection, 1))
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetConnMaxIdleTime(postgresConnMaxIdleTime)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", conn.Host).
			Str("port", conn.Port).
			Str("dbName", conn.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database")

		if retry == maxRetry-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connecting to %s database: %w", name, ctx.Err())
		case <-time.After(time.Duration(pg.RetryWaitTime) * time.Second):
		}
	}

	return nil, fmt.Errorf("connecting to %s database after %d attempts: %w", name, maxRetry, lastErr)
}
