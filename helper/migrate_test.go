package helper_test

import (
	"net/url"
	"testing"
	"todomac/config"
	"todomac/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.ConnectTimeoutSeconds = 1
	cfg.DB.Postgres.Write = config.PostgresConnection{
		Host:     "localhost",
		Port:     "5432",
		Username: "app_user",
		Password: "app_pwd_to_change",
		Name:     "app_db",
		SSLMode:  "disable",
	}

	raw, err := helper.MigrationURL(cfg)
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "localhost:5432", parsed.Host)
	assert.Equal(t, "/app_db", parsed.Path)
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
}
