package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestOptions_ConnString(t *testing.T) {
	t.Parallel()

	opts := Options{
		Username: "plotmarket",
		Password: "secret",
		Host:     "db.internal",
		Port:     6432,
		Database: "market",
		SslMode:  "disable",
	}

	cfg, err := pgxpool.ParseConfig(opts.connString())
	require.NoError(t, err)
	require.Equal(t, "db.internal", cfg.ConnConfig.Host)
	require.Equal(t, uint16(6432), cfg.ConnConfig.Port)
	require.Equal(t, "plotmarket", cfg.ConnConfig.User)
	require.Equal(t, "secret", cfg.ConnConfig.Password)
	require.Equal(t, "market", cfg.ConnConfig.Database)
	require.Nil(t, cfg.ConnConfig.TLSConfig)
}

func TestOptions_ApplyPool(t *testing.T) {
	t.Parallel()

	cfg, err := pgxpool.ParseConfig(Options{Host: "localhost", Port: 5432}.connString())
	require.NoError(t, err)
	maxConns, lifetime := cfg.MaxConns, cfg.MaxConnLifetime

	Options{}.applyPool(cfg)
	require.Equal(t, maxConns, cfg.MaxConns)
	require.Equal(t, lifetime, cfg.MaxConnLifetime)

	Options{MaxOpenConnections: 12, MaxIdleConnections: 3, ConnMaxLifetime: time.Minute}.applyPool(cfg)
	require.Equal(t, int32(12), cfg.MaxConns)
	require.Equal(t, int32(3), cfg.MinConns)
	require.Equal(t, time.Minute, cfg.MaxConnLifetime)
}
