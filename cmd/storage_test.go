package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"uptime/internal/config"
	"uptime/pkg/logger"
	"uptime/pkg/storage/sqldb"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.Options{Environment: logger.DevelopmentEnvironment})
	m.Run()
}

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	var cfg config.Config
	cfg.Database.Driver = driverSQLite
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "uptime.db")

	return &cfg
}

func TestNewStorage_SQLite(t *testing.T) {
	ctx := context.Background()

	strg, closeStrg, err := getStorage(ctx, sqliteConfig(t))
	require.NoError(t, err)
	defer closeStrg()

	require.Equal(t, sqldb.DialectSQLite, strg.Dialect())
}

func TestNewStorage_UnknownDriver(t *testing.T) {
	var cfg config.Config
	cfg.Database.Driver = "mysql"

	_, _, err := getStorage(context.Background(), &cfg)
	require.ErrorContains(t, err, `unknown database driver "mysql"`)
}

func TestMigrateCommand(t *testing.T) {
	cfg := sqliteConfig(t)

	cmd := migrateCommand(cfg)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	// applying again is a no-op
	cmd = migrateCommand(cfg)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	cmd = migrateCommand(cfg)
	cmd.SetArgs([]string{"--down"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

func TestSweepCommand_PrintsReport(t *testing.T) {
	cfg := sqliteConfig(t)

	migrate := migrateCommand(cfg)
	migrate.SetArgs([]string{})
	require.NoError(t, migrate.ExecuteContext(context.Background()))

	var out bytes.Buffer
	cmd := sweepCommand(cfg)
	cmd.SetArgs([]string{})
	cmd.SetOut(&out)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "domains=0\trecorded=0\tunreachable=0\tskipped=0\tfailed=0\n", out.String())
}
