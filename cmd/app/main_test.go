package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pod/cmd"
	"pod/internal/adapters/out/postgres/pgtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_ReturnsOpenError(t *testing.T) {
	cfg := cmd.Config{
		DBHost:      "127.0.0.1",
		DBPort:      "1",
		DBUser:      "pod",
		DBName:      "pod",
		DBSslMode:   "disable",
		JWTSecret:   "secret",
		JWTTTL:      time.Hour,
		ReportStore: cmd.ReportStorePostgres,
	}

	err := run(t.Context(), cfg, discardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open storage")
}

func TestRun_ReleasesConnectionsWhenStartupFails(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := t.Context()

	container, db, err := pgtest.Start(ctx)
	if container != nil {
		t.Cleanup(func() { _ = container.Terminate(ctx) })
	}
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	backends := func() int64 {
		var n int64
		require.NoError(t, db.Raw(
			"SELECT count(*) FROM pg_stat_activity WHERE datname = current_database() AND pid <> pg_backend_pid()",
		).Scan(&n).Error)
		return n
	}
	before := backends()

	cfg := cmd.Config{
		DBHost:            host,
		DBPort:            port.Port(),
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBName:            "testdb",
		DBSslMode:         "disable",
		JWTSecret:         "secret",
		JWTTTL:            time.Hour,
		ReportStore:       cmd.ReportStorePostgres,
		DSRCron:           "not a schedule",
		SeedAdminPassword: "admin123",
	}

	err = run(ctx, cfg, discardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start jobs")
	assert.Eventually(t, func() bool { return backends() <= before },
		5*time.Second, 100*time.Millisecond, "storage handles stay open after run returned")
}
