package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajju-1209/hostel-management/internal/domain/models"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"
)

func TestNewConnectionPool_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "hostel.db")}

	pool, err := NewConnectionPool(cfg)
	require.NoError(t, err)
	defer pool.Close()

	assert.Equal(t, 1, pool.MaxOpenConns)
	require.NoError(t, pool.HealthCheck(context.Background()))

	stats, err := pool.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats["max_open_connections"])
}

func TestNewConnectionPool_UnknownDriver(t *testing.T) {
	_, err := NewConnectionPool(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "hostel.db")}
	pool, err := NewConnectionPool(cfg)
	require.NoError(t, err)
	defer pool.Close()
	db := pool.GetDB()

	require.NoError(t, Migrate(db, "auto"))
	for _, m := range allModels() {
		assert.True(t, db.Migrator().HasTable(m))
	}

	require.NoError(t, db.Create(&models.StandardDescription{IssueType: "plumbing", Description: "Tap is leaking"}).Error)

	// drop 模式会清空数据
	require.NoError(t, Migrate(db, "drop"))
	var count int64
	require.NoError(t, db.Model(&models.StandardDescription{}).Count(&count).Error)
	assert.Zero(t, count)
}
