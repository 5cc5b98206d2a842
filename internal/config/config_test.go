package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "studiodesk", cfg.App.Name)
	assert.Equal(t, "127.0.0.1", cfg.Bridge.Host)
	assert.Equal(t, 8473, cfg.Bridge.Port)
	assert.Equal(t, "studio.db", cfg.Database.File)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STUDIODESK_BRIDGE_PORT", "9001")
	t.Setenv("STUDIODESK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Bridge.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDatabasePathCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := &Config{
		App:      AppCfg{Name: "studiodesk"},
		Database: DBCfg{Dir: dir, File: "studio.db"},
	}

	path, err := cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "studio.db"), path)
	assert.DirExists(t, dir)
}
