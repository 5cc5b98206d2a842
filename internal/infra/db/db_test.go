package db

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/studiodesk-io/studiodesk/internal/config"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
)

func openTest(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studio_test.db")
	d, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?_fk=1", path)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return d
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	d := openTest(t)
	log := zap.NewNop()

	require.NoError(t, EnsureSchema(d, log))

	// data written between runs must survive the second run untouched
	c := model.Client{Name: "Anna", Type: model.ClientTypeLead}
	require.NoError(t, d.Create(&c).Error)

	require.NoError(t, EnsureSchema(d, log))

	var count int64
	require.NoError(t, d.Model(&model.Client{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var got model.Client
	require.NoError(t, d.First(&got, c.ID).Error)
	assert.Equal(t, "Anna", got.Name)
}

func TestEnsureSchemaCreatesAllTables(t *testing.T) {
	d := openTest(t)
	require.NoError(t, EnsureSchema(d, zap.NewNop()))

	for _, table := range []string{
		"clients", "projects", "tasks", "checklist_items",
		"transactions", "equipment", "team_members", "calendar_events",
	} {
		assert.True(t, d.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestEnsureSchemaBackfillsLaterColumns(t *testing.T) {
	d := openTest(t)
	log := zap.NewNop()

	// a store created before the checkout columns shipped
	require.NoError(t, d.Exec(`CREATE TABLE equipment (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		serial_number TEXT,
		purchase_date DATETIME,
		"condition" TEXT,
		status TEXT NOT NULL DEFAULT 'available',
		checked_out_to INTEGER,
		created_at DATETIME
	)`).Error)

	require.NoError(t, EnsureSchema(d, log))

	for _, col := range []string{"ShutterCount", "MaxShutterLife", "CheckedOutDate"} {
		assert.True(t, d.Migrator().HasColumn(&model.Equipment{}, col), "missing column %s", col)
	}
}

func TestOpenCreatesStoreFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		App:      config.AppCfg{Name: "studiodesk"},
		Database: config.DBCfg{Dir: dir, File: "studio.db", AutoMigrate: true},
	}

	d, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, Close(d)) }()

	assert.True(t, d.Migrator().HasTable("clients"))
	assert.FileExists(t, filepath.Join(dir, "studio.db"))
}

func TestForeignKeysEnforced(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		App:      config.AppCfg{Name: "studiodesk"},
		Database: config.DBCfg{Dir: dir, File: "studio.db", AutoMigrate: true},
	}
	d, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	defer Close(d)

	// a task pointing at a project that does not exist must be rejected
	err = d.Create(&model.ProjectTask{ProjectID: 9999, Title: "orphan"}).Error
	assert.Error(t, err)
}
