package db

import (
	"fmt"

	"github.com/studiodesk-io/studiodesk/internal/config"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open opens (creating on first run) the single-file store under the
// application data directory. Foreign key enforcement is switched on at the
// connection level; without it SQLite ignores the declared referential
// actions.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_fk=1", path)
	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	log.Sugar().Infow("store opened", "path", path)

	if cfg.Database.AutoMigrate {
		if err := EnsureSchema(d, log); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Close releases the underlying connection. Called once at process exit.
func Close(d *gorm.DB) error {
	sqlDB, err := d.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSchema creates all tables with their constraints if absent and applies
// best-effort additive column changes for stores created by older builds.
// Safe to call on every start: table creation is idempotent and a column that
// already exists is not an error worth failing startup over.
func EnsureSchema(d *gorm.DB, log *zap.Logger) error {
	if err := d.AutoMigrate(
		&model.Client{},
		&model.TeamMember{},
		&model.Project{},
		&model.ProjectTask{},
		&model.ChecklistItem{},
		&model.Transaction{},
		&model.Equipment{},
		&model.CalendarEvent{},
	); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	// Columns added after the first shipped schema. AutoMigrate covers fresh
	// stores; this pass covers stores predating the struct fields entirely.
	additive := []struct {
		mdl   interface{}
		field string
	}{
		{&model.Client{}, "BirthDate"},
		{&model.Equipment{}, "ShutterCount"},
		{&model.Equipment{}, "MaxShutterLife"},
		{&model.Equipment{}, "CheckedOutDate"},
	}
	m := d.Migrator()
	for _, a := range additive {
		if m.HasColumn(a.mdl, a.field) {
			continue
		}
		if err := m.AddColumn(a.mdl, a.field); err != nil {
			log.Sugar().Warnw("additive migration skipped", "model", fmt.Sprintf("%T", a.mdl), "column", a.field, "err", err)
		}
	}
	return nil
}
