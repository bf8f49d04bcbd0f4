package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps the shared in-memory sqlite database used by the feature suite.
// The models map is keyed by table name so steps can assert row counts.
type Db struct {
	Conn   *gorm.DB
	models map[string]any
}

// NewDb opens the singleton test database and migrates the given models.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := conn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{Conn: conn, models: models}
}

// Reset deletes every row from all registered tables.
func (d *Db) Reset() error {
	for table, model := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to reset table %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
