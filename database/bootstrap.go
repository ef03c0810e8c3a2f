// database/bootstrap.go
package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"farmtrack/entities"
)

// IsPostgres reports whether dsn is a Postgres URL rather than a SQLite path.
func IsPostgres(dsn string) bool {
	d := strings.ToLower(dsn)
	return strings.HasPrefix(d, "postgres://") || strings.HasPrefix(d, "postgresql://")
}

// Open connects to a Postgres URL or opens (creating if needed) a SQLite file.
func Open(dsn string) (*gorm.DB, error) {
	dialector := sqlite.Open(dsn)
	if IsPostgres(dsn) {
		dialector = postgres.Open(dsn)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the crop_records table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.CropRecord{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// HasCropTable reports whether the crop_records table exists.
func HasCropTable(db *gorm.DB) bool {
	return db.Migrator().HasTable(&entities.CropRecord{})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
