package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"farmtrack/database"
	"farmtrack/entities"
)

// readDB reads the crop_records table of a SQLite file or Postgres database.
func readDB(ctx context.Context, dsn string) ([]entities.CropRecord, error) {
	if !database.IsPostgres(dsn) {
		// opening a missing file would silently create an empty database
		if _, err := os.Stat(dsn); err != nil {
			return nil, err
		}
	}
	db, err := database.Open(dsn)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	if !database.HasCropTable(db) {
		return nil, errors.New("no crop_records table")
	}
	var recs []entities.CropRecord
	if err := db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("query crop_records: %w", err)
	}
	return recs, nil
}

// WriteSQLite stores records as a SQLite seed file, replacing any
// crop_records table already in it.
func WriteSQLite(ctx context.Context, path string, recs []entities.CropRecord) error {
	db, err := database.Open(path)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if database.HasCropTable(db) {
		if err := db.Migrator().DropTable(&entities.CropRecord{}); err != nil {
			return fmt.Errorf("drop crop_records: %w", err)
		}
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	if len(recs) == 0 {
		return nil
	}
	rows := make([]entities.CropRecord, len(recs))
	for i, r := range recs {
		rows[i] = r.Clone()
	}
	if err := db.WithContext(ctx).CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("insert crop_records: %w", err)
	}
	return nil
}
