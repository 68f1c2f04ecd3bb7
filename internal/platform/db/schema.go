package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// InitSchema creates the tables for models if they do not exist yet.
// It is idempotent and must succeed before the server accepts traffic.
func InitSchema(ctx context.Context, db *gorm.DB, models ...any) error {
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
