package infra

import (
	"fmt"

	"github.com/sofibear01/MantenimientoProducto/internal/config"
	"github.com/sofibear01/MantenimientoProducto/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, tunes the pool and
// runs AutoMigrate for both tables. TranslateError turns Postgres SQLSTATE
// 23505/23503 into gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated so the
// service layer can match them with errors.Is.
//
// The FK from Product.category_product_id carries no cascade: deleting a
// referenced category is rejected by the store, which is the intended policy.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates both tables. The category table goes first so
// the product FK has something to point at on a fresh database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.ProductCategory{}, &model.Product{}); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return nil
}
