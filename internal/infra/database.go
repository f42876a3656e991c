package infra

import (
	"fmt"

	"distribuidora/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update the four catalog tables. TranslateError is enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey and the services
// can map them to the same conflict errors their pre-checks produce.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
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
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema: tables, unique indexes (nombre,
// clave, the producto-proveedor pair) and foreign keys with their
// RESTRICT/CASCADE behavior.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.TipoProducto{},
		&model.Proveedor{},
		&model.Producto{},
		&model.ProductoProveedor{},
	)
}
