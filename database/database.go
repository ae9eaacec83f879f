// Package database owns the gorm connection to the local sqlite store.
// File: database/database.go
package database

import (
	"go-coach-register/logger"
	"go-coach-register/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens (creating if absent) the sqlite file at path and
// runs migrations. Fatal on failure: the application cannot serve
// without its store.
func ConnectDb(path string) {
	db, err := Open(path)
	if err != nil {
		logger.Error.Fatalf("Failed to connect to sqlite store %s: %v", path, err)
	}
	Database = DbInstance{Db: db}
}

// Open opens a sqlite database at path and migrates the schema. It is
// split out from ConnectDb so tests can open throwaway stores without
// touching the global instance.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := runMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// runMigrations creates or updates the submissions and certificates
// tables. AutoMigrate is idempotent, safe on every process start.
func runMigrations(db *gorm.DB) error {
	logger.Info.Println("Running migrations...")

	if err := db.AutoMigrate(
		&models.Submission{},
		&models.Certificate{},
	); err != nil {
		return err
	}

	logger.Info.Println("Migrations completed successfully.")
	return nil
}
