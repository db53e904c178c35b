package database

import (
	"fmt"
	"time"

	"soupshoppe/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var DB *gorm.DB

// InitDB opens the database connection. Dialect is "sqlite3" or "postgres";
// source is the file path or connection string.
func InitDB(dialect, source string) error {
	var err error
	DB, err = gorm.Open(dialect, source)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB.DB().SetMaxIdleConns(10)
	DB.DB().SetMaxOpenConns(100)
	DB.DB().SetConnMaxLifetime(time.Hour)

	return nil
}

// Migrate creates and updates all required tables.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.DailyMenu{},
		&models.GeneratedImage{},
		&models.SiteSetting{},
		&models.MenuSuggestion{},
		&models.DeliveryEnrollment{},
	).Error
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
