package services

import (
	"testing"

	"backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// the in-memory database lives on a single connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Food{}, &models.Record{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func seedFood(t *testing.T, db *gorm.DB, name string, calories float64) *models.Food {
	t.Helper()

	food := &models.Food{
		Name:        name,
		Calories:    calories,
		ServingSize: models.DefaultServingSize,
		Source:      models.SourceUser,
		IsPublic:    true,
	}
	if err := db.Create(food).Error; err != nil {
		t.Fatalf("seed food %q: %v", name, err)
	}
	return food
}
