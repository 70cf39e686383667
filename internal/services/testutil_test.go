// internal/services/testutil_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/motorinci/motorinci-api/internal/config"
	"github.com/motorinci/motorinci-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A fresh connection would see an empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Category{},
		&models.Color{},
		&models.FeatureItem{},
		&models.SpecificationGroup{},
		&models.SpecificationItem{},
		&models.Motor{},
		&models.AvailableColor{},
		&models.MotorFeature{},
		&models.MotorSpecification{},
		&models.MotorImage{},
		&models.Review{},
		&models.GenerationTask{},
	))

	return db
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
		Storage: config.StorageConfig{
			LocalPath: t.TempDir(),
			BaseURL:   "http://localhost:8080/uploads",
		},
		AI: config.AIConfig{
			OpenRouterBaseURL: "http://localhost:9999",
			GeminiBaseURL:     "http://localhost:9999",
			RequestTimeout:    2,
		},
		Google: config.GoogleSearchConfig{
			DownloadUA:     "test-agent",
			RequestTimeout: 2,
		},
		Webhook: config.WebhookConfig{Secret: "test-webhook-secret"},
	}
}

func newTestStorage(t *testing.T) *StorageService {
	t.Helper()

	storage, err := NewStorageService(newTestConfig(t))
	require.NoError(t, err)
	return storage
}

// seedCatalog inserts one row of each master entity and returns the brand
// and category most fixtures hang off of.
func seedCatalog(t *testing.T, db *gorm.DB) (models.Brand, models.Category) {
	t.Helper()

	brand := models.Brand{Name: "Honda"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Name: "Sport Bike"}
	require.NoError(t, db.Create(&category).Error)
	return brand, category
}

func seedMotor(t *testing.T, db *gorm.DB, brand models.Brand, category models.Category, name string) models.Motor {
	t.Helper()

	motor := models.Motor{
		Name:       name,
		BrandID:    brand.ID,
		CategoryID: category.ID,
		YearModel:  2023,
		EngineCC:   155,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&motor).Error)
	return motor
}
