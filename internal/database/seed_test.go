// internal/database/seed_test.go
package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/motorinci/motorinci-api/internal/models"
)

func seedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, RunMigrations(db))
	return db
}

func TestSeedInitialData(t *testing.T) {
	db := seedTestDB(t)
	require.NoError(t, SeedInitialData(db))

	var brandCount, categoryCount, colorCount, featureCount, groupCount, itemCount int64
	db.Model(&models.Brand{}).Count(&brandCount)
	db.Model(&models.Category{}).Count(&categoryCount)
	db.Model(&models.Color{}).Count(&colorCount)
	db.Model(&models.FeatureItem{}).Count(&featureCount)
	db.Model(&models.SpecificationGroup{}).Count(&groupCount)
	db.Model(&models.SpecificationItem{}).Count(&itemCount)

	assert.Equal(t, int64(14), brandCount)
	assert.Equal(t, int64(10), categoryCount)
	assert.Equal(t, int64(8), colorCount)
	assert.Equal(t, int64(9), featureCount)
	assert.Equal(t, int64(5), groupCount)
	assert.Equal(t, int64(45), itemCount)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.NoError(t, admin.CheckPassword("admin123!@#"))
}

func TestSeedInitialDataIsIdempotent(t *testing.T) {
	db := seedTestDB(t)
	require.NoError(t, SeedInitialData(db))
	require.NoError(t, SeedInitialData(db))

	var brandCount, userCount int64
	db.Model(&models.Brand{}).Count(&brandCount)
	db.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(14), brandCount)
	assert.Equal(t, int64(1), userCount)
}
