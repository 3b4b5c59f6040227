package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shatel-registry/config"
	"shatel-registry/models"
)

// setupTestDB points config.DB at a fresh in-memory store. A single open
// connection keeps every statement on the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Service{}))

	config.DB = db
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:         "Ali",
		Family:       "Rezaei",
		FatherName:   "Hossein",
		NationalID:   "0012345678",
		ShenasnameID: "4321",
		BirthDate:    time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
		Address:      "Tehran, Valiasr St.",
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}
