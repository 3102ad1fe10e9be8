package services

import (
	"path/filepath"
	"testing"

	"github.com/sibyct/timesheet/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.ClientProject{},
		&models.TimesheetEntry{},
	)
	require.NoError(t, err)

	return gdb
}

func createEmployee(t *testing.T, gdb *gorm.DB, userID int, username string) models.User {
	t.Helper()

	user := models.User{
		UserID:    userID,
		Username:  username,
		Password:  "not-a-real-hash",
		Role:      models.RoleEmployee,
		FirstName: "Test",
	}
	require.NoError(t, gdb.Create(&user).Error)

	return user
}
