package services

import (
	"charityhub/database"
	"charityhub/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. A single connection keeps
// the memory store alive for the test's lifetime and serializes writers.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	database.RunMigrations(db)
	return db
}

func createAdmin(t *testing.T, db *gorm.DB) Identity {
	t.Helper()

	user := models.User{
		Username:   "admin",
		Email:      "admin@example.com",
		Password:   "hashed",
		Role:       models.RoleAdmin,
		IsApproved: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return Identity{UserID: user.ID, Role: models.RoleAdmin}
}

func createNGO(t *testing.T, db *gorm.DB, name string, approved bool) (Identity, *models.NGOProfile) {
	t.Helper()

	user := models.User{
		Username:   name,
		Email:      name + "@example.com",
		Password:   "hashed",
		Role:       models.RoleNGO,
		IsApproved: approved,
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.NGOProfile{
		UserID:           user.ID,
		OrganizationName: name + " Org",
		ContactPerson:    "Contact " + name,
	}
	require.NoError(t, db.Create(&profile).Error)

	return Identity{UserID: user.ID, Role: models.RoleNGO}, &profile
}

func createDonor(t *testing.T, db *gorm.DB, name string) (Identity, *models.DonorProfile) {
	t.Helper()

	user := models.User{
		Username:   name,
		Email:      name + "@example.com",
		Password:   "hashed",
		Role:       models.RoleDonor,
		IsApproved: true,
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.DonorProfile{
		UserID:    user.ID,
		FirstName: name,
	}
	require.NoError(t, db.Create(&profile).Error)

	return Identity{UserID: user.ID, Role: models.RoleDonor}, &profile
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func createRequest(t *testing.T, db *gorm.DB, ngo *models.NGOProfile, category *models.Category, amountNeeded float64, status models.RequestStatus) *models.DonationRequest {
	t.Helper()

	request := models.DonationRequest{
		NGOID:        ngo.ID,
		CategoryID:   category.ID,
		Title:        "Test request",
		Description:  "Test description",
		AmountNeeded: amountNeeded,
		Status:       status,
	}
	require.NoError(t, db.Create(&request).Error)
	return &request
}
