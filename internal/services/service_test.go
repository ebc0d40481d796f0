package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"totl_backend/database"
	"totl_backend/internal/auth"
	"totl_backend/internal/config"
	"totl_backend/internal/email"
	"totl_backend/internal/models"
)

func init() {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Email.AdminEmail = "admin@totl.test"
	cfg.Workflow.FollowUpAfterDays = 3
	cfg.Workflow.BookingDefaultOffsetDays = 7
	cfg.Workflow.SlugCandidateLimit = 25
	config.AppConfig = cfg
}

// setupTestDB opens a fresh in-memory database with the full schema. Each
// test gets its own named memory store so parallel tests never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// newTestServices wires the service container over a mock email provider so
// tests can assert on notification traffic.
func newTestServices(t *testing.T, db *gorm.DB) (*ServiceContainer, *email.MockProvider) {
	t.Helper()
	provider := email.NewMockProvider()
	notifier := email.NewNotifier(provider, nil)
	return NewServiceContainer(db, notifier), provider
}

func createTestUser(t *testing.T, db *gorm.DB, emailAddr string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         role,
		DisplayName:  "Test User",
		IsVerified:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTalent(t *testing.T, db *gorm.DB, emailAddr, name, phone string) *models.User {
	t.Helper()

	user := createTestUser(t, db, emailAddr, models.UserRoleTalent)
	profile := &models.TalentProfile{
		UserID: user.ID,
		Name:   name,
		Phone:  phone,
	}
	require.NoError(t, db.Create(profile).Error)
	return user
}

func createTestGig(t *testing.T, db *gorm.DB, clientID string, status models.GigStatus) *models.Gig {
	t.Helper()

	gig := &models.Gig{
		ClientID:     clientID,
		Title:        "Runway show",
		Compensation: "$500",
		Status:       status,
	}
	require.NoError(t, db.Create(gig).Error)
	return gig
}

func createTestApplication(t *testing.T, db *gorm.DB, gigID, talentID string, status models.ApplicationStatus) *models.Application {
	t.Helper()

	application := &models.Application{
		GigID:    gigID,
		TalentID: talentID,
		Status:   status,
	}
	require.NoError(t, db.Create(application).Error)
	return application
}

// backdate rewrites created_at, bypassing gorm's automatic timestamps.
func backdate(t *testing.T, db *gorm.DB, model interface{}, id string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Model(model).Where("id = ?", id).
		UpdateColumn("created_at", createdAt).Error)
}
