package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"totl_backend/internal/email"
	"totl_backend/internal/models"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

func TestRegisterCreatesTalent(t *testing.T) {
	db := setupTestDB(t)
	svc, provider := newTestServices(t, db)

	resp, err := svc.Auth.Register(&dto.RegisterRequest{
		Email:       "new@totl.test",
		Password:    "password123",
		DisplayName: "New Talent",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserRoleTalent, resp.User.Role)

	// The profile row comes along with the account.
	var profile models.TalentProfile
	require.NoError(t, db.First(&profile, "user_id = ?", resp.User.ID).Error)
	assert.Equal(t, "New Talent", profile.Name)

	assert.Equal(t, 1, provider.CountTemplate(email.TemplateWelcome))

	_, err = svc.Auth.Register(&dto.RegisterRequest{
		Email:       "new@totl.test",
		Password:    "password123",
		DisplayName: "Duplicate",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	user := createTestUser(t, db, "talent@totl.test", models.UserRoleTalent)

	resp, err := svc.Auth.Login(&dto.LoginRequest{Email: "talent@totl.test", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = svc.Auth.Login(&dto.LoginRequest{Email: "talent@totl.test", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Auth.Login(&dto.LoginRequest{Email: "ghost@totl.test", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginSuspendedAccountBlocked(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	user := createTestUser(t, db, "talent@totl.test", models.UserRoleTalent)
	require.NoError(t, db.Model(user).Update("suspended", true).Error)

	_, err := svc.Auth.Login(&dto.LoginRequest{Email: "talent@totl.test", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountSuspended)
}
