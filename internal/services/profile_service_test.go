package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"totl_backend/internal/models"
)

func TestContactVisibilityMatrix(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "+1-555-0101")
	otherTalent := createTestTalent(t, db, "peer@totl.test", "Ben Ford", "")
	relatedClient := createTestUser(t, db, "related@totl.test", models.UserRoleClient)
	strangerClient := createTestUser(t, db, "stranger@totl.test", models.UserRoleClient)
	admin := createTestUser(t, db, "admin@totl.test", models.UserRoleAdmin)

	// The relationship: the talent applied to the related client's gig.
	gig := createTestGig(t, db, relatedClient.ID, models.GigStatusActive)
	createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusNew)

	cases := []struct {
		name      string
		viewer    Viewer
		wantPhone bool
	}{
		{"anonymous", Viewer{}, false},
		{"other talent", Viewer{UserID: otherTalent.ID, Role: models.UserRoleTalent}, false},
		{"unrelated client", Viewer{UserID: strangerClient.ID, Role: models.UserRoleClient}, false},
		{"related client", Viewer{UserID: relatedClient.ID, Role: models.UserRoleClient}, true},
		{"admin", Viewer{UserID: admin.ID, Role: models.UserRoleAdmin}, true},
		{"self", Viewer{UserID: talent.ID, Role: models.UserRoleTalent}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := svc.Profile.GetBySlug(tc.viewer, talent.ID)
			require.NoError(t, err)
			if tc.wantPhone {
				require.NotNil(t, view.Phone)
				assert.Equal(t, "+1-555-0101", *view.Phone)
			} else {
				assert.Nil(t, view.Phone)
			}
		})
	}
}

func TestBookingAlsoGrantsContactVisibility(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "+1-555-0101")
	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	gig := createTestGig(t, db, client.ID, models.GigStatusClosed)

	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusAccepted)
	require.NoError(t, db.Create(&models.Booking{
		ApplicationID: application.ID,
		GigID:         gig.ID,
		TalentID:      talent.ID,
		ClientID:      client.ID,
		Status:        models.BookingStatusConfirmed,
	}).Error)

	ok, err := svc.Profile.CanViewContact(Viewer{UserID: client.ID, Role: models.UserRoleClient}, talent.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSlugResolution(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	talent := createTestTalent(t, db, "ava@totl.test", "Ava Stone", "")

	// By user id.
	view, err := svc.Profile.GetBySlug(Viewer{}, talent.ID)
	require.NoError(t, err)
	assert.Equal(t, talent.ID, view.UserID)

	// By name slug.
	view, err = svc.Profile.GetBySlug(Viewer{}, "ava-stone")
	require.NoError(t, err)
	assert.Equal(t, talent.ID, view.UserID)

	// Unknown slug.
	_, err = svc.Profile.GetBySlug(Viewer{}, "nobody-here")
	require.Error(t, err)
}

func TestAmbiguousSlugFailsClosed(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	first := createTestTalent(t, db, "one@totl.test", "Ava Stone", "")
	createTestTalent(t, db, "two@totl.test", "Ava  Stone", "")

	_, err := svc.Profile.GetBySlug(Viewer{}, "ava-stone")
	require.Error(t, err)

	// Direct id lookup still works for both.
	view, err := svc.Profile.GetBySlug(Viewer{}, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, view.UserID)
}

func TestSuspendedTalentHiddenFromPublic(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	admin := createTestUser(t, db, "admin@totl.test", models.UserRoleAdmin)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", talent.ID).
		Update("suspended", true).Error)

	_, err := svc.Profile.GetBySlug(Viewer{}, talent.ID)
	require.Error(t, err)

	// Admins and the owner still see it.
	_, err = svc.Profile.GetBySlug(Viewer{UserID: admin.ID, Role: models.UserRoleAdmin}, talent.ID)
	require.NoError(t, err)
	_, err = svc.Profile.GetBySlug(Viewer{UserID: talent.ID, Role: models.UserRoleTalent}, talent.ID)
	require.NoError(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "ava-stone", Slugify("Ava Stone"))
	assert.Equal(t, "ava-stone", Slugify("  Ava   Stone  "))
	assert.Equal(t, "jean-luc-o-neil", Slugify("Jean-Luc O'Neil"))
	assert.Equal(t, "", Slugify("   "))
}
