package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"totl_backend/internal/models"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

func TestGigLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)

	gig, err := svc.Gig.Create(client.ID, &dto.CreateGigRequest{Title: "Catalog shoot"})
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusDraft, gig.Status)

	// Drafts are editable.
	title := "Catalog shoot, day rate"
	updated, err := svc.Gig.Update(client.ID, gig.ID, &dto.UpdateGigRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	// Drafts are invisible in the public listing.
	active, err := svc.Gig.ListActive(20, 0)
	require.NoError(t, err)
	assert.Empty(t, active)

	published, err := svc.Gig.Publish(client.ID, gig.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusActive, published.Status)

	active, err = svc.Gig.ListActive(20, 0)
	require.NoError(t, err)
	require.Len(t, active, 1)

	// Publishing twice is a transition error.
	_, err = svc.Gig.Publish(client.ID, gig.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidGigStatus)

	// Published gigs are frozen.
	other := "New title"
	_, err = svc.Gig.Update(client.ID, gig.ID, &dto.UpdateGigRequest{Title: &other})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGigStatus)

	closed, err := svc.Gig.Close(client.ID, gig.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusClosed, closed.Status)
}

func TestGigOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	owner := createTestUser(t, db, "owner@totl.test", models.UserRoleClient)
	other := createTestUser(t, db, "other@totl.test", models.UserRoleClient)
	gig := createTestGig(t, db, owner.ID, models.GigStatusDraft)

	_, err := svc.Gig.Publish(other.ID, gig.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	err = svc.Gig.Delete(other.ID, gig.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestGigDeleteOnlyDrafts(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)

	draft := createTestGig(t, db, client.ID, models.GigStatusDraft)
	require.NoError(t, svc.Gig.Delete(client.ID, draft.ID))

	active := createTestGig(t, db, client.ID, models.GigStatusActive)
	err := svc.Gig.Delete(client.ID, active.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidGigStatus)

	cancelled, err := svc.Gig.Cancel(client.ID, active.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusCancelled, cancelled.Status)
}
