package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"totl_backend/internal/email"
	"totl_backend/internal/models"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

func TestApply(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, client.ID, models.GigStatusActive)

	resp, err := svc.Application.Apply(talent.ID, gig.ID, &dto.ApplyRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusNew, resp.Status)

	// Second application to the same gig is a conflict, not a second row.
	_, err = svc.Application.Apply(talent.ID, gig.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrApplicationAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyGuards(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")

	draft := createTestGig(t, db, client.ID, models.GigStatusDraft)
	_, err := svc.Application.Apply(talent.ID, draft.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrGigNotActive)

	active := createTestGig(t, db, client.ID, models.GigStatusActive)
	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(active).Update("application_deadline", past).Error)
	_, err = svc.Application.Apply(talent.ID, active.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrGigDeadlinePassed)

	own := createTestGig(t, db, client.ID, models.GigStatusActive)
	_, err = svc.Application.Apply(client.ID, own.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCannotApplyToOwnGig)
}

func TestAcceptCreatesBookingExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	svc, provider := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, client.ID, models.GigStatusActive)
	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusShortlisted)

	result, err := svc.Application.Accept(client.ID, application.ID, &dto.AcceptApplicationRequest{})
	require.NoError(t, err)
	assert.True(t, result.DidAccept)
	assert.NotEmpty(t, result.BookingID)
	assert.Equal(t, models.ApplicationStatusAccepted, result.ApplicationStatus)

	var booking models.Booking
	require.NoError(t, db.First(&booking, "id = ?", result.BookingID).Error)
	assert.Equal(t, application.ID, booking.ApplicationID)
	assert.Equal(t, gig.Compensation, booking.Compensation)
	// No gig date and no override: the configured offset applies.
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), booking.Date, time.Minute)

	assert.Equal(t, 1, provider.CountTemplate(email.TemplateApplicationAccepted))
	assert.Equal(t, 1, provider.CountTemplate(email.TemplateBookingConfirmed))

	// Replay: same booking back, nothing new created, no second email.
	replay, err := svc.Application.Accept(client.ID, application.ID, &dto.AcceptApplicationRequest{})
	require.NoError(t, err)
	assert.False(t, replay.DidAccept)
	assert.Equal(t, result.BookingID, replay.BookingID)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, 1, provider.CountTemplate(email.TemplateApplicationAccepted))
	assert.Equal(t, 1, provider.CountTemplate(email.TemplateBookingConfirmed))
}

func TestAcceptRejectedApplicationFails(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, client.ID, models.GigStatusActive)
	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusRejected)

	_, err := svc.Application.Accept(client.ID, application.ID, &dto.AcceptApplicationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCannotAcceptRejected)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAcceptRequiresOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	owner := createTestUser(t, db, "owner@totl.test", models.UserRoleClient)
	other := createTestUser(t, db, "other@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, owner.ID, models.GigStatusActive)
	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusNew)

	_, err := svc.Application.Accept(other.ID, application.ID, &dto.AcceptApplicationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	_, err = svc.Application.Reject(other.ID, application.ID, &dto.RejectApplicationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	_, err = svc.Application.UpdateStatus(other.ID, application.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusUnderReview,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestRejectIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc, provider := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, client.ID, models.GigStatusActive)
	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusUnderReview)

	resp, err := svc.Application.Reject(client.ID, application.ID, &dto.RejectApplicationRequest{Reason: "not a fit"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "not a fit", *resp.RejectionReason)
	assert.Equal(t, 1, provider.CountTemplate(email.TemplateApplicationRejected))

	// Replay with a different reason: success, original reason kept, no email.
	replay, err := svc.Application.Reject(client.ID, application.ID, &dto.RejectApplicationRequest{Reason: "changed my mind"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, replay.Status)
	require.NotNil(t, replay.RejectionReason)
	assert.Equal(t, "not a fit", *replay.RejectionReason)
	assert.Equal(t, 1, provider.CountTemplate(email.TemplateApplicationRejected))
}

func TestRejectAcceptedApplicationFails(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, client.ID, models.GigStatusActive)
	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusAccepted)

	_, err := svc.Application.Reject(client.ID, application.ID, &dto.RejectApplicationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCannotRejectAccepted)
}

func TestUpdateStatusStaysOutOfTerminalStates(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, client.ID, models.GigStatusActive)
	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusNew)

	resp, err := svc.Application.UpdateStatus(client.ID, application.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusUnderReview,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusUnderReview, resp.Status)

	// Terminal targets must go through Accept/Reject.
	_, err = svc.Application.UpdateStatus(client.ID, application.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusAccepted,
	})
	require.Error(t, err)

	// Terminal applications never move again.
	require.NoError(t, db.Model(application).Update("status", models.ApplicationStatusRejected).Error)
	_, err = svc.Application.UpdateStatus(client.ID, application.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusShortlisted,
	})
	require.Error(t, err)

	var current models.Application
	require.NoError(t, db.First(&current, "id = ?", application.ID).Error)
	assert.Equal(t, models.ApplicationStatusRejected, current.Status)
}

func TestAcceptPrefersGigDateOverDefault(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, client.ID, models.GigStatusActive)

	gigDate := time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(gig).Update("date", gigDate).Error)

	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusNew)

	result, err := svc.Application.Accept(client.ID, application.ID, &dto.AcceptApplicationRequest{})
	require.NoError(t, err)

	var booking models.Booking
	require.NoError(t, db.First(&booking, "id = ?", result.BookingID).Error)
	assert.True(t, booking.Date.Equal(gigDate))
}

func TestAcceptUsesOverrides(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	gig := createTestGig(t, db, client.ID, models.GigStatusActive)
	application := createTestApplication(t, db, gig.ID, talent.ID, models.ApplicationStatusNew)

	date := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)
	comp := "$900"
	result, err := svc.Application.Accept(client.ID, application.ID, &dto.AcceptApplicationRequest{
		Date:         &date,
		Compensation: &comp,
		Notes:        "studio B",
	})
	require.NoError(t, err)

	var booking models.Booking
	require.NoError(t, db.First(&booking, "id = ?", result.BookingID).Error)
	assert.True(t, booking.Date.Equal(date))
	assert.Equal(t, comp, booking.Compensation)
	assert.Equal(t, "studio B", booking.Notes)
}
