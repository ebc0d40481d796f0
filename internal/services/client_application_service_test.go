package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"totl_backend/internal/email"
	"totl_backend/internal/models"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

func submitRequest() *dto.SubmitClientApplicationRequest {
	return &dto.SubmitClientApplicationRequest{
		CompanyName: "Vogue Studio",
		ContactName: "Dana Reed",
		Email:       "dana@vogue.test",
	}
}

func TestSubmitAllowsOneActiveApplication(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	admin := createTestUser(t, db, "admin@totl.test", models.UserRoleAdmin)

	first, err := svc.ClientApplication.Submit(talent.ID, submitRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ClientApplicationStatusPending, first.Status)

	// A pending application blocks a second one.
	_, err = svc.ClientApplication.Submit(talent.ID, submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrClientApplicationPending)

	// A rejection clears the way for a fresh attempt.
	_, err = svc.ClientApplication.Reject(admin.ID, first.ID, &dto.DecideClientApplicationRequest{Notes: "incomplete"})
	require.NoError(t, err)

	_, err = svc.ClientApplication.Submit(talent.ID, submitRequest())
	require.NoError(t, err)
}

func TestConcurrentSubmitsCreateOneApplication(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")

	const attempts = 8
	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.ClientApplication.Submit(talent.ID, submitRequest())
		}(i)
	}
	close(start)
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrClientApplicationPending)
	}
	assert.Equal(t, 1, successes)

	// However the submits interleave, the unique index admits one row.
	var count int64
	require.NoError(t, db.Model(&models.ClientApplication{}).
		Where("user_id = ? AND status <> ?", talent.ID, models.ClientApplicationStatusRejected).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitRefusedForClients(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	client := createTestUser(t, db, "client@totl.test", models.UserRoleClient)
	_, err := svc.ClientApplication.Submit(client.ID, submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrAlreadyClient)
}

func TestApprovePromotesExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	svc, provider := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	admin := createTestUser(t, db, "admin@totl.test", models.UserRoleAdmin)

	application, err := svc.ClientApplication.Submit(talent.ID, submitRequest())
	require.NoError(t, err)

	decision, err := svc.ClientApplication.Approve(admin.ID, application.ID, &dto.DecideClientApplicationRequest{})
	require.NoError(t, err)
	assert.True(t, decision.DidDecide)
	assert.True(t, decision.DidPromote)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", talent.ID).Error)
	assert.Equal(t, models.UserRoleClient, user.Role)

	var profile models.ClientProfile
	require.NoError(t, db.First(&profile, "user_id = ?", talent.ID).Error)
	assert.Equal(t, "Vogue Studio", profile.CompanyName)

	assert.Equal(t, 1, provider.CountTemplate(email.TemplateClientApproved))

	// Replay: nothing decided, nothing promoted, no second email.
	replay, err := svc.ClientApplication.Approve(admin.ID, application.ID, &dto.DecideClientApplicationRequest{})
	require.NoError(t, err)
	assert.False(t, replay.DidDecide)
	assert.False(t, replay.DidPromote)
	assert.Equal(t, 1, provider.CountTemplate(email.TemplateClientApproved))

	var profileCount int64
	require.NoError(t, db.Model(&models.ClientProfile{}).Where("user_id = ?", talent.ID).Count(&profileCount).Error)
	assert.EqualValues(t, 1, profileCount)
}

func TestDecisionTerminalGuards(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	admin := createTestUser(t, db, "admin@totl.test", models.UserRoleAdmin)

	application, err := svc.ClientApplication.Submit(talent.ID, submitRequest())
	require.NoError(t, err)

	_, err = svc.ClientApplication.Reject(admin.ID, application.ID, &dto.DecideClientApplicationRequest{})
	require.NoError(t, err)

	// A rejected application can never flip to approved.
	_, err = svc.ClientApplication.Approve(admin.ID, application.ID, &dto.DecideClientApplicationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCannotApproveRejected)

	// And vice versa once approved.
	talent2 := createTestTalent(t, db, "talent2@totl.test", "Ben Ford", "")
	application2, err := svc.ClientApplication.Submit(talent2.ID, submitRequest())
	require.NoError(t, err)
	_, err = svc.ClientApplication.Approve(admin.ID, application2.ID, &dto.DecideClientApplicationRequest{})
	require.NoError(t, err)
	_, err = svc.ClientApplication.Reject(admin.ID, application2.ID, &dto.DecideClientApplicationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCannotRejectApproved)
}

func TestDecisionsRecheckStoredRole(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	notAdmin := createTestUser(t, db, "client@totl.test", models.UserRoleClient)

	application, err := svc.ClientApplication.Submit(talent.ID, submitRequest())
	require.NoError(t, err)

	_, err = svc.ClientApplication.Approve(notAdmin.ID, application.ID, &dto.DecideClientApplicationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	_, err = svc.ClientApplication.Reject(notAdmin.ID, application.ID, &dto.DecideClientApplicationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestFollowUpSweepSendsAtMostOnce(t *testing.T) {
	db := setupTestDB(t)
	svc, provider := newTestServices(t, db)

	old := createTestTalent(t, db, "old@totl.test", "Ava Stone", "")
	fresh := createTestTalent(t, db, "fresh@totl.test", "Ben Ford", "")

	stale, err := svc.ClientApplication.Submit(old.ID, submitRequest())
	require.NoError(t, err)
	backdate(t, db, &models.ClientApplication{}, stale.ID, time.Now().AddDate(0, 0, -5))

	// Under the threshold: must be left alone.
	_, err = svc.ClientApplication.Submit(fresh.ID, submitRequest())
	require.NoError(t, err)

	result, err := svc.ClientApplication.SendFollowUpReminders()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Sent)
	assert.Empty(t, result.Failures)

	assert.Equal(t, 1, provider.CountTemplate(email.TemplateFollowUpAdmin))
	assert.Equal(t, 1, provider.CountTemplate(email.TemplateFollowUpApplicant))

	var stamped models.ClientApplication
	require.NoError(t, db.First(&stamped, "id = ?", stale.ID).Error)
	assert.NotNil(t, stamped.FollowUpSentAt)

	// Second sweep: nothing left to do.
	result, err = svc.ClientApplication.SendFollowUpReminders()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 1, provider.CountTemplate(email.TemplateFollowUpAdmin))
}

func TestFollowUpSweepRetriesAfterAdminFailure(t *testing.T) {
	db := setupTestDB(t)
	svc, provider := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	application, err := svc.ClientApplication.Submit(talent.ID, submitRequest())
	require.NoError(t, err)
	backdate(t, db, &models.ClientApplication{}, application.ID, time.Now().AddDate(0, 0, -10))

	provider.FailTemplate(email.TemplateFollowUpAdmin)

	result, err := svc.ClientApplication.SendFollowUpReminders()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Sent)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, application.ID, result.Failures[0].ApplicationID)
	assert.Equal(t, "admin_email", result.Failures[0].Stage)

	// The admin reminder never went out, so the applicant is not contacted
	// and the record stays eligible for the next sweep.
	assert.Equal(t, 0, provider.CountTemplate(email.TemplateFollowUpApplicant))
	var current models.ClientApplication
	require.NoError(t, db.First(&current, "id = ?", application.ID).Error)
	assert.Nil(t, current.FollowUpSentAt)

	result, err = svc.ClientApplication.SendFollowUpReminders()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestFollowUpSweepApplicantFailureStillStamps(t *testing.T) {
	db := setupTestDB(t)
	svc, provider := newTestServices(t, db)

	talent := createTestTalent(t, db, "talent@totl.test", "Ava Stone", "")
	application, err := svc.ClientApplication.Submit(talent.ID, submitRequest())
	require.NoError(t, err)
	backdate(t, db, &models.ClientApplication{}, application.ID, time.Now().AddDate(0, 0, -10))

	provider.FailTemplate(email.TemplateFollowUpApplicant)

	result, err := svc.ClientApplication.SendFollowUpReminders()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Sent)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "applicant_email", result.Failures[0].Stage)

	// The admin side succeeded, so the record is done: no repeat nudges.
	var current models.ClientApplication
	require.NoError(t, db.First(&current, "id = ?", application.ID).Error)
	assert.NotNil(t, current.FollowUpSentAt)

	result, err = svc.ClientApplication.SendFollowUpReminders()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
}
