package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"totl_backend/internal/config"
	"totl_backend/internal/email"
	"totl_backend/internal/logger"
	"totl_backend/internal/models"
	"totl_backend/internal/repositories"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

// ClientApplicationService owns the talent-to-client upgrade path: the
// application queue, the admin decision transactions, and the follow-up
// reminder sweep.
type ClientApplicationService struct {
	db                    *gorm.DB
	clientApplicationRepo repositories.ClientApplicationRepository
	userRepo              repositories.UserRepository
	notifier              *email.Notifier
}

func NewClientApplicationService(
	db *gorm.DB,
	clientApplicationRepo repositories.ClientApplicationRepository,
	userRepo repositories.UserRepository,
	notifier *email.Notifier,
) *ClientApplicationService {
	return &ClientApplicationService{
		db:                    db,
		clientApplicationRepo: clientApplicationRepo,
		userRepo:              userRepo,
		notifier:              notifier,
	}
}

// Submit files a client application for the user. A user can hold at most
// one non-rejected application at a time; a rejected one does not block
// trying again. The read below only shapes the error message: the invariant
// itself is held by the partial unique index on client_applications, so
// concurrent submits collapse to one row no matter how they interleave.
func (s *ClientApplicationService) Submit(userID string, req *dto.SubmitClientApplicationRequest) (*dto.ClientApplicationResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role == models.UserRoleClient || user.Role == models.UserRoleAdmin {
		return nil, apperrors.ErrAlreadyClient
	}

	existing, err := s.clientApplicationRepo.FindActiveByUser(userID)
	if err != nil && !errors.Is(err, repositories.ErrClientApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		if existing.Status == models.ClientApplicationStatusApproved {
			return nil, apperrors.ErrAlreadyClient
		}
		return nil, apperrors.ErrClientApplicationPending
	}

	application := &models.ClientApplication{
		UserID:              userID,
		CompanyName:         req.CompanyName,
		ContactName:         req.ContactName,
		Email:               req.Email,
		Phone:               req.Phone,
		Website:             req.Website,
		BusinessDescription: req.BusinessDescription,
		NeedsDescription:    req.NeedsDescription,
		Status:              models.ClientApplicationStatusPending,
	}
	if err := s.clientApplicationRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrActiveClientApplicationExists) {
			return nil, apperrors.ErrClientApplicationPending
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToClientApplicationResponse(application)
	return &resp, nil
}

// GetOwn returns the user's most recent active application.
func (s *ClientApplicationService) GetOwn(userID string) (*dto.ClientApplicationResponse, error) {
	application, err := s.clientApplicationRepo.FindActiveByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrClientApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToClientApplicationResponse(application)
	return &resp, nil
}

func (s *ClientApplicationService) ListPending(limit, offset int) ([]dto.ClientApplicationResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	applications, err := s.clientApplicationRepo.ListByStatus(models.ClientApplicationStatusPending, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToClientApplicationResponses(applications), nil
}

// Approve decides a pending application and promotes the applicant to the
// client role in the same transaction. Both steps are conditional updates:
// re-approving an approved application reports DidDecide false without
// re-promoting, and a user who already holds the client role is left alone.
// Approving a rejected application is an error.
func (s *ClientApplicationService) Approve(adminID, applicationID string, req *dto.DecideClientApplicationRequest) (*dto.ClientApplicationDecision, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}

	application, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}

	var didDecide, didPromote bool
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": models.ClientApplicationStatusApproved}
		if req.Notes != "" {
			updates["admin_notes"] = req.Notes
		}
		res := tx.Model(&models.ClientApplication{}).
			Where("id = ? AND status = ?", applicationID, models.ClientApplicationStatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var current models.ClientApplication
			if err := tx.First(&current, "id = ?", applicationID).Error; err != nil {
				return err
			}
			if current.Status == models.ClientApplicationStatusRejected {
				return apperrors.ErrCannotApproveRejected
			}
			// Already approved: nothing left to do.
			return nil
		}
		didDecide = true

		// Promotion is conditional on the current role so an approval replay
		// or an already-promoted user never writes twice.
		promote := tx.Model(&models.User{}).
			Where("id = ? AND role = ?", application.UserID, models.UserRoleTalent).
			Update("role", models.UserRoleClient)
		if promote.Error != nil {
			return promote.Error
		}
		didPromote = promote.RowsAffected > 0

		if didPromote {
			profile := models.ClientProfile{
				UserID:       application.UserID,
				CompanyName:  application.CompanyName,
				ContactName:  application.ContactName,
				ContactEmail: application.Email,
				ContactPhone: application.Phone,
				Website:      application.Website,
			}
			if err := tx.Where("user_id = ?", application.UserID).FirstOrCreate(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		var appErr *apperrors.AppError
		if apperrors.As(txErr, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(txErr)
	}

	if didPromote && s.notifier != nil {
		if err := s.notifier.SendClientApproved(application.Email, application.ContactName, application.CompanyName); err != nil {
			logger.WithError(err).Warn("client approval email failed", "client_application_id", applicationID)
		}
	}

	return &dto.ClientApplicationDecision{
		ApplicationID: applicationID,
		Status:        models.ClientApplicationStatusApproved,
		DidDecide:     didDecide,
		DidPromote:    didPromote,
	}, nil
}

// Reject decides a pending application as rejected. Re-rejecting reports
// DidDecide false; rejecting an approved application is an error because the
// promotion has already happened.
func (s *ClientApplicationService) Reject(adminID, applicationID string, req *dto.DecideClientApplicationRequest) (*dto.ClientApplicationDecision, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}

	application, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": models.ClientApplicationStatusRejected}
	if req.Notes != "" {
		updates["admin_notes"] = req.Notes
	}
	res := s.db.Model(&models.ClientApplication{}).
		Where("id = ? AND status = ?", applicationID, models.ClientApplicationStatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, apperrors.InternalError(res.Error)
	}

	didDecide := res.RowsAffected > 0
	if !didDecide {
		var current models.ClientApplication
		if err := s.db.First(&current, "id = ?", applicationID).Error; err != nil {
			return nil, apperrors.InternalError(err)
		}
		if current.Status == models.ClientApplicationStatusApproved {
			return nil, apperrors.ErrCannotRejectApproved
		}
	}

	if didDecide && s.notifier != nil {
		if err := s.notifier.SendClientRejected(application.Email, application.ContactName, req.Notes); err != nil {
			logger.WithError(err).Warn("client rejection email failed", "client_application_id", applicationID)
		}
	}

	return &dto.ClientApplicationDecision{
		ApplicationID: applicationID,
		Status:        models.ClientApplicationStatusRejected,
		DidDecide:     didDecide,
	}, nil
}

// SendFollowUpReminders runs one reminder sweep over pending applications
// older than the configured threshold that have never been reminded. Per
// record the admin reminder goes first; only when it succeeds does the
// applicant reminder go out and the record count as processed, so a record
// whose admin nudge failed is retried on the next sweep. Processed records
// get follow_up_sent_at stamped in one batched update and are excluded from
// every later sweep. Sent counts only records where both reminders were
// delivered. Failures are collected per record and reported, never fatal to
// the batch.
func (s *ClientApplicationService) SendFollowUpReminders() (*dto.SweepResult, error) {
	cfg := config.GetConfig()
	threshold := time.Now().AddDate(0, 0, -cfg.Workflow.FollowUpAfterDays)

	pending, err := s.clientApplicationRepo.ListPendingFollowUps(threshold)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := &dto.SweepResult{Processed: len(pending)}
	processedIDs := make([]string, 0, len(pending))

	for i := range pending {
		app := &pending[i]

		if s.notifier == nil {
			result.Failures = append(result.Failures, dto.SweepFailure{
				ApplicationID: app.ID,
				Stage:         "admin_email",
				Reason:        "email not configured",
			})
			continue
		}

		if err := s.notifier.SendFollowUpAdmin(cfg.Email.AdminEmail, app.ContactName, app.CompanyName); err != nil {
			result.Failures = append(result.Failures, dto.SweepFailure{
				ApplicationID: app.ID,
				Stage:         "admin_email",
				Reason:        err.Error(),
			})
			continue
		}

		if err := s.notifier.SendFollowUpApplicant(app.Email, app.ContactName, app.CompanyName); err != nil {
			result.Failures = append(result.Failures, dto.SweepFailure{
				ApplicationID: app.ID,
				Stage:         "applicant_email",
				Reason:        err.Error(),
			})
		} else {
			result.Sent++
		}
		processedIDs = append(processedIDs, app.ID)
	}

	if err := s.clientApplicationRepo.MarkFollowUpsSent(processedIDs, time.Now()); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.SweepLog("client_application_follow_up", result.Processed, len(result.Failures), nil)
	return result, nil
}

// requireAdmin re-checks the stored role. The token's role claim is a
// snapshot and is not trusted for irreversible decisions.
func (s *ClientApplicationService) requireAdmin(userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInsufficientPermissions
		}
		return apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

func (s *ClientApplicationService) findApplication(id string) (*models.ClientApplication, error) {
	application, err := s.clientApplicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrClientApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}
