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

// ApplicationService owns the talent-side application workflow and the
// acceptance transaction that turns an application into a booking.
type ApplicationService struct {
	db              *gorm.DB
	applicationRepo repositories.ApplicationRepository
	bookingRepo     repositories.BookingRepository
	gigRepo         repositories.GigRepository
	userRepo        repositories.UserRepository
	notifier        *email.Notifier
}

func NewApplicationService(
	db *gorm.DB,
	applicationRepo repositories.ApplicationRepository,
	bookingRepo repositories.BookingRepository,
	gigRepo repositories.GigRepository,
	userRepo repositories.UserRepository,
	notifier *email.Notifier,
) *ApplicationService {
	return &ApplicationService{
		db:              db,
		applicationRepo: applicationRepo,
		bookingRepo:     bookingRepo,
		gigRepo:         gigRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

// Apply submits a talent's application to an active gig. The gig/talent pair
// is unique at the database level, so a racing duplicate still comes back as
// a conflict rather than a second row.
func (s *ApplicationService) Apply(talentID, gigID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if gig.ClientID == talentID {
		return nil, apperrors.ErrCannotApplyToOwnGig
	}
	if err := AcceptsApplications(gig, time.Now()); err != nil {
		return nil, err
	}

	application := &models.Application{
		GigID:    gigID,
		TalentID: talentID,
		Status:   models.ApplicationStatusNew,
		Message:  req.Message,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrApplicationAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationService) ListByGig(clientID, gigID string) ([]dto.ApplicationResponse, error) {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if gig.ClientID != clientID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	applications, err := s.applicationRepo.ListByGig(gigID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToApplicationResponses(applications), nil
}

func (s *ApplicationService) ListMine(talentID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.ListByTalent(talentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToApplicationResponses(applications), nil
}

// UpdateStatus moves an application between the review stages (new,
// under_review, shortlisted). Terminal statuses are only reachable through
// Accept and Reject, and terminal applications never move again.
func (s *ApplicationService) UpdateStatus(clientID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if !models.ValidApplicationStatus(req.Status) || req.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidTransition("application",
			"Use the accept or reject operation for final decisions")
	}

	application, err := s.findOwnedApplication(clientID, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidTransition("application",
			"Application has already been decided")
	}

	res := s.db.Model(&models.Application{}).
		Where("id = ? AND status NOT IN ?", applicationID, terminalStatuses()).
		Update("status", req.Status)
	if res.Error != nil {
		return nil, apperrors.InternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		// Lost a race with a final decision.
		return nil, apperrors.ErrInvalidTransition("application",
			"Application has already been decided")
	}

	application.Status = req.Status
	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

// Accept finalizes an application and creates its booking in one
// transaction. The status flip is a conditional update guarded against
// terminal states, so two concurrent accepts produce exactly one booking:
// the loser observes the accepted row and returns the existing booking with
// DidAccept false. Accepting a rejected application is an error, never an
// overwrite.
func (s *ApplicationService) Accept(clientID, applicationID string, req *dto.AcceptApplicationRequest) (*dto.AcceptResult, error) {
	application, err := s.findOwnedApplication(clientID, applicationID)
	if err != nil {
		return nil, err
	}
	gig := application.Gig

	var (
		booking   models.Booking
		didAccept bool
	)
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Application{}).
			Where("id = ? AND status NOT IN ?", applicationID, terminalStatuses()).
			Update("status", models.ApplicationStatusAccepted)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Already decided. Re-read inside the transaction to see which way.
			var current models.Application
			if err := tx.First(&current, "id = ?", applicationID).Error; err != nil {
				return err
			}
			if current.Status == models.ApplicationStatusRejected {
				return apperrors.ErrCannotAcceptRejected
			}
			return tx.First(&booking, "application_id = ?", applicationID).Error
		}

		didAccept = true
		booking = models.Booking{
			ApplicationID: applicationID,
			GigID:         gig.ID,
			TalentID:      application.TalentID,
			ClientID:      clientID,
			Status:        models.BookingStatusConfirmed,
			Date:          bookingDate(gig, req.Date),
			Compensation:  bookingCompensation(gig, req.Compensation),
			Notes:         req.Notes,
		}
		return tx.Create(&booking).Error
	})
	if txErr != nil {
		var appErr *apperrors.AppError
		if apperrors.As(txErr, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(txErr)
	}

	// Notifications fire only on the transition, never on the idempotent
	// replay, and each one independently: a failed acceptance mail must not
	// suppress the booking confirmation.
	if didAccept && s.notifier != nil {
		if talent, err := s.userRepo.FindByID(application.TalentID); err == nil {
			if err := s.notifier.SendApplicationAccepted(talent.Email, talent.DisplayName, gig.Title); err != nil {
				logger.WithError(err).Warn("acceptance email failed", "application_id", applicationID)
			}
			if err := s.notifier.SendBookingConfirmed(
				talent.Email, talent.DisplayName, gig.Title,
				booking.Date.Format("2006-01-02"), booking.Compensation,
			); err != nil {
				logger.WithError(err).Warn("booking confirmation email failed", "booking_id", booking.ID)
			}
		} else {
			logger.WithError(err).Warn("talent lookup for acceptance emails failed", "application_id", applicationID)
		}
	}

	return &dto.AcceptResult{
		BookingID:         booking.ID,
		ApplicationStatus: models.ApplicationStatusAccepted,
		DidAccept:         didAccept,
	}, nil
}

// Reject finalizes an application as rejected. Rejecting an already-rejected
// application is a no-op success; rejecting an accepted one is an error.
func (s *ApplicationService) Reject(clientID, applicationID string, req *dto.RejectApplicationRequest) (*dto.ApplicationResponse, error) {
	application, err := s.findOwnedApplication(clientID, applicationID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": models.ApplicationStatusRejected}
	if req.Reason != "" {
		updates["rejection_reason"] = req.Reason
	}

	res := s.db.Model(&models.Application{}).
		Where("id = ? AND status NOT IN ?", applicationID, terminalStatuses()).
		Updates(updates)
	if res.Error != nil {
		return nil, apperrors.InternalError(res.Error)
	}

	didReject := res.RowsAffected > 0
	if !didReject {
		var current models.Application
		if err := s.db.First(&current, "id = ?", applicationID).Error; err != nil {
			return nil, apperrors.InternalError(err)
		}
		if current.Status == models.ApplicationStatusAccepted {
			return nil, apperrors.ErrCannotRejectAccepted
		}
		// Already rejected: keep the original reason, send nothing.
		current.Gig = application.Gig
		resp := dto.ToApplicationResponse(&current)
		return &resp, nil
	}

	application.Status = models.ApplicationStatusRejected
	if req.Reason != "" {
		application.RejectionReason = &req.Reason
	}

	if s.notifier != nil {
		if talent, err := s.userRepo.FindByID(application.TalentID); err == nil {
			if err := s.notifier.SendApplicationRejected(talent.Email, talent.DisplayName, application.Gig.Title, req.Reason); err != nil {
				logger.WithError(err).Warn("rejection email failed", "application_id", applicationID)
			}
		}
	}

	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationService) ListBookingsByClient(clientID string) ([]dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByClient(clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToBookingResponses(bookings), nil
}

func (s *ApplicationService) ListBookingsByTalent(talentID string) ([]dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByTalent(talentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToBookingResponses(bookings), nil
}

func (s *ApplicationService) findOwnedApplication(clientID, applicationID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByIDWithGig(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if application.Gig == nil || application.Gig.ClientID != clientID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return application, nil
}

func terminalStatuses() []models.ApplicationStatus {
	return []models.ApplicationStatus{
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
	}
}

// bookingDate resolves the booking date: explicit override, then the gig's
// own date, then the configured offset from now.
func bookingDate(gig *models.Gig, override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	if gig.Date != nil {
		return *gig.Date
	}
	offset := config.GetConfig().Workflow.BookingDefaultOffsetDays
	return time.Now().AddDate(0, 0, offset)
}

func bookingCompensation(gig *models.Gig, override *string) string {
	if override != nil {
		return *override
	}
	return gig.Compensation
}
