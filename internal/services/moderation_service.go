package services

import (
	"errors"

	"gorm.io/gorm"

	"totl_backend/internal/logger"
	"totl_backend/internal/models"
	"totl_backend/internal/repositories"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

// Moderation actions an admin can attach to a flag resolution.
const (
	FlagActionNone             = "none"
	FlagActionCloseGig         = "close_gig"
	FlagActionSuspendAccount   = "suspend_account"
	FlagActionReinstateAccount = "reinstate_account"
)

type ModerationService struct {
	db                *gorm.DB
	flagRepo          repositories.ContentFlagRepository
	gigRepo           repositories.GigRepository
	talentProfileRepo repositories.TalentProfileRepository
}

func NewModerationService(
	db *gorm.DB,
	flagRepo repositories.ContentFlagRepository,
	gigRepo repositories.GigRepository,
	talentProfileRepo repositories.TalentProfileRepository,
) *ModerationService {
	return &ModerationService{
		db:                db,
		flagRepo:          flagRepo,
		gigRepo:           gigRepo,
		talentProfileRepo: talentProfileRepo,
	}
}

// Flag files a report against a gig or a talent profile. Reporting your own
// content is rejected; reporting a resource that does not exist is a 404 so
// flags never dangle.
func (s *ModerationService) Flag(reporterID string, req *dto.FlagContentRequest) (*dto.ContentFlagResponse, error) {
	ownerID, err := s.resourceOwner(req.ResourceType, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if ownerID == reporterID {
		return nil, apperrors.ErrCannotFlagOwnContent
	}

	flag := &models.ContentFlag{
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ReporterID:   reporterID,
		Reason:       req.Reason,
		Status:       models.FlagStatusOpen,
	}
	if err := s.flagRepo.Create(flag); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToContentFlagResponse(flag)
	return &resp, nil
}

func (s *ModerationService) ListByStatus(status models.FlagStatus, limit, offset int) ([]dto.ContentFlagResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	flags, err := s.flagRepo.ListByStatus(status, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToContentFlagResponses(flags), nil
}

// StartReview moves an open flag to in_review so the queue shows who has
// picked it up.
func (s *ModerationService) StartReview(flagID string) (*dto.ContentFlagResponse, error) {
	flag, err := s.findFlag(flagID)
	if err != nil {
		return nil, err
	}
	if flag.Status != models.FlagStatusOpen {
		return nil, apperrors.ErrFlagAlreadyClosed
	}
	flag.Status = models.FlagStatusInReview
	if err := s.flagRepo.Update(flag); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToContentFlagResponse(flag)
	return &resp, nil
}

// Resolve closes a flag with an optional enforcement action. The status
// flip and the action commit together: a failed suspension cannot leave the
// flag marked resolved. The flip is a conditional update, so racing admins
// resolve a flag exactly once; the loser gets "already closed". Closed flags
// are immutable.
func (s *ModerationService) Resolve(adminID, flagID string, req *dto.ResolveFlagRequest) (*dto.ContentFlagResponse, error) {
	flag, err := s.findFlag(flagID)
	if err != nil {
		return nil, err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": req.Status}
		if req.Notes != "" {
			updates["admin_notes"] = req.Notes
		}
		res := tx.Model(&models.ContentFlag{}).
			Where("id = ? AND status IN ?", flagID, []models.FlagStatus{
				models.FlagStatusOpen,
				models.FlagStatusInReview,
			}).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrFlagAlreadyClosed
		}
		return s.applyAction(tx, flag, req.Action, req.Notes)
	})
	if txErr != nil {
		var appErr *apperrors.AppError
		if apperrors.As(txErr, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(txErr)
	}

	flag.Status = req.Status
	if req.Notes != "" {
		flag.AdminNotes = &req.Notes
	}

	logger.Info("flag resolved",
		"flag_id", flag.ID,
		"status", string(flag.Status),
		"action", req.Action,
		"admin_id", adminID,
	)

	resp := dto.ToContentFlagResponse(flag)
	return &resp, nil
}

func (s *ModerationService) applyAction(tx *gorm.DB, flag *models.ContentFlag, action, reason string) error {
	switch action {
	case FlagActionNone:
		return nil

	case FlagActionCloseGig:
		if flag.ResourceType != models.FlagResourceGig {
			return apperrors.ErrInvalidOperation("moderation", "close_gig applies only to gig flags")
		}
		return tx.Model(&models.Gig{}).
			Where("id = ?", flag.ResourceID).
			Update("status", models.GigStatusClosed).Error

	case FlagActionSuspendAccount:
		return s.updateSuspension(tx, flag, true, reason)

	case FlagActionReinstateAccount:
		return s.updateSuspension(tx, flag, false, "")
	}
	return apperrors.ErrInvalidOperation("moderation", "Unknown moderation action")
}

func (s *ModerationService) updateSuspension(tx *gorm.DB, flag *models.ContentFlag, suspended bool, reason string) error {
	ownerID, err := s.resourceOwner(flag.ResourceType, flag.ResourceID)
	if err != nil {
		return err
	}
	return tx.Model(&models.User{}).
		Where("id = ?", ownerID).
		Updates(map[string]interface{}{
			"suspended":         suspended,
			"suspension_reason": reason,
		}).Error
}

// resourceOwner maps a flagged resource to the user accountable for it.
func (s *ModerationService) resourceOwner(resourceType models.FlagResourceType, resourceID string) (string, error) {
	switch resourceType {
	case models.FlagResourceGig:
		gig, err := s.gigRepo.FindByID(resourceID)
		if err != nil {
			if errors.Is(err, repositories.ErrGigNotFound) {
				return "", apperrors.ErrNotFound(err)
			}
			return "", apperrors.InternalError(err)
		}
		return gig.ClientID, nil

	case models.FlagResourceProfile:
		profile, err := s.talentProfileRepo.FindByUserID(resourceID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return "", apperrors.ErrNotFound(err)
			}
			return "", apperrors.InternalError(err)
		}
		return profile.UserID, nil
	}
	return "", apperrors.ErrInvalidOperation("moderation", "Unknown resource type")
}

func (s *ModerationService) findFlag(id string) (*models.ContentFlag, error) {
	flag, err := s.flagRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrFlagNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return flag, nil
}
