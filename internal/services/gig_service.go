package services

import (
	"errors"
	"time"

	"totl_backend/internal/models"
	"totl_backend/internal/repositories"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

type GigService struct {
	gigRepo repositories.GigRepository
}

func NewGigService(gigRepo repositories.GigRepository) *GigService {
	return &GigService{gigRepo: gigRepo}
}

// Create makes a new gig in draft status. Only the publish step makes it
// visible and open for applications.
func (s *GigService) Create(clientID string, req *dto.CreateGigRequest) (*dto.GigResponse, error) {
	gig := &models.Gig{
		ClientID:            clientID,
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		Location:            req.Location,
		Compensation:        req.Compensation,
		Date:                req.Date,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              models.GigStatusDraft,
	}
	if err := s.gigRepo.Create(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToGigResponse(gig)
	return &resp, nil
}

// Get renders a gig for the viewer. Drafts and cancelled gigs exist only
// for their owner and admins; everyone else gets not-found, not forbidden,
// so the id leaks nothing.
func (s *GigService) Get(viewer Viewer, id string) (*dto.GigResponse, error) {
	gig, err := s.findGig(id)
	if err != nil {
		return nil, err
	}

	visible := gig.Status == models.GigStatusActive || gig.Status == models.GigStatusClosed ||
		viewer.UserID == gig.ClientID || viewer.Role == models.UserRoleAdmin
	if !visible {
		return nil, apperrors.ErrNotFound(repositories.ErrGigNotFound)
	}

	resp := dto.ToGigResponse(gig)
	return &resp, nil
}

func (s *GigService) ListActive(limit, offset int) ([]dto.GigResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	gigs, err := s.gigRepo.ListActive(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToGigResponses(gigs), nil
}

func (s *GigService) ListByClient(clientID string) ([]dto.GigResponse, error) {
	gigs, err := s.gigRepo.ListByClient(clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToGigResponses(gigs), nil
}

// Update edits a draft gig. Published gigs are immutable so applicants
// never apply against terms that changed under them.
func (s *GigService) Update(clientID, gigID string, req *dto.UpdateGigRequest) (*dto.GigResponse, error) {
	gig, err := s.findOwnedGig(clientID, gigID)
	if err != nil {
		return nil, err
	}
	if gig.Status != models.GigStatusDraft {
		return nil, apperrors.ErrInvalidGigStatus
	}

	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.Description != nil {
		gig.Description = *req.Description
	}
	if req.Category != nil {
		gig.Category = *req.Category
	}
	if req.Location != nil {
		gig.Location = *req.Location
	}
	if req.Compensation != nil {
		gig.Compensation = *req.Compensation
	}
	if req.Date != nil {
		gig.Date = req.Date
	}
	if req.ApplicationDeadline != nil {
		gig.ApplicationDeadline = req.ApplicationDeadline
	}

	if err := s.gigRepo.Update(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToGigResponse(gig)
	return &resp, nil
}

// Publish moves a draft gig to active.
func (s *GigService) Publish(clientID, gigID string) (*dto.GigResponse, error) {
	return s.transition(clientID, gigID, models.GigStatusDraft, models.GigStatusActive)
}

// Close moves an active gig to closed. Applications stay readable but no new
// ones are accepted.
func (s *GigService) Close(clientID, gigID string) (*dto.GigResponse, error) {
	return s.transition(clientID, gigID, models.GigStatusActive, models.GigStatusClosed)
}

// Cancel marks a draft or active gig cancelled.
func (s *GigService) Cancel(clientID, gigID string) (*dto.GigResponse, error) {
	gig, err := s.findOwnedGig(clientID, gigID)
	if err != nil {
		return nil, err
	}
	if gig.Status != models.GigStatusDraft && gig.Status != models.GigStatusActive {
		return nil, apperrors.ErrInvalidGigStatus
	}
	gig.Status = models.GigStatusCancelled
	if err := s.gigRepo.Update(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToGigResponse(gig)
	return &resp, nil
}

// Delete removes a draft gig. Anything past draft has history attached and
// must be cancelled instead.
func (s *GigService) Delete(clientID, gigID string) error {
	gig, err := s.findOwnedGig(clientID, gigID)
	if err != nil {
		return err
	}
	if gig.Status != models.GigStatusDraft {
		return apperrors.ErrInvalidGigStatus
	}
	if err := s.gigRepo.Delete(gigID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// AcceptsApplications reports whether the gig is open for new applications.
func AcceptsApplications(gig *models.Gig, now time.Time) error {
	if gig.Status != models.GigStatusActive {
		return apperrors.ErrGigNotActive
	}
	if gig.ApplicationDeadline != nil && gig.ApplicationDeadline.Before(now) {
		return apperrors.ErrGigDeadlinePassed
	}
	return nil
}

func (s *GigService) transition(clientID, gigID string, from, to models.GigStatus) (*dto.GigResponse, error) {
	gig, err := s.findOwnedGig(clientID, gigID)
	if err != nil {
		return nil, err
	}
	if gig.Status != from {
		return nil, apperrors.ErrInvalidGigStatus
	}
	gig.Status = to
	if err := s.gigRepo.Update(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToGigResponse(gig)
	return &resp, nil
}

func (s *GigService) findGig(id string) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *GigService) findOwnedGig(clientID, id string) (*models.Gig, error) {
	gig, err := s.findGig(id)
	if err != nil {
		return nil, err
	}
	if gig.ClientID != clientID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return gig, nil
}
