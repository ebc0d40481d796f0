package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"totl_backend/internal/config"
	"totl_backend/internal/models"
	"totl_backend/internal/repositories"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

// Viewer identifies who is looking at a profile. A zero Viewer is an
// anonymous request.
type Viewer struct {
	UserID string
	Role   models.UserRole
}

func (v Viewer) anonymous() bool {
	return v.UserID == ""
}

// ProfileService renders talent profiles and enforces the contact-visibility
// gate on the phone field.
type ProfileService struct {
	talentProfileRepo repositories.TalentProfileRepository
	clientProfileRepo repositories.ClientProfileRepository
	userRepo          repositories.UserRepository
}

func NewProfileService(
	talentProfileRepo repositories.TalentProfileRepository,
	clientProfileRepo repositories.ClientProfileRepository,
	userRepo repositories.UserRepository,
) *ProfileService {
	return &ProfileService{
		talentProfileRepo: talentProfileRepo,
		clientProfileRepo: clientProfileRepo,
		userRepo:          userRepo,
	}
}

// GetBySlug resolves a profile reference that is either a user id or a
// name-derived slug and renders it for the viewer. Name resolution scans a
// bounded candidate set; if two candidates slugify to the same value the
// lookup fails closed with not-found rather than guessing.
func (s *ProfileService) GetBySlug(viewer Viewer, slug string) (*dto.TalentProfileView, error) {
	profile, err := s.resolve(slug)
	if err != nil {
		return nil, err
	}
	return s.render(viewer, profile)
}

// GetOwn returns the talent's own profile, phone included.
func (s *ProfileService) GetOwn(userID string) (*dto.TalentProfileView, error) {
	profile, err := s.talentProfileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	view := dto.ToTalentProfileView(profile)
	if profile.Phone != "" {
		view.Phone = &profile.Phone
	}
	return &view, nil
}

func (s *ProfileService) UpdateOwnTalentProfile(userID string, req *dto.UpdateTalentProfileRequest) (*dto.TalentProfileView, error) {
	profile, err := s.talentProfileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Height != nil {
		profile.Height = req.Height
	}
	if req.Weight != nil {
		profile.Weight = req.Weight
	}
	if req.Measurements != nil {
		profile.Measurements = req.Measurements
	}
	if req.HairColor != nil {
		profile.HairColor = req.HairColor
	}
	if req.EyeColor != nil {
		profile.EyeColor = req.EyeColor
	}
	if req.ShoeSize != nil {
		profile.ShoeSize = req.ShoeSize
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.Specialties != nil {
		profile.Specialties = models.StringArrayToJSON(*req.Specialties)
	}
	if req.Languages != nil {
		profile.Languages = models.StringArrayToJSON(*req.Languages)
	}
	if req.PortfolioURL != nil {
		profile.PortfolioURL = *req.PortfolioURL
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}

	if err := s.talentProfileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	view := dto.ToTalentProfileView(profile)
	if profile.Phone != "" {
		view.Phone = &profile.Phone
	}
	return &view, nil
}

func (s *ProfileService) GetOwnClientProfile(userID string) (*dto.ClientProfileResponse, error) {
	profile, err := s.clientProfileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToClientProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileService) UpdateOwnClientProfile(userID string, req *dto.UpdateClientProfileRequest) (*dto.ClientProfileResponse, error) {
	profile, err := s.clientProfileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.ContactName != nil {
		profile.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		profile.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		profile.ContactPhone = *req.ContactPhone
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}

	if err := s.clientProfileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToClientProfileResponse(profile)
	return &resp, nil
}

// CanViewContact implements the contact-visibility capability: the talent
// themselves, an admin, or a client with an application or booking linking
// them to the talent. Everyone else gets the profile without the phone field.
func (s *ProfileService) CanViewContact(viewer Viewer, talentUserID string) (bool, error) {
	if viewer.anonymous() {
		return false, nil
	}
	if viewer.UserID == talentUserID {
		return true, nil
	}
	if viewer.Role == models.UserRoleAdmin {
		return true, nil
	}
	if viewer.Role != models.UserRoleClient {
		return false, nil
	}
	return s.talentProfileRepo.HasClientRelationship(viewer.UserID, talentUserID)
}

func (s *ProfileService) render(viewer Viewer, profile *models.TalentProfile) (*dto.TalentProfileView, error) {
	// Suspended talents disappear for everyone except admins and themselves.
	owner, err := s.userRepo.FindByID(profile.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if owner.Suspended && viewer.Role != models.UserRoleAdmin && viewer.UserID != profile.UserID {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	view := dto.ToTalentProfileView(profile)

	canView, err := s.CanViewContact(viewer, profile.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if canView && profile.Phone != "" {
		view.Phone = &profile.Phone
	}
	return &view, nil
}

func (s *ProfileService) resolve(slug string) (*models.TalentProfile, error) {
	if _, err := uuid.Parse(slug); err == nil {
		profile, err := s.talentProfileRepo.FindByUserID(slug)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}

	limit := config.GetConfig().Workflow.SlugCandidateLimit
	candidates, err := s.talentProfileRepo.ListCandidates(limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	want := Slugify(slug)
	var match *models.TalentProfile
	for i := range candidates {
		if Slugify(candidates[i].Name) != want {
			continue
		}
		if match != nil {
			// Ambiguous name. Fail closed instead of picking one.
			return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
		}
		match = &candidates[i]
	}
	if match == nil {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}
	return match, nil
}

// Slugify lowercases a name and joins its words with hyphens, dropping
// anything that is not a letter or digit.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
