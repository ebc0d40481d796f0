package services

import (
	"errors"

	"totl_backend/internal/auth"
	"totl_backend/internal/config"
	"totl_backend/internal/email"
	"totl_backend/internal/logger"
	"totl_backend/internal/models"
	"totl_backend/internal/repositories"
	"totl_backend/internal/services/dto"
	"totl_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo          repositories.UserRepository
	talentProfileRepo repositories.TalentProfileRepository
	notifier          *email.Notifier
}

func NewAuthService(
	userRepo repositories.UserRepository,
	talentProfileRepo repositories.TalentProfileRepository,
	notifier *email.Notifier,
) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		talentProfileRepo: talentProfileRepo,
		notifier:          notifier,
	}
}

// Register creates a talent account. Client access is never granted at
// registration: it is only reachable through an approved client application.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleTalent,
		DisplayName:  req.DisplayName,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	profile := &models.TalentProfile{
		UserID: user.ID,
		Name:   req.DisplayName,
	}
	if err := s.talentProfileRepo.Create(profile); err != nil {
		logger.WithError(err).Error("failed to create talent profile on registration", "user_id", user.ID)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Best effort. Registration never fails on mail problems.
	if s.notifier != nil {
		if err := s.notifier.SendWelcome(user.Email, user.DisplayName, config.GetConfig().Email.AdminEmail); err != nil {
			logger.WithError(err).Warn("welcome email failed", "user_id", user.ID)
		}
	}

	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Suspended {
		return nil, apperrors.ErrAccountSuspended
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

func (s *AuthService) Me(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}
