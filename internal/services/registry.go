package services

import (
	"gorm.io/gorm"

	"totl_backend/internal/email"
	"totl_backend/internal/repositories"
)

// ServiceContainer wires every service over a shared database handle and
// notifier. Built once at startup and handed to the handler layer.
type ServiceContainer struct {
	Auth              *AuthService
	Gig               *GigService
	Application       *ApplicationService
	ClientApplication *ClientApplicationService
	Profile           *ProfileService
	Moderation        *ModerationService
}

func NewServiceContainer(db *gorm.DB, notifier *email.Notifier) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	talentProfileRepo := repositories.NewTalentProfileRepository(db)
	clientProfileRepo := repositories.NewClientProfileRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	clientApplicationRepo := repositories.NewClientApplicationRepository(db)
	flagRepo := repositories.NewContentFlagRepository(db)

	return &ServiceContainer{
		Auth:              NewAuthService(userRepo, talentProfileRepo, notifier),
		Gig:               NewGigService(gigRepo),
		Application:       NewApplicationService(db, applicationRepo, bookingRepo, gigRepo, userRepo, notifier),
		ClientApplication: NewClientApplicationService(db, clientApplicationRepo, userRepo, notifier),
		Profile:           NewProfileService(talentProfileRepo, clientProfileRepo, userRepo),
		Moderation:        NewModerationService(db, flagRepo, gigRepo, talentProfileRepo),
	}
}
