package handlers

import (
	"totl_backend/internal/services"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth              *AuthHandler
	Gig               *GigHandler
	Application       *ApplicationHandler
	ClientApplication *ClientApplicationHandler
	Profile           *ProfileHandler
	Moderation        *ModerationHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Auth:              NewAuthHandler(base, svc.Auth),
		Gig:               NewGigHandler(base, svc.Gig),
		Application:       NewApplicationHandler(base, svc.Application),
		ClientApplication: NewClientApplicationHandler(base, svc.ClientApplication),
		Profile:           NewProfileHandler(base, svc.Profile),
		Moderation:        NewModerationHandler(base, svc.Moderation),
	}
}
