package dto

import (
	"time"

	"totl_backend/internal/models"
)

type CreateGigRequest struct {
	Title               string     `json:"title" validate:"required,min=3,max=200"`
	Description         string     `json:"description" validate:"max=5000"`
	Category            string     `json:"category" validate:"max=100"`
	Location            string     `json:"location" validate:"max=200"`
	Compensation        string     `json:"compensation" validate:"max=200"`
	Date                *time.Time `json:"date,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

type UpdateGigRequest struct {
	Title               *string    `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category            *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Location            *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	Compensation        *string    `json:"compensation,omitempty" validate:"omitempty,max=200"`
	Date                *time.Time `json:"date,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

type GigResponse struct {
	ID                  string           `json:"id"`
	ClientID            string           `json:"client_id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Category            string           `json:"category"`
	Location            string           `json:"location"`
	Compensation        string           `json:"compensation"`
	Date                *time.Time       `json:"date,omitempty"`
	ApplicationDeadline *time.Time       `json:"application_deadline,omitempty"`
	Status              models.GigStatus `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
}

func ToGigResponse(gig *models.Gig) GigResponse {
	return GigResponse{
		ID:                  gig.ID,
		ClientID:            gig.ClientID,
		Title:               gig.Title,
		Description:         gig.Description,
		Category:            gig.Category,
		Location:            gig.Location,
		Compensation:        gig.Compensation,
		Date:                gig.Date,
		ApplicationDeadline: gig.ApplicationDeadline,
		Status:              gig.Status,
		CreatedAt:           gig.CreatedAt,
	}
}

func ToGigResponses(gigs []models.Gig) []GigResponse {
	out := make([]GigResponse, 0, len(gigs))
	for i := range gigs {
		out = append(out, ToGigResponse(&gigs[i]))
	}
	return out
}
