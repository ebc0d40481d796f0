package dto

import (
	"time"

	"totl_backend/internal/models"
)

type ApplyRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

type RejectApplicationRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// AcceptApplicationRequest carries optional booking overrides. Absent fields
// fall back to the gig's values and the configured default offset.
type AcceptApplicationRequest struct {
	Date         *time.Time `json:"date,omitempty"`
	Compensation *string    `json:"compensation,omitempty"`
	Notes        string     `json:"notes,omitempty" validate:"max=2000"`
}

// AcceptResult reports what the acceptance transaction actually did.
// DidAccept is false when the application was already accepted and the
// existing booking is returned instead.
type AcceptResult struct {
	BookingID         string                   `json:"booking_id"`
	ApplicationStatus models.ApplicationStatus `json:"application_status"`
	DidAccept         bool                     `json:"did_accept"`
}

type ApplicationResponse struct {
	ID              string                   `json:"id"`
	GigID           string                   `json:"gig_id"`
	TalentID        string                   `json:"talent_id"`
	Status          models.ApplicationStatus `json:"status"`
	Message         string                   `json:"message"`
	RejectionReason *string                  `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	Gig             *GigResponse             `json:"gig,omitempty"`
	Talent          *UserResponse            `json:"talent,omitempty"`
}

func ToApplicationResponse(application *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:              application.ID,
		GigID:           application.GigID,
		TalentID:        application.TalentID,
		Status:          application.Status,
		Message:         application.Message,
		RejectionReason: application.RejectionReason,
		CreatedAt:       application.CreatedAt,
	}
	if application.Gig != nil {
		gig := ToGigResponse(application.Gig)
		resp.Gig = &gig
	}
	if application.Talent != nil {
		talent := ToUserResponse(application.Talent)
		resp.Talent = &talent
	}
	return resp
}

func ToApplicationResponses(applications []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, ToApplicationResponse(&applications[i]))
	}
	return out
}

type BookingResponse struct {
	ID            string               `json:"id"`
	ApplicationID string               `json:"application_id"`
	GigID         string               `json:"gig_id"`
	TalentID      string               `json:"talent_id"`
	ClientID      string               `json:"client_id"`
	Status        models.BookingStatus `json:"status"`
	Date          time.Time            `json:"date"`
	Compensation  string               `json:"compensation"`
	Notes         string               `json:"notes,omitempty"`
	Gig           *GigResponse         `json:"gig,omitempty"`
}

func ToBookingResponse(booking *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID,
		ApplicationID: booking.ApplicationID,
		GigID:         booking.GigID,
		TalentID:      booking.TalentID,
		ClientID:      booking.ClientID,
		Status:        booking.Status,
		Date:          booking.Date,
		Compensation:  booking.Compensation,
		Notes:         booking.Notes,
	}
	if booking.Gig != nil {
		gig := ToGigResponse(booking.Gig)
		resp.Gig = &gig
	}
	return resp
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingResponse(&bookings[i]))
	}
	return out
}
