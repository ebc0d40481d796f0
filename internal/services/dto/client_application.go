package dto

import (
	"time"

	"totl_backend/internal/models"
)

type SubmitClientApplicationRequest struct {
	CompanyName         string `json:"company_name" validate:"required,min=2,max=200"`
	ContactName         string `json:"contact_name" validate:"required,min=2,max=100"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"max=50"`
	Website             string `json:"website" validate:"omitempty,url"`
	BusinessDescription string `json:"business_description" validate:"max=2000"`
	NeedsDescription    string `json:"needs_description" validate:"max=2000"`
}

type DecideClientApplicationRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// ClientApplicationDecision reports what the decision transaction did.
// DidDecide is false when the application already carried this decision;
// DidPromote is false when the user already held the client role.
type ClientApplicationDecision struct {
	ApplicationID string                         `json:"application_id"`
	Status        models.ClientApplicationStatus `json:"status"`
	DidDecide     bool                           `json:"did_decide"`
	DidPromote    bool                           `json:"did_promote,omitempty"`
}

type ClientApplicationResponse struct {
	ID                  string                         `json:"id"`
	UserID              string                         `json:"user_id"`
	CompanyName         string                         `json:"company_name"`
	ContactName         string                         `json:"contact_name"`
	Email               string                         `json:"email"`
	Phone               string                         `json:"phone,omitempty"`
	Website             string                         `json:"website,omitempty"`
	BusinessDescription string                         `json:"business_description"`
	NeedsDescription    string                         `json:"needs_description"`
	Status              models.ClientApplicationStatus `json:"status"`
	AdminNotes          *string                        `json:"admin_notes,omitempty"`
	FollowUpSentAt      *time.Time                     `json:"follow_up_sent_at,omitempty"`
	CreatedAt           time.Time                      `json:"created_at"`
}

func ToClientApplicationResponse(application *models.ClientApplication) ClientApplicationResponse {
	return ClientApplicationResponse{
		ID:                  application.ID,
		UserID:              application.UserID,
		CompanyName:         application.CompanyName,
		ContactName:         application.ContactName,
		Email:               application.Email,
		Phone:               application.Phone,
		Website:             application.Website,
		BusinessDescription: application.BusinessDescription,
		NeedsDescription:    application.NeedsDescription,
		Status:              application.Status,
		AdminNotes:          application.AdminNotes,
		FollowUpSentAt:      application.FollowUpSentAt,
		CreatedAt:           application.CreatedAt,
	}
}

func ToClientApplicationResponses(applications []models.ClientApplication) []ClientApplicationResponse {
	out := make([]ClientApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, ToClientApplicationResponse(&applications[i]))
	}
	return out
}

// SweepFailure describes one record the reminder sweep could not fully
// process. The sweep keeps going past failures and reports them all.
type SweepFailure struct {
	ApplicationID string `json:"application_id"`
	Stage         string `json:"stage"`
	Reason        string `json:"reason"`
}

// SweepResult summarizes one reminder sweep. Processed is every record the
// sweep picked up; Sent is the subset where both reminders were delivered,
// so a record with an applicant-side failure appears in Failures but not in
// Sent.
type SweepResult struct {
	Processed int            `json:"processed"`
	Sent      int            `json:"sent"`
	Failures  []SweepFailure `json:"failures,omitempty"`
}
