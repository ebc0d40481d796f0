package dto

import (
	"time"

	"totl_backend/internal/models"
)

type FlagContentRequest struct {
	ResourceType models.FlagResourceType `json:"resource_type" validate:"required,is-flag-resource"`
	ResourceID   string                  `json:"resource_id" validate:"required,uuid"`
	Reason       string                  `json:"reason" validate:"required,min=3,max=2000"`
}

// ResolveFlagRequest closes a flag. Action "none" records the decision
// without touching the flagged resource.
type ResolveFlagRequest struct {
	Status models.FlagStatus `json:"status" validate:"required,oneof=resolved dismissed"`
	Action string            `json:"action" validate:"required,is-flag-action"`
	Notes  string            `json:"notes" validate:"max=2000"`
}

type ContentFlagResponse struct {
	ID           string                  `json:"id"`
	ResourceType models.FlagResourceType `json:"resource_type"`
	ResourceID   string                  `json:"resource_id"`
	ReporterID   string                  `json:"reporter_id"`
	Reason       string                  `json:"reason"`
	Status       models.FlagStatus       `json:"status"`
	AdminNotes   *string                 `json:"admin_notes,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}

func ToContentFlagResponse(flag *models.ContentFlag) ContentFlagResponse {
	return ContentFlagResponse{
		ID:           flag.ID,
		ResourceType: flag.ResourceType,
		ResourceID:   flag.ResourceID,
		ReporterID:   flag.ReporterID,
		Reason:       flag.Reason,
		Status:       flag.Status,
		AdminNotes:   flag.AdminNotes,
		CreatedAt:    flag.CreatedAt,
	}
}

func ToContentFlagResponses(flags []models.ContentFlag) []ContentFlagResponse {
	out := make([]ContentFlagResponse, 0, len(flags))
	for i := range flags {
		out = append(out, ToContentFlagResponse(&flags[i]))
	}
	return out
}
