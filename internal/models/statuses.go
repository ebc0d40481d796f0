package models

type UserRole string
type GigStatus string
type ApplicationStatus string
type BookingStatus string
type ClientApplicationStatus string
type FlagStatus string
type FlagResourceType string

const (
	UserRoleTalent UserRole = "talent"
	UserRoleClient UserRole = "client"
	UserRoleAdmin  UserRole = "admin"

	GigStatusDraft     GigStatus = "draft"
	GigStatusActive    GigStatus = "active"
	GigStatusClosed    GigStatus = "closed"
	GigStatusCancelled GigStatus = "cancelled"

	ApplicationStatusNew         ApplicationStatus = "new"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"

	ClientApplicationStatusPending  ClientApplicationStatus = "pending"
	ClientApplicationStatusApproved ClientApplicationStatus = "approved"
	ClientApplicationStatusRejected ClientApplicationStatus = "rejected"

	FlagStatusOpen      FlagStatus = "open"
	FlagStatusInReview  FlagStatus = "in_review"
	FlagStatusResolved  FlagStatus = "resolved"
	FlagStatusDismissed FlagStatus = "dismissed"

	FlagResourceGig     FlagResourceType = "gig"
	FlagResourceProfile FlagResourceType = "profile"
)

// IsTerminal reports whether an application status can no longer change
// through non-admin paths.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusUnderReview, ApplicationStatusShortlisted,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
