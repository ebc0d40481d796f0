package models

import "time"

type ClientApplication struct {
	BaseModel
	// The partial unique index is the real guard for "at most one
	// non-rejected application per user": concurrent submits race to the
	// insert and the database picks the winner.
	UserID              string                  `gorm:"not null;uniqueIndex:uniq_client_applications_active,where:status <> 'rejected'" json:"user_id"`
	CompanyName         string                  `gorm:"not null" json:"company_name"`
	ContactName         string                  `json:"contact_name"`
	Email               string                  `json:"email"`
	Phone               string                  `json:"phone,omitempty"`
	Website             string                  `json:"website,omitempty"`
	BusinessDescription string                  `json:"business_description"`
	NeedsDescription    string                  `json:"needs_description"`
	Status              ClientApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AdminNotes          *string                 `json:"admin_notes,omitempty"`

	// FollowUpSentAt gates the reminder sweep: set once, never re-sent.
	FollowUpSentAt *time.Time `json:"follow_up_sent_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
