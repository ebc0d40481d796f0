package models

type Application struct {
	BaseModel
	GigID    string            `gorm:"not null;index;uniqueIndex:idx_applications_gig_talent" json:"gig_id"`
	TalentID string            `gorm:"not null;index;uniqueIndex:idx_applications_gig_talent" json:"talent_id"`
	Status   ApplicationStatus `gorm:"type:varchar(20);default:'new'" json:"status"`
	Message  string            `json:"message"`

	// RejectionReason is persisted alongside the rejection email so the
	// decision survives outside the mailbox.
	RejectionReason *string `json:"rejection_reason,omitempty"`

	Gig    *Gig  `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Talent *User `gorm:"foreignKey:TalentID" json:"talent,omitempty"`
}
