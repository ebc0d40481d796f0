package models

import "time"

// Booking is created exactly once per accepted application, inside the
// acceptance transaction. No other code path may insert one.
type Booking struct {
	BaseModel
	ApplicationID string        `gorm:"uniqueIndex;not null" json:"application_id"`
	GigID         string        `gorm:"not null;index" json:"gig_id"`
	TalentID      string        `gorm:"not null;index" json:"talent_id"`
	ClientID      string        `gorm:"not null;index" json:"client_id"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	Date          time.Time     `json:"date"`
	Compensation  string        `json:"compensation"`
	Notes         string        `json:"notes,omitempty"`

	Gig    *Gig  `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Talent *User `gorm:"foreignKey:TalentID" json:"talent,omitempty"`
}
