package models

import "time"

type Gig struct {
	BaseModel
	ClientID            string     `gorm:"not null;index" json:"client_id"`
	Title               string     `gorm:"not null" json:"title"`
	Description         string     `json:"description"`
	Category            string     `json:"category"`
	Location            string     `json:"location"`
	Compensation        string     `json:"compensation"`
	Date                *time.Time `json:"date,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	Status              GigStatus  `gorm:"type:varchar(20);default:'draft'" json:"status"`

	Client *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
