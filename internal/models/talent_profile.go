package models

import "gorm.io/datatypes"

type TalentProfile struct {
	BaseModel
	UserID       string         `gorm:"uniqueIndex;not null" json:"user_id"`
	Name         string         `json:"name"`
	Age          *int           `json:"age,omitempty"`
	Location     string         `json:"location"`
	Height       *float64       `json:"height,omitempty"`
	Weight       *float64       `json:"weight,omitempty"`
	Measurements *string        `json:"measurements,omitempty"`
	HairColor    *string        `json:"hair_color,omitempty"`
	EyeColor     *string        `json:"eye_color,omitempty"`
	ShoeSize     *string        `json:"shoe_size,omitempty"`
	Experience   string         `json:"experience"`
	Specialties  datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Languages    datatypes.JSON `gorm:"type:jsonb" json:"-"`
	PortfolioURL string         `json:"portfolio_url,omitempty"`

	// Phone is sensitive. It never reaches a response except through the
	// visibility gate in ProfileService.
	Phone string `json:"-"`
}
