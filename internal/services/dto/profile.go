package dto

import "totl_backend/internal/models"

type UpdateTalentProfileRequest struct {
	Name         *string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Age          *int      `json:"age,omitempty" validate:"omitempty,min=16,max=100"`
	Location     *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Height       *float64  `json:"height,omitempty" validate:"omitempty,min=0"`
	Weight       *float64  `json:"weight,omitempty" validate:"omitempty,min=0"`
	Measurements *string   `json:"measurements,omitempty" validate:"omitempty,max=100"`
	HairColor    *string   `json:"hair_color,omitempty" validate:"omitempty,max=50"`
	EyeColor     *string   `json:"eye_color,omitempty" validate:"omitempty,max=50"`
	ShoeSize     *string   `json:"shoe_size,omitempty" validate:"omitempty,max=20"`
	Experience   *string   `json:"experience,omitempty" validate:"omitempty,max=5000"`
	Specialties  *[]string `json:"specialties,omitempty" validate:"omitempty,max=25,dive,max=100"`
	Languages    *[]string `json:"languages,omitempty" validate:"omitempty,max=25,dive,max=50"`
	PortfolioURL *string   `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	Phone        *string   `json:"phone,omitempty" validate:"omitempty,max=50"`
}

type UpdateClientProfileRequest struct {
	CompanyName  *string `json:"company_name,omitempty" validate:"omitempty,min=2,max=200"`
	ContactName  *string `json:"contact_name,omitempty" validate:"omitempty,min=2,max=100"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=50"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url"`
}

// TalentProfileView is the public rendering of a talent profile. Phone is
// populated only when the viewer passes the contact-visibility gate; it is
// omitted, not blanked, for everyone else.
type TalentProfileView struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Age          *int     `json:"age,omitempty"`
	Location     string   `json:"location"`
	Height       *float64 `json:"height,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`
	Measurements *string  `json:"measurements,omitempty"`
	HairColor    *string  `json:"hair_color,omitempty"`
	EyeColor     *string  `json:"eye_color,omitempty"`
	ShoeSize     *string  `json:"shoe_size,omitempty"`
	Experience   string   `json:"experience"`
	Specialties  []string `json:"specialties"`
	Languages    []string `json:"languages"`
	PortfolioURL string   `json:"portfolio_url,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
}

// ToTalentProfileView builds the public view. The phone field is attached
// separately by the service once the viewer has been authorized.
func ToTalentProfileView(profile *models.TalentProfile) TalentProfileView {
	return TalentProfileView{
		UserID:       profile.UserID,
		Name:         profile.Name,
		Age:          profile.Age,
		Location:     profile.Location,
		Height:       profile.Height,
		Weight:       profile.Weight,
		Measurements: profile.Measurements,
		HairColor:    profile.HairColor,
		EyeColor:     profile.EyeColor,
		ShoeSize:     profile.ShoeSize,
		Experience:   profile.Experience,
		Specialties:  models.NormalizeToStringArray(profile.Specialties),
		Languages:    models.NormalizeToStringArray(profile.Languages),
		PortfolioURL: profile.PortfolioURL,
	}
}

type ClientProfileResponse struct {
	UserID       string `json:"user_id"`
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Website      string `json:"website,omitempty"`
}

func ToClientProfileResponse(profile *models.ClientProfile) ClientProfileResponse {
	return ClientProfileResponse{
		UserID:       profile.UserID,
		CompanyName:  profile.CompanyName,
		ContactName:  profile.ContactName,
		ContactEmail: profile.ContactEmail,
		ContactPhone: profile.ContactPhone,
		Website:      profile.Website,
	}
}
