package models

type ClientProfile struct {
	BaseModel
	UserID       string `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Website      string `json:"website,omitempty"`
}
