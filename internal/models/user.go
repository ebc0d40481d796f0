package models

type User struct {
	BaseModel
	Email            string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string   `gorm:"not null" json:"-"`
	Role             UserRole `gorm:"type:varchar(20);not null" json:"role"`
	DisplayName      string   `json:"display_name"`
	AvatarURL        string   `json:"avatar_url,omitempty"`
	Suspended        bool     `gorm:"default:false" json:"suspended"`
	SuspensionReason string   `json:"-"`
	IsVerified       bool     `gorm:"default:false" json:"is_verified"`

	// Relations
	TalentProfile *TalentProfile `gorm:"foreignKey:UserID" json:"talent_profile,omitempty"`
	ClientProfile *ClientProfile `gorm:"foreignKey:UserID" json:"client_profile,omitempty"`
}
