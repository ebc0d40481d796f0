package models

type ContentFlag struct {
	BaseModel
	ResourceType FlagResourceType `gorm:"type:varchar(20);not null;index:idx_flags_resource" json:"resource_type"`
	ResourceID   string           `gorm:"not null;index:idx_flags_resource" json:"resource_id"`
	ReporterID   string           `gorm:"not null;index" json:"reporter_id"`
	Reason       string           `json:"reason"`
	Status       FlagStatus       `gorm:"type:varchar(20);default:'open'" json:"status"`
	AdminNotes   *string          `json:"admin_notes,omitempty"`

	Reporter *User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
}
