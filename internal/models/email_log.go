package models

// EmailLog records every attempted transactional send, success or failure.
// Delivery problems are diagnosed from here, never from business-transaction
// errors: the notifier is advisory by contract.
type EmailLog struct {
	BaseModel
	Recipient   string `gorm:"not null;index" json:"recipient"`
	Template    string `gorm:"not null" json:"template"`
	Subject     string `json:"subject"`
	Success     bool   `json:"success"`
	ErrorDetail string `json:"error_detail,omitempty"`
}
