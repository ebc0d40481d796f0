package repositories

import (
	"gorm.io/gorm"

	"totl_backend/internal/logger"
	"totl_backend/internal/models"
)

type EmailLogRepository interface {
	LogEmailSent(recipient, templateName, subject string, success bool, errorDetail string)
	ListRecent(limit int) ([]models.EmailLog, error)
}

type EmailLogRepositoryImpl struct {
	db *gorm.DB
}

func NewEmailLogRepository(db *gorm.DB) EmailLogRepository {
	return &EmailLogRepositoryImpl{db: db}
}

// LogEmailSent writes a delivery-log row. A failure to log is itself only
// logged: delivery logging must never take down a send path.
func (r *EmailLogRepositoryImpl) LogEmailSent(recipient, templateName, subject string, success bool, errorDetail string) {
	entry := &models.EmailLog{
		Recipient:   recipient,
		Template:    templateName,
		Subject:     subject,
		Success:     success,
		ErrorDetail: errorDetail,
	}
	if err := r.db.Create(entry).Error; err != nil {
		logger.Warn("failed to write email log", "recipient", recipient, "template", templateName, "error", err.Error())
	}
}

func (r *EmailLogRepositoryImpl) ListRecent(limit int) ([]models.EmailLog, error) {
	var entries []models.EmailLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
