package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"totl_backend/internal/models"
)

var (
	ErrClientApplicationNotFound     = errors.New("client application not found")
	ErrActiveClientApplicationExists = errors.New("user already has a non-rejected client application")
)

type ClientApplicationRepository interface {
	Create(application *models.ClientApplication) error
	FindByID(id string) (*models.ClientApplication, error)
	FindActiveByUser(userID string) (*models.ClientApplication, error)
	ListByStatus(status models.ClientApplicationStatus, limit, offset int) ([]models.ClientApplication, error)
	ListPendingFollowUps(olderThan time.Time) ([]models.ClientApplication, error)
	MarkFollowUpsSent(ids []string, sentAt time.Time) error
}

type ClientApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewClientApplicationRepository(db *gorm.DB) ClientApplicationRepository {
	return &ClientApplicationRepositoryImpl{db: db}
}

func (r *ClientApplicationRepositoryImpl) Create(application *models.ClientApplication) error {
	err := r.db.Create(application).Error
	if err != nil && isUniqueViolation(err) {
		return ErrActiveClientApplicationExists
	}
	return err
}

func (r *ClientApplicationRepositoryImpl) FindByID(id string) (*models.ClientApplication, error) {
	var application models.ClientApplication
	if err := r.db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

// FindActiveByUser returns the user's pending or approved application, if
// any. Rejected applications do not block a new submission.
func (r *ClientApplicationRepositoryImpl) FindActiveByUser(userID string) (*models.ClientApplication, error) {
	var application models.ClientApplication
	err := r.db.
		Where("user_id = ? AND status IN ?", userID, []models.ClientApplicationStatus{
			models.ClientApplicationStatusPending,
			models.ClientApplicationStatusApproved,
		}).
		Order("created_at DESC").
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ClientApplicationRepositoryImpl) ListByStatus(status models.ClientApplicationStatus, limit, offset int) ([]models.ClientApplication, error) {
	var applications []models.ClientApplication
	err := r.db.Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&applications).Error
	return applications, err
}

// ListPendingFollowUps selects the sweep's work set: still pending, created
// before the threshold, never reminded.
func (r *ClientApplicationRepositoryImpl) ListPendingFollowUps(olderThan time.Time) ([]models.ClientApplication, error) {
	var applications []models.ClientApplication
	err := r.db.
		Where("status = ? AND created_at < ? AND follow_up_sent_at IS NULL",
			models.ClientApplicationStatusPending, olderThan).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

// MarkFollowUpsSent stamps follow_up_sent_at for all processed ids in one
// batched update.
func (r *ClientApplicationRepositoryImpl) MarkFollowUpsSent(ids []string, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.ClientApplication{}).
		Where("id IN ?", ids).
		Update("follow_up_sent_at", sentAt).Error
}
