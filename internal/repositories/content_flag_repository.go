package repositories

import (
	"errors"

	"gorm.io/gorm"

	"totl_backend/internal/models"
)

var ErrFlagNotFound = errors.New("content flag not found")

type ContentFlagRepository interface {
	Create(flag *models.ContentFlag) error
	FindByID(id string) (*models.ContentFlag, error)
	ListByStatus(status models.FlagStatus, limit, offset int) ([]models.ContentFlag, error)
	Update(flag *models.ContentFlag) error
}

type ContentFlagRepositoryImpl struct {
	db *gorm.DB
}

func NewContentFlagRepository(db *gorm.DB) ContentFlagRepository {
	return &ContentFlagRepositoryImpl{db: db}
}

func (r *ContentFlagRepositoryImpl) Create(flag *models.ContentFlag) error {
	return r.db.Create(flag).Error
}

func (r *ContentFlagRepositoryImpl) FindByID(id string) (*models.ContentFlag, error) {
	var flag models.ContentFlag
	if err := r.db.First(&flag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlagNotFound
		}
		return nil, err
	}
	return &flag, nil
}

func (r *ContentFlagRepositoryImpl) ListByStatus(status models.FlagStatus, limit, offset int) ([]models.ContentFlag, error) {
	var flags []models.ContentFlag
	err := r.db.Preload("Reporter").
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&flags).Error
	return flags, err
}

func (r *ContentFlagRepositoryImpl) Update(flag *models.ContentFlag) error {
	return r.db.Save(flag).Error
}
