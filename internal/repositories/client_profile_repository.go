package repositories

import (
	"errors"

	"gorm.io/gorm"

	"totl_backend/internal/models"
)

type ClientProfileRepository interface {
	FindByUserID(userID string) (*models.ClientProfile, error)
	Update(profile *models.ClientProfile) error
}

type ClientProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewClientProfileRepository(db *gorm.DB) ClientProfileRepository {
	return &ClientProfileRepositoryImpl{db: db}
}

func (r *ClientProfileRepositoryImpl) FindByUserID(userID string) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ClientProfileRepositoryImpl) Update(profile *models.ClientProfile) error {
	return r.db.Save(profile).Error
}
