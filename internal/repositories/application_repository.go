package repositories

import (
	"errors"

	"gorm.io/gorm"

	"totl_backend/internal/models"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByIDWithGig(id string) (*models.Application, error)
	ListByGig(gigID string) ([]models.Application, error)
	ListByTalent(talentID string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil && isUniqueViolation(err) {
		return ErrApplicationAlreadyExists
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	if err := r.db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

// FindByIDWithGig loads the application together with its gig so callers can
// do the ownership check without a second round trip.
func (r *ApplicationRepositoryImpl) FindByIDWithGig(id string) (*models.Application, error) {
	var application models.Application
	if err := r.db.Preload("Gig").First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByGig(gigID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Talent").
		Where("gig_id = ?", gigID).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByTalent(talentID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Gig").
		Where("talent_id = ?", talentID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}
