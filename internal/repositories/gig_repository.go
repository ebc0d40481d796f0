package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"totl_backend/internal/models"
)

var ErrGigNotFound = errors.New("gig not found")

type GigRepository interface {
	Create(gig *models.Gig) error
	FindByID(id string) (*models.Gig, error)
	Update(gig *models.Gig) error
	Delete(id string) error
	ListByClient(clientID string) ([]models.Gig, error)
	ListActive(limit, offset int) ([]models.Gig, error)
	UpdateStatus(id string, status models.GigStatus) error
}

type GigRepositoryImpl struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &GigRepositoryImpl{db: db}
}

func (r *GigRepositoryImpl) Create(gig *models.Gig) error {
	return r.db.Create(gig).Error
}

func (r *GigRepositoryImpl) FindByID(id string) (*models.Gig, error) {
	var gig models.Gig
	if err := r.db.First(&gig, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) Update(gig *models.Gig) error {
	return r.db.Save(gig).Error
}

func (r *GigRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Gig{}, "id = ?", id).Error
}

func (r *GigRepositoryImpl) ListByClient(clientID string) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&gigs).Error
	return gigs, err
}

// ListActive returns publicly visible gigs: active status and the deadline,
// when set, not yet passed.
func (r *GigRepositoryImpl) ListActive(limit, offset int) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.
		Where("status = ?", models.GigStatusActive).
		Where("application_deadline IS NULL OR application_deadline > ?", time.Now()).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) UpdateStatus(id string, status models.GigStatus) error {
	return r.db.Model(&models.Gig{}).Where("id = ?", id).Update("status", status).Error
}
