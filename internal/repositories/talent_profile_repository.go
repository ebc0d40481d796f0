package repositories

import (
	"errors"

	"gorm.io/gorm"

	"totl_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type TalentProfileRepository interface {
	Create(profile *models.TalentProfile) error
	FindByID(id string) (*models.TalentProfile, error)
	FindByUserID(userID string) (*models.TalentProfile, error)
	Update(profile *models.TalentProfile) error
	ListCandidates(limit int) ([]models.TalentProfile, error)
	HasClientRelationship(clientID, talentID string) (bool, error)
}

type TalentProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewTalentProfileRepository(db *gorm.DB) TalentProfileRepository {
	return &TalentProfileRepositoryImpl{db: db}
}

func (r *TalentProfileRepositoryImpl) Create(profile *models.TalentProfile) error {
	return r.db.Create(profile).Error
}

func (r *TalentProfileRepositoryImpl) FindByID(id string) (*models.TalentProfile, error) {
	var profile models.TalentProfile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *TalentProfileRepositoryImpl) FindByUserID(userID string) (*models.TalentProfile, error) {
	var profile models.TalentProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *TalentProfileRepositoryImpl) Update(profile *models.TalentProfile) error {
	return r.db.Save(profile).Error
}

// ListCandidates returns a bounded slice of profiles for name-based slug
// resolution. The cap keeps the lookup from becoming an enumeration vector.
func (r *TalentProfileRepositoryImpl) ListCandidates(limit int) ([]models.TalentProfile, error) {
	var profiles []models.TalentProfile
	err := r.db.Order("created_at ASC").Limit(limit).Find(&profiles).Error
	return profiles, err
}

// HasClientRelationship reports whether the client has an application or a
// booking connecting them to the talent. This is the relationship test the
// contact-visibility gate relies on.
func (r *TalentProfileRepositoryImpl) HasClientRelationship(clientID, talentID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Joins("JOIN gigs ON gigs.id = applications.gig_id").
		Where("gigs.client_id = ? AND applications.talent_id = ?", clientID, talentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.Model(&models.Booking{}).
		Where("client_id = ? AND talent_id = ?", clientID, talentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
