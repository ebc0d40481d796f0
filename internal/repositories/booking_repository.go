package repositories

import (
	"errors"

	"gorm.io/gorm"

	"totl_backend/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	FindByID(id string) (*models.Booking, error)
	FindByApplicationID(applicationID string) (*models.Booking, error)
	ListByClient(clientID string) ([]models.Booking, error)
	ListByTalent(talentID string) ([]models.Booking, error)
	Update(booking *models.Booking) error
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByApplicationID(applicationID string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "application_id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) ListByClient(clientID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Gig").Preload("Talent").
		Where("client_id = ?", clientID).
		Order("date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) ListByTalent(talentID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Gig").
		Where("talent_id = ?", talentID).
		Order("date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}
