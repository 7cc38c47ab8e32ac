package repositories

import (
	"errors"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWorkerProfileNotFound = errors.New("worker profile not found")

type WorkerProfileRepository interface {
	Create(db *gorm.DB, profile *models.WorkerProfile) error
	FindByID(db *gorm.DB, id string) (*models.WorkerProfile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.WorkerProfile, error)
	Update(db *gorm.DB, profileID string, fields map[string]interface{}) error
	FindWithCoordinates(db *gorm.DB) ([]models.WorkerProfile, error)
}

type workerProfileRepository struct{}

func NewWorkerProfileRepository() WorkerProfileRepository {
	return &workerProfileRepository{}
}

func (r *workerProfileRepository) Create(db *gorm.DB, profile *models.WorkerProfile) error {
	return db.Create(profile).Error
}

func (r *workerProfileRepository) FindByID(db *gorm.DB, id string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *workerProfileRepository) FindByUserID(db *gorm.DB, userID string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *workerProfileRepository) Update(db *gorm.DB, profileID string, fields map[string]interface{}) error {
	result := db.Model(&models.WorkerProfile{}).Where("id = ?", profileID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerProfileNotFound
	}
	return nil
}

// FindWithCoordinates возвращает профили с заполненными координатами
// для поиска "рядом". Фильтрация по радиусу остается в сервисе.
func (r *workerProfileRepository) FindWithCoordinates(db *gorm.DB) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := db.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&profiles).Error
	return profiles, err
}
