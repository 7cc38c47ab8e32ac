package repositories

import (
	"errors"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrApplicationDecided   = errors.New("application has already been decided")
	ErrDuplicateApplication = errors.New("application for this job already exists")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.WorkerApplication) error
	FindByID(db *gorm.DB, id string) (*models.WorkerApplication, error)
	FindByJobID(db *gorm.DB, jobID string) ([]models.WorkerApplication, error)
	UpdateStatus(db *gorm.DB, id string, from, to models.ApplicationStatus) error
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

// Create вставляет отклик. Нарушение составного индекса (job_id, worker_id)
// переводится в ErrDuplicateApplication - именно индекс гарантирует
// "ровно один отклик" при конкурентных запросах, а не проверка в сервисе.
func (r *applicationRepository) Create(db *gorm.DB, app *models.WorkerApplication) error {
	if err := db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepository) FindByID(db *gorm.DB, id string) (*models.WorkerApplication, error) {
	var app models.WorkerApplication
	if err := db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindByJobID - явный запрос вместо ленивой загрузки через relation
func (r *applicationRepository) FindByJobID(db *gorm.DB, jobID string) ([]models.WorkerApplication, error) {
	var apps []models.WorkerApplication
	err := db.Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

// UpdateStatus переводит отклик from -> to одним условным UPDATE.
// Второй конкурентный перевод того же отклика не пройдет по WHERE
// и получит ErrApplicationDecided.
func (r *applicationRepository) UpdateStatus(db *gorm.DB, id string, from, to models.ApplicationStatus) error {
	result := db.Model(&models.WorkerApplication{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.WorkerApplication{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrApplicationNotFound
		}
		return ErrApplicationDecided
	}
	return nil
}
