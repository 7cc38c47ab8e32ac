package repositories

import (
	"errors"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrJobStatusConflict = errors.New("job status changed since it was read")
)

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindOpen(db *gorm.DB, limit, offset int) ([]models.Job, int64, error)
	UpdateIfStatus(db *gorm.DB, jobID string, expected models.JobStatus, fields map[string]interface{}) error
	Delete(db *gorm.DB, jobID string) error
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindOpen возвращает страницу открытых заявок и общее их количество.
// Публичный листинг никогда не видит не-open записи.
func (r *jobRepository) FindOpen(db *gorm.DB, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	q := db.Model(&models.Job{}).Where("status = ?", models.JobStatusOpen)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// UpdateIfStatus пишет только переданные поля и только пока статус
// совпадает с прочитанным (compare-and-swap по колонке status).
// Конкурентная смена статуса дает ErrJobStatusConflict, а не потерянную
// запись.
func (r *jobRepository) UpdateIfStatus(db *gorm.DB, jobID string, expected models.JobStatus, fields map[string]interface{}) error {
	result := db.Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, expected).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Либо заявка удалена, либо статус уже другой - различаем
		var count int64
		if err := db.Model(&models.Job{}).Where("id = ?", jobID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrJobNotFound
		}
		return ErrJobStatusConflict
	}
	return nil
}

func (r *jobRepository) Delete(db *gorm.DB, jobID string) error {
	result := db.Where("id = ?", jobID).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
