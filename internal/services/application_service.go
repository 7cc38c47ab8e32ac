package services

import (
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, workerID string, req *dto.ApplyRequest) (*models.WorkerApplication, error)
	ListForJob(db *gorm.DB, jobID, requesterID string) ([]dto.ApplicationResponse, error)
	Decide(db *gorm.DB, applicationID, requesterID string, status models.ApplicationStatus) (*models.WorkerApplication, error)
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

// Apply - отклик исполнителя на заявку.
// От дубликата при гонке двух одинаковых запросов защищает составной
// уникальный индекс: вторая вставка вернет ErrDuplicateApplication.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, workerID string, req *dto.ApplyRequest) (*models.WorkerApplication, error) {
	if _, err := s.jobRepo.FindByID(db, req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound("applications", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	app := &models.WorkerApplication{
		JobID:       req.JobID,
		WorkerID:    workerID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(db, app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrConflict(err, "applications",
				"You have already applied to this job")
		}
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}

// ListForJob - отклики по заявке, только для ее владельца
func (s *ApplicationServiceImpl) ListForJob(db *gorm.DB, jobID, requesterID string) ([]dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound("applications", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if job.ClientID != requesterID {
		return nil, apperrors.NewForbiddenError("Only the job owner can view applications")
	}

	apps, err := s.appRepo.FindByJobID(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		result = append(result, dto.NewApplicationResponse(&apps[i]))
	}
	return result, nil
}

// Decide - владелец заявки принимает или отклоняет pending-отклик.
// Принятие назначает исполнителя на заявку (open -> assigned); обе записи
// меняются в одной транзакции, чтобы не получить отклик accepted при
// неназначенной заявке. Оба UPDATE условные: проверки по прочитанным
// статусам выше - лишь ранний отказ, гонку двух конкурентных решений
// разрешает WHERE по текущему статусу.
func (s *ApplicationServiceImpl) Decide(db *gorm.DB, applicationID, requesterID string, status models.ApplicationStatus) (*models.WorkerApplication, error) {
	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound("applications", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(db, app.JobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if job.ClientID != requesterID {
		return nil, apperrors.NewForbiddenError("Only the job owner can decide on applications")
	}

	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrInvalidStatus("applications",
			"Application has already been decided")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.appRepo.UpdateStatus(tx, applicationID, models.ApplicationStatusPending, status); err != nil {
			if apperrors.Is(err, repositories.ErrApplicationDecided) {
				return apperrors.ErrInvalidStatus("applications",
					"Application has already been decided")
			}
			return err
		}

		if status == models.ApplicationStatusAccepted {
			err := s.jobRepo.UpdateIfStatus(tx, job.ID, models.JobStatusOpen, map[string]interface{}{
				"status":    models.JobStatusAssigned,
				"worker_id": app.WorkerID,
			})
			if apperrors.Is(err, repositories.ErrJobStatusConflict) {
				return apperrors.ErrInvalidStatus("applications",
					"Job is no longer open for assignment")
			}
			return err
		}
		return nil
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	app.Status = status
	return app, nil
}
