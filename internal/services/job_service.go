package services

import (
	"encoding/json"
	"fmt"

	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type JobService interface {
	Create(db *gorm.DB, clientID string, req *dto.CreateJobRequest) (*models.Job, error)
	Get(db *gorm.DB, jobID string) (*models.Job, error)
	List(db *gorm.DB, q *dto.ListJobsQuery) (*dto.JobListResponse, error)
	Update(db *gorm.DB, jobID, requesterID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(db *gorm.DB, jobID, requesterID string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

// Create - новая заявка, всегда в статусе open
func (s *JobServiceImpl) Create(db *gorm.DB, clientID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ClientID:    clientID,
		Status:      models.JobStatusOpen,
	}

	// Локация: либо пара координат, либо текст, который уходит в metadata
	switch {
	case req.HasCoordinates():
		job.LocationLat = *req.LocationLat
		job.LocationLng = *req.LocationLng
	case req.Location != "":
		meta, err := json.Marshal(map[string]interface{}{"location": req.Location})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Metadata = datatypes.JSON(meta)
	default:
		return nil, apperrors.ValidationError(map[string]string{
			"location": "either location_lat/location_lng or location is required",
		})
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Get - публичное чтение, без проверки владельца
func (s *JobServiceImpl) Get(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound("jobs", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// List - публичный листинг: только open, per_page ограничен сотней
func (s *JobServiceImpl) List(db *gorm.DB, q *dto.ListJobsQuery) (*dto.JobListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	jobs, total, err := s.jobRepo.FindOpen(db, perPage, (page-1)*perPage)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:    jobs,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// Update - частичное обновление; только владелец; статус - по графу переходов
func (s *JobServiceImpl) Update(db *gorm.DB, jobID, requesterID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.Get(db, jobID)
	if err != nil {
		return nil, err
	}

	if job.ClientID != requesterID {
		return nil, apperrors.NewForbiddenError("Only the job owner can modify it")
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.LocationLat != nil {
		fields["location_lat"] = *req.LocationLat
	}
	if req.LocationLng != nil {
		fields["location_lng"] = *req.LocationLng
	}
	if req.Status != nil {
		newStatus := models.JobStatus(*req.Status)
		if !models.CanTransition(job.Status, newStatus) {
			return nil, apperrors.ErrInvalidStatus("jobs",
				fmt.Sprintf("Cannot transition job from '%s' to '%s'", job.Status, newStatus))
		}
		fields["status"] = newStatus
	}

	if len(fields) == 0 {
		return job, nil
	}

	// Условная запись: проверка графа переходов выше сделана по
	// прочитанному статусу, поэтому UPDATE проходит только пока статус
	// не поменял кто-то другой.
	if err := s.jobRepo.UpdateIfStatus(db, jobID, job.Status, fields); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrJobStatusConflict):
			return nil, apperrors.ErrConflict(err, "jobs", "Job status changed concurrently, re-read and retry")
		case apperrors.Is(err, repositories.ErrJobNotFound):
			return nil, apperrors.ErrNotFound("jobs", "Job not found")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	return s.Get(db, jobID)
}

// Delete - жесткое удаление, только владелец
func (s *JobServiceImpl) Delete(db *gorm.DB, jobID, requesterID string) error {
	job, err := s.Get(db, jobID)
	if err != nil {
		return err
	}

	if job.ClientID != requesterID {
		return apperrors.NewForbiddenError("Only the job owner can delete it")
	}

	if err := s.jobRepo.Delete(db, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
