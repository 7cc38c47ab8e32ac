package dto

import "workhub_backend/internal/models"

// ApplyRequest - отклик исполнителя на заявку
type ApplyRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

// DecideApplicationRequest - решение владельца заявки по отклику
type DecideApplicationRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

// ApplicationResponse - представление отклика для владельца заявки
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	WorkerID    string                   `json:"worker_id"`
	CoverLetter string                   `json:"cover_letter"`
	Status      models.ApplicationStatus `json:"status"`
	AIScore     *float64                 `json:"ai_score,omitempty"`
}

// NewApplicationResponse строит ApplicationResponse из модели
func NewApplicationResponse(app *models.WorkerApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:          app.ID,
		WorkerID:    app.WorkerID,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
		AIScore:     app.AIScore,
	}
}
