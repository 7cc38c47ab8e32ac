package services

import (
	"net/http"
	"testing"

	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApplication(id, jobID, workerID string, status models.ApplicationStatus) *models.WorkerApplication {
	app := &models.WorkerApplication{
		JobID:    jobID,
		WorkerID: workerID,
		Status:   status,
	}
	app.ID = id
	return app
}

// TestApply_JobNotFound - отклик на несуществующую заявку
func TestApply_JobNotFound(t *testing.T) {
	svc := NewApplicationService(&mockApplicationRepo{}, &mockJobRepo{})

	_, err := svc.Apply(nil, "worker-1", &dto.ApplyRequest{JobID: "missing-job"})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

// TestApply_Duplicate - повторный отклик того же исполнителя дает 409.
// Дубликат ловит составной уникальный индекс, а не проверка перед вставкой.
func TestApply_Duplicate(t *testing.T) {
	jobRepo := &mockJobRepo{
		FindByIDFn: func(id string) (*models.Job, error) {
			return testJob(id, "client-1", models.JobStatusOpen), nil
		},
	}
	appRepo := &mockApplicationRepo{
		CreateFn: func(app *models.WorkerApplication) error {
			return repositories.ErrDuplicateApplication
		},
	}
	svc := NewApplicationService(appRepo, jobRepo)

	_, err := svc.Apply(nil, "worker-1", &dto.ApplyRequest{JobID: "job-1"})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

// TestApply_Success - новый отклик создается в статусе pending
func TestApply_Success(t *testing.T) {
	jobRepo := &mockJobRepo{
		FindByIDFn: func(id string) (*models.Job, error) {
			return testJob(id, "client-1", models.JobStatusOpen), nil
		},
	}
	var created *models.WorkerApplication
	appRepo := &mockApplicationRepo{
		CreateFn: func(app *models.WorkerApplication) error {
			created = app
			return nil
		},
	}
	svc := NewApplicationService(appRepo, jobRepo)

	app, err := svc.Apply(nil, "worker-1", &dto.ApplyRequest{
		JobID:       "job-1",
		CoverLetter: "I have my own ladder",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, "worker-1", app.WorkerID)
	assert.Equal(t, "I have my own ladder", app.CoverLetter)
}

// TestListForJob_NotOwner - отклики видит только владелец заявки
func TestListForJob_NotOwner(t *testing.T) {
	jobRepo := &mockJobRepo{
		FindByIDFn: func(id string) (*models.Job, error) {
			return testJob(id, "client-1", models.JobStatusOpen), nil
		},
	}
	svc := NewApplicationService(&mockApplicationRepo{}, jobRepo)

	_, err := svc.ListForJob(nil, "job-1", "other-client-2")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

// TestListForJob_Owner - владелец получает все отклики без хеша и лишних полей
func TestListForJob_Owner(t *testing.T) {
	jobRepo := &mockJobRepo{
		FindByIDFn: func(id string) (*models.Job, error) {
			return testJob(id, "client-1", models.JobStatusOpen), nil
		},
	}
	appRepo := &mockApplicationRepo{
		FindByJobIDFn: func(jobID string) ([]models.WorkerApplication, error) {
			return []models.WorkerApplication{
				*testApplication("app-1", jobID, "worker-1", models.ApplicationStatusPending),
				*testApplication("app-2", jobID, "worker-2", models.ApplicationStatusRejected),
			}, nil
		},
	}
	svc := NewApplicationService(appRepo, jobRepo)

	apps, err := svc.ListForJob(nil, "job-1", "client-1")
	require.NoError(t, err)
	require.Len(t, apps, 2)

	assert.Equal(t, "worker-1", apps[0].WorkerID)
	assert.Equal(t, models.ApplicationStatusRejected, apps[1].Status)
}

// TestDecide_NotOwner - решение по отклику принимает только владелец заявки
func TestDecide_NotOwner(t *testing.T) {
	appRepo := &mockApplicationRepo{
		FindByIDFn: func(id string) (*models.WorkerApplication, error) {
			return testApplication(id, "job-1", "worker-1", models.ApplicationStatusPending), nil
		},
	}
	jobRepo := &mockJobRepo{
		FindByIDFn: func(id string) (*models.Job, error) {
			return testJob(id, "client-1", models.JobStatusOpen), nil
		},
	}
	svc := NewApplicationService(appRepo, jobRepo)

	_, err := svc.Decide(nil, "app-1", "other-client-2", models.ApplicationStatusAccepted)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

// TestDecide_AlreadyDecided - повторное решение по не-pending отклику
func TestDecide_AlreadyDecided(t *testing.T) {
	appRepo := &mockApplicationRepo{
		FindByIDFn: func(id string) (*models.WorkerApplication, error) {
			return testApplication(id, "job-1", "worker-1", models.ApplicationStatusAccepted), nil
		},
	}
	jobRepo := &mockJobRepo{
		FindByIDFn: func(id string) (*models.Job, error) {
			return testJob(id, "client-1", models.JobStatusAssigned), nil
		},
	}
	svc := NewApplicationService(appRepo, jobRepo)

	_, err := svc.Decide(nil, "app-1", "client-1", models.ApplicationStatusRejected)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestDecide_NotFound(t *testing.T) {
	svc := NewApplicationService(&mockApplicationRepo{}, &mockJobRepo{})

	_, err := svc.Decide(nil, "missing-app", "client-1", models.ApplicationStatusAccepted)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}
