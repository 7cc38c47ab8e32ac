package services

import (
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"

	"gorm.io/gorm"
)

/*
Ручные моки репозиториев для unit-тестов сервисов.
Незаданная функция ведет себя как пустая БД: Find* возвращает
sentinel "не найдено", мутации молча проходят.
*/

type mockUserRepo struct {
	CreateFn      func(user *models.User) error
	FindByIDFn    func(id string) (*models.User, error)
	FindByEmailFn func(email string) (*models.User, error)
	ExistsFn      func(username, email string) (bool, error)
}

func (m *mockUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(id)
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(email)
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(_ *gorm.DB, username, email string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(username, email)
	}
	return false, nil
}

type mockJobRepo struct {
	CreateFn         func(job *models.Job) error
	FindByIDFn       func(id string) (*models.Job, error)
	FindOpenFn       func(limit, offset int) ([]models.Job, int64, error)
	UpdateIfStatusFn func(jobID string, expected models.JobStatus, fields map[string]interface{}) error
	DeleteFn         func(jobID string) error
}

func (m *mockJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	if m.CreateFn != nil {
		return m.CreateFn(job)
	}
	return nil
}

func (m *mockJobRepo) FindByID(_ *gorm.DB, id string) (*models.Job, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(id)
	}
	return nil, repositories.ErrJobNotFound
}

func (m *mockJobRepo) FindOpen(_ *gorm.DB, limit, offset int) ([]models.Job, int64, error) {
	if m.FindOpenFn != nil {
		return m.FindOpenFn(limit, offset)
	}
	return nil, 0, nil
}

func (m *mockJobRepo) UpdateIfStatus(_ *gorm.DB, jobID string, expected models.JobStatus, fields map[string]interface{}) error {
	if m.UpdateIfStatusFn != nil {
		return m.UpdateIfStatusFn(jobID, expected, fields)
	}
	return nil
}

func (m *mockJobRepo) Delete(_ *gorm.DB, jobID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(jobID)
	}
	return nil
}

type mockApplicationRepo struct {
	CreateFn       func(app *models.WorkerApplication) error
	FindByIDFn     func(id string) (*models.WorkerApplication, error)
	FindByJobIDFn  func(jobID string) ([]models.WorkerApplication, error)
	UpdateStatusFn func(id string, from, to models.ApplicationStatus) error
}

func (m *mockApplicationRepo) Create(_ *gorm.DB, app *models.WorkerApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(app)
	}
	return nil
}

func (m *mockApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.WorkerApplication, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(id)
	}
	return nil, repositories.ErrApplicationNotFound
}

func (m *mockApplicationRepo) FindByJobID(_ *gorm.DB, jobID string) ([]models.WorkerApplication, error) {
	if m.FindByJobIDFn != nil {
		return m.FindByJobIDFn(jobID)
	}
	return nil, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ *gorm.DB, id string, from, to models.ApplicationStatus) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(id, from, to)
	}
	return nil
}

type mockWorkerProfileRepo struct {
	CreateFn              func(profile *models.WorkerProfile) error
	FindByIDFn            func(id string) (*models.WorkerProfile, error)
	FindByUserIDFn        func(userID string) (*models.WorkerProfile, error)
	UpdateFn              func(profileID string, fields map[string]interface{}) error
	FindWithCoordinatesFn func() ([]models.WorkerProfile, error)
}

func (m *mockWorkerProfileRepo) Create(_ *gorm.DB, profile *models.WorkerProfile) error {
	if m.CreateFn != nil {
		return m.CreateFn(profile)
	}
	return nil
}

func (m *mockWorkerProfileRepo) FindByID(_ *gorm.DB, id string) (*models.WorkerProfile, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(id)
	}
	return nil, repositories.ErrWorkerProfileNotFound
}

func (m *mockWorkerProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.WorkerProfile, error) {
	if m.FindByUserIDFn != nil {
		return m.FindByUserIDFn(userID)
	}
	return nil, repositories.ErrWorkerProfileNotFound
}

func (m *mockWorkerProfileRepo) Update(_ *gorm.DB, profileID string, fields map[string]interface{}) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(profileID, fields)
	}
	return nil
}

func (m *mockWorkerProfileRepo) FindWithCoordinates(_ *gorm.DB) ([]models.WorkerProfile, error) {
	if m.FindWithCoordinatesFn != nil {
		return m.FindWithCoordinatesFn()
	}
	return nil, nil
}
