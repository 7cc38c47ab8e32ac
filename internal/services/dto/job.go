package dto

import "workhub_backend/internal/models"

// CreateJobRequest - создание заявки на работу.
// Локация обязательна в одном из двух видов: пара координат
// location_lat/location_lng, либо текстовая location (уходит в metadata).
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
	Location    string   `json:"location"`
}

// HasCoordinates - заданы ли обе координаты
func (r *CreateJobRequest) HasCoordinates() bool {
	return r.LocationLat != nil && r.LocationLng != nil
}

// UpdateJobRequest - частичное обновление: nil-поля не трогаются
type UpdateJobRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	LocationLat *float64 `json:"location_lat,omitempty"`
	LocationLng *float64 `json:"location_lng,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,is-job-status"`
}

// ListJobsQuery - параметры публичного листинга.
// Нечисловые page/per_page отбрасываются еще на биндинге (400).
type ListJobsQuery struct {
	Page    int `form:"page" validate:"omitempty,min=1"`
	PerPage int `form:"per_page" validate:"omitempty,min=1"`
}

// JobListResponse - страница открытых заявок
type JobListResponse struct {
	Jobs    []models.Job `json:"jobs"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
}
