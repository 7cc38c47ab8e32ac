package models

import "gorm.io/datatypes"

type Job struct {
	BaseModel
	Title       string   `gorm:"type:varchar(255);not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Price       *float64 `json:"price,omitempty"` // опционально, может проставить AI
	LocationLat float64  `gorm:"not null" json:"location_lat"`
	LocationLng float64  `gorm:"not null" json:"location_lng"`

	ClientID string    `gorm:"type:uuid;not null;index" json:"client_id"`
	WorkerID *string   `gorm:"type:uuid" json:"worker_id,omitempty"` // назначенный исполнитель
	Status   JobStatus `gorm:"type:varchar(50);default:'open'" json:"status"`

	// Произвольные данные: текстовая локация, причина цены от AI, флаги
	Metadata datatypes.JSON `json:"job_metadata,omitempty"`

	// Relations
	Client *User `gorm:"foreignKey:ClientID" json:"-"`
	Worker *User `gorm:"foreignKey:WorkerID" json:"-"`
}
