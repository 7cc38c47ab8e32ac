package models

import "gorm.io/datatypes"

type WorkerProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	Bio            string         `gorm:"type:text" json:"bio"`
	Skills         datatypes.JSON `json:"skills"` // JSON-список строк
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
	Rating         float64        `gorm:"default:0" json:"rating"`
	IsAvailable    bool           `gorm:"default:false" json:"is_available"`
	AvailableHours int            `gorm:"default:0" json:"available_hours"`
}
