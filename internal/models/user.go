package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Name         string   `json:"name,omitempty"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	WorkerProfile *WorkerProfile `gorm:"foreignKey:UserID" json:"worker_profile,omitempty"`
	Jobs          []Job          `gorm:"foreignKey:ClientID" json:"-"`
}
