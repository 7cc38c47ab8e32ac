package models

// WorkerApplication - отклик исполнителя на Job.
// Уникальный составной индекс (job_id, worker_id) - главная защита
// от дубликатов, в том числе при конкурентных запросах.
type WorkerApplication struct {
	BaseModel
	JobID    string `gorm:"type:uuid;not null;uniqueIndex:idx_job_worker" json:"job_id"`
	WorkerID string `gorm:"type:uuid;not null;uniqueIndex:idx_job_worker" json:"worker_id"`

	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(50);default:'pending'" json:"status"`
	AIScore     *float64          `json:"ai_score,omitempty"` // опциональный AI-ранг, логики пока нет

	// Relations
	Job    *Job  `gorm:"foreignKey:JobID" json:"-"`
	Worker *User `gorm:"foreignKey:WorkerID" json:"-"`
}
