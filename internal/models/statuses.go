package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleWorker UserRole = "worker"
	UserRoleClient UserRole = "client"

	JobStatusOpen      JobStatus = "open"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// jobTransitions - разрешенный граф переходов статусов заявки на работу.
// Любой другой переход отклоняется сервисом.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:     {JobStatusAssigned, JobStatusCancelled},
	JobStatusAssigned: {JobStatusCompleted},
}

// CanTransition проверяет допустим ли переход статуса Job
func CanTransition(from, to JobStatus) bool {
	for _, allowed := range jobTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidJobStatus проверяет что строка является известным статусом
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusOpen, JobStatusAssigned, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}
