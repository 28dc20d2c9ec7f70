package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "EN_ATTENTE"
	TaskStatusInProgress TaskStatus = "EN_COURS"
	TaskStatusDone       TaskStatus = "TERMINE"
)

// ValidTaskStatus reports whether s is one of the three task statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task is a unit of work. UserID is the creator, who holds full rights
// regardless of explicit grants.
type Task struct {
	ID          uint64
	Libelle     string
	Description *string
	Status      TaskStatus
	AudioURL    *string
	DateDebut   *time.Time
	DateFin     *time.Time
	UserID      uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Libelle     string
	Description *string
	Status      TaskStatus
	AudioURL    *string
	DateDebut   *time.Time
	DateFin     *time.Time
}

// UpdateTaskInput carries a partial update: nil fields are left untouched.
type UpdateTaskInput struct {
	Libelle     *string
	Description *string
	Status      *TaskStatus
	AudioURL    *string
	DateDebut   *time.Time
	DateFin     *time.Time
}
