package models

import "time"

// Task is a to-do item owned by exactly one user
type Task struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"descripcion" db:"descripcion"`
	OwnerID     int64     `json:"usuario_id" db:"usuario_id"`
	CreatedAt   time.Time `json:"creada_en" db:"creada_en"`
}

// TaskPage is one page of a user's tasks, newest first
type TaskPage struct {
	Tasks    []Task
	Page     int
	PageSize int
}
