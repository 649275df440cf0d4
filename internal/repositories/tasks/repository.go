package tasks

import (
	"context"

	"TAREAS_BACK-END/internal/models"
)

// Repository is owner-scoped: every lookup and mutation filters on the
// owner id, so a task of another user behaves exactly like a missing one.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByOwner(ctx context.Context, id, ownerID int64) (*models.Task, error)
	UpdateDescription(ctx context.Context, id, ownerID int64, description string) error
	Delete(ctx context.Context, id, ownerID int64) error
}
