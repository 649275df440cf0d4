package users

import (
	"context"

	"TAREAS_BACK-END/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}
