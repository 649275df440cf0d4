package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"TAREAS_BACK-END/internal/common"
	"TAREAS_BACK-END/internal/dbx"
	"TAREAS_BACK-END/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns one page of the owner's tasks, newest first.
// The result is never nil.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]models.Task, error) {
	query :=
		`SELECT id, descripcion, usuario_id, creada_en FROM tareas
		 WHERE usuario_id = $1
		 ORDER BY creada_en DESC, id DESC
		 LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.OwnerID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tareas (descripcion, usuario_id)
		 VALUES ($1, $2)
		 RETURNING id, creada_en`

	err := r.db.QueryRow(ctx, query, task.Description, task.OwnerID).
		Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, id, ownerID int64) (*models.Task, error) {
	query :=
		`SELECT id, descripcion, usuario_id, creada_en FROM tareas
		 WHERE id = $1 AND usuario_id = $2`

	t := &models.Task{}
	err := r.db.QueryRow(ctx, query, id, ownerID).
		Scan(&t.ID, &t.Description, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) UpdateDescription(ctx context.Context, id, ownerID int64, description string) error {
	query :=
		`UPDATE tareas SET descripcion = $1
		 WHERE id = $2 AND usuario_id = $3`

	return r.execOwned(ctx, query, description, id, ownerID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	query :=
		`DELETE FROM tareas
		 WHERE id = $1 AND usuario_id = $2`

	return r.execOwned(ctx, query, id, ownerID)
}

// execOwned runs an owner-filtered write. Zero affected rows means the task
// does not exist or belongs to someone else; both are common.ErrNotFound.
func (r *PostgresRepository) execOwned(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
