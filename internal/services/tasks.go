package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"TAREAS_BACK-END/internal/common"
	"TAREAS_BACK-END/internal/dbx"
	"TAREAS_BACK-END/internal/logging"
	"TAREAS_BACK-END/internal/models"
	"TAREAS_BACK-END/internal/repositories/repomanager"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage keeps (page-1)*pageSize within int.
	MaxPage = math.MaxInt / MaxPageSize
)

// NormalizePage clamps page to [1, MaxPage] and pageSize to [1, MaxPageSize].
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// TaskService is owner-scoped CRUD on tasks. The owner always comes from the
// authenticated caller, never from request data.
type TaskService struct {
	db          dbx.Pool
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewTaskService(db dbx.Pool, m repomanager.RepositoryManager, log logging.Logger) *TaskService {
	return &TaskService{db: db, repomanager: m, log: log}
}

func (s *TaskService) List(ctx context.Context, userID int64, page, pageSize int) (*models.TaskPage, error) {
	page, pageSize = NormalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	list, err := s.repomanager.Tasks(s.db).ListByOwner(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, s.internal(ctx, "list tasks", err)
	}
	if list == nil {
		list = []models.Task{}
	}

	return &models.TaskPage{Tasks: list, Page: page, PageSize: pageSize}, nil
}

func (s *TaskService) Create(ctx context.Context, userID int64, description string) (*models.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, common.Validation("'descripcion' es requerida")
	}

	var task *models.Task
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		task, err = s.repomanager.Tasks(tx).Create(ctx, &models.Task{Description: description, OwnerID: userID})
		return err
	})
	if err != nil {
		return nil, s.internal(ctx, "create task", err)
	}

	return task, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	task, err := s.repomanager.Tasks(s.db).GetByOwner(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFound("Tarea no encontrada")
		}
		return nil, s.internal(ctx, "get task", err)
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID int64, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return common.Validation("'descripcion' es requerida")
	}

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Tasks(tx).UpdateDescription(ctx, taskID, userID, description)
	})
	return s.ownedWriteError(ctx, "update task", err)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Tasks(tx).Delete(ctx, taskID, userID)
	})
	return s.ownedWriteError(ctx, "delete task", err)
}

func (s *TaskService) ownedWriteError(ctx context.Context, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrNotFound):
		return common.NotFound("Tarea no encontrada o sin permisos")
	default:
		return s.internal(ctx, op, err)
	}
}

func (s *TaskService) internal(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, op+" failed", "error", err)
	return common.ErrInternal
}
