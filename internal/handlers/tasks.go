package handlers

import (
	"context"
	"net/http"
	"time"

	"TAREAS_BACK-END/internal/dto"
	"TAREAS_BACK-END/internal/models"
	"TAREAS_BACK-END/internal/utils"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// TaskService is the owner-scoped task API used by TaskHandler.
type TaskService interface {
	List(ctx context.Context, userID int64, page, pageSize int) (*models.TaskPage, error)
	Create(ctx context.Context, userID int64, description string) (*models.Task, error)
	Get(ctx context.Context, userID, taskID int64) (*models.Task, error)
	Update(ctx context.Context, userID, taskID int64, description string) error
	Delete(ctx context.Context, userID, taskID int64) error
}

// TaskHandler handles /tareas requests. Every call is scoped to the caller.
type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func toTaskResponse(t models.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Descripcion: t.Description,
		UsuarioID:   t.OwnerID,
		CreadaEn:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// taskID parses {id}. Anything that is not a positive integer is a 404,
// like a route that does not exist.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.ParseID(r.PathValue("id"))
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Tarea no encontrada")
	}
	return id, ok
}

// List godoc
// @Summary      List my tasks
// @Description  Newest first. page defaults to 1, page_size to 20 (max 100).
// @Tags         tareas
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  dto.TaskListResponse
// @Failure      401        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /tareas/obtener [get]
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(r.URL.Query(), defaultPage, defaultPageSize)
	result, err := h.tasks.List(r.Context(), userID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]dto.TaskResponse, 0, len(result.Tasks))
	for _, t := range result.Tasks {
		items = append(items, toTaskResponse(t))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TaskListResponse{
		Tareas:   items,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// Create godoc
// @Summary      Create a task
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.TaskRequest  true  "Task"
// @Success      201      {object}  dto.TaskCreateResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /tareas/crear [post]
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.tasks.Create(r.Context(), userID, req.Descripcion)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.TaskCreateResponse{
		Mensaje: "Tarea creada exitosamente",
		Tarea:   toTaskResponse(*task),
	})
}

// Get godoc
// @Summary      Get one of my tasks
// @Tags         tareas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /tareas/tarea/{id} [get]
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toTaskResponse(*task))
}

// Update godoc
// @Summary      Change the description of one of my tasks
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int              true  "Task ID"
// @Param        payload  body      dto.TaskRequest  true  "New description"
// @Success      200      {object}  dto.MessageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /tareas/modificar/{id} [put]
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.tasks.Update(r.Context(), userID, id, req.Descripcion); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Mensaje: "Tarea actualizada"})
}

// Delete godoc
// @Summary      Delete one of my tasks
// @Tags         tareas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /tareas/tarea/{id} [delete]
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Mensaje: "Tarea eliminada"})
}
