package dto

// TaskRequest is the body of task create and update
type TaskRequest struct {
	Descripcion string `json:"descripcion" example:"Comprar pan"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          int64  `json:"id"`
	Descripcion string `json:"descripcion"`
	UsuarioID   int64  `json:"usuario_id"`
	CreadaEn    string `json:"creada_en" example:"2024-05-01T10:00:00Z"`
}

// TaskCreateResponse is returned after creating a task
type TaskCreateResponse struct {
	Mensaje string       `json:"mensaje"`
	Tarea   TaskResponse `json:"tarea"`
}

// TaskListResponse is one page of tasks
type TaskListResponse struct {
	Tareas   []TaskResponse `json:"tareas"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
