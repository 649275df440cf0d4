package dto

// RouteInfo describes one mounted path and the methods it accepts
type RouteInfo struct {
	Rule    string `json:"rule" example:"/tareas/tarea/{id}"`
	Methods string `json:"methods" example:"DELETE,GET"`
}
