package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time,omitempty"`
	Details any    `json:"details,omitempty"`
}
