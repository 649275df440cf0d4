package dto

// ProfileResponse is the caller's own profile
type ProfileResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	CreadoEn string `json:"creado_en" example:"2024-05-01T10:00:00Z"`
}

// ProfileUpdateRequest holds optional fields; null or absent means unchanged
type ProfileUpdateRequest struct {
	Nombre *string `json:"nombre,omitempty"`
	Email  *string `json:"email,omitempty"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
