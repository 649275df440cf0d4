package dto

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Nombre   string `json:"nombre" example:"Ana"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"s3cret"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Mensaje string       `json:"mensaje"`
	Usuario UserResponse `json:"usuario"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"s3cret"`
}

// LoginResponse carries the bearer token
type LoginResponse struct {
	Token            string `json:"token"`
	TokenType        string `json:"token_type" example:"Bearer"`
	ExpiresInMinutes int    `json:"expires_in_minutes" example:"60"`
}

// UserResponse represents user data in API responses
type UserResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// WhoAmIResponse echoes the token subject
type WhoAmIResponse struct {
	Identity string `json:"identity"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the body of mutations that return no entity
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}
