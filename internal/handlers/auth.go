package handlers

import (
	"context"
	"net/http"
	"strconv"

	"TAREAS_BACK-END/internal/dto"
	"TAREAS_BACK-END/internal/models"
	"TAREAS_BACK-END/internal/utils"
)

// UserService is the identity side used by AuthHandler and ProfileHandler.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) error
	ChangePassword(ctx context.Context, userID int64, current, next string) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users UserService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account with name, email and password. The email is stored lower-cased.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.RegisterResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /usuarios/registrar [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.users.Register(r.Context(), req.Nombre, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.RegisterResponse{
		Mensaje: "El usuario se creo correctamente",
		Usuario: dto.UserResponse{ID: user.ID, Nombre: user.Name, Email: user.Email},
	})
}

// Login handles user authentication
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /usuarios/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Token:            session.Token,
		TokenType:        session.TokenType,
		ExpiresInMinutes: int(session.ExpiresIn.Minutes()),
	})
}

// WhoAmI echoes the token identity. Only mounted when APP_DEBUG is on.
// @Summary Token identity (debug)
// @Tags debug
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.WhoAmIResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /debug/whoami [get]
func (h *AuthHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.WhoAmIResponse{Identity: strconv.FormatInt(userID, 10)})
}
