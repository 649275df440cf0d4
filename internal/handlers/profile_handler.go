package handlers

import (
	"net/http"
	"time"

	"TAREAS_BACK-END/internal/dto"
	"TAREAS_BACK-END/internal/models"
	"TAREAS_BACK-END/internal/utils"
)

type ProfileHandler struct {
	users UserService
}

func NewProfileHandler(users UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// GetMe godoc
// @Summary      Get my profile
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /usuarios/me [get]
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{
		ID:       user.ID,
		Nombre:   user.Name,
		Email:    user.Email,
		CreadoEn: user.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// Update godoc
// @Summary      Update my profile
// @Description  Only the supplied fields change. Null or absent fields are left as they are.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProfileUpdateRequest  true  "Fields to change"
// @Success      200      {object}  dto.MessageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /usuarios/me [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.ProfileUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	upd := models.ProfileUpdate{Name: req.Nombre, Email: req.Email}
	if err := h.users.UpdateProfile(r.Context(), userID, upd); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Mensaje: "Perfil actualizado"})
}

// ChangePassword godoc
// @Summary      Change my password
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ChangePasswordRequest  true  "Current and new password"
// @Success      200      {object}  dto.MessageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /usuarios/me/password [put]
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.users.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Mensaje: "Contraseña actualizada"})
}
