package handlers

import (
	"errors"
	"net/http"

	"TAREAS_BACK-END/internal/common"
	"TAREAS_BACK-END/internal/utils"
)

// writeServiceError maps a service error kind to its status. Internal errors
// never expose a message.
func writeServiceError(w http.ResponseWriter, err error) {
	msg := common.PublicMessage(err)
	switch {
	case errors.Is(err, common.ErrValidation):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", msg)
	case errors.Is(err, common.ErrUnauthorized):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", msg)
	case errors.Is(err, common.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", msg)
	case errors.Is(err, common.ErrConflict):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", msg)
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// decodeBody decodes the JSON body or writes a 400/413 and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := utils.DecodeJSONRequest(r, dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Payload Too Large", "")
		return false
	}
	utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
	return false
}

// callerID reads the id put in the context by AuthMiddleware.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing user in context")
	}
	return id, ok
}
