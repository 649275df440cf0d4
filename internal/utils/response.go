package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"TAREAS_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the standard {"error", "message"} body
func WriteErrorResponse(w http.ResponseWriter, status int, errText, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errText, Message: message})
}

// DecodeJSONRequest decodes the request body into dst. An empty body leaves
// dst untouched so that missing fields are reported as validation errors.
func DecodeJSONRequest(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
