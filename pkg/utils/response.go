package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"unitsync-backend/internal/apperrors"
)

// JSON writes data as a JSON response
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[HTTP] failed to encode response: %v", err)
	}
}

// ErrorMessage writes a plain error response
func ErrorMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Error maps a service error to an HTTP response. Domain errors carry their
// own status and stable code; anything else is a 500 with a generic body.
func Error(w http.ResponseWriter, err error) {
	if e := apperrors.AsError(err); e != nil {
		JSON(w, apperrors.HTTPStatus(err), map[string]string{
			"error": e.Message,
			"code":  e.Code,
		})
		return
	}

	log.Printf("[HTTP] internal error: %v", err)
	ErrorMessage(w, http.StatusInternalServerError, "internal server error")
}
