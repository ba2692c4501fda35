package config

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/goals-api/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("Failed to encode response")
	}
}

// Error writes err as a {"details": ...} body with the matching status code.
// Server-side failures are logged with their cause.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.Status(err)
	if status >= http.StatusInternalServerError {
		WithContext(r.Context()).WithError(err).
			WithField("path", r.URL.Path).
			Error("Request failed")
	}
	JSON(w, status, map[string]string{"details": apperror.Details(err)})
}
