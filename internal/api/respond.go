package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	apperrors "vehiclebooking/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Printf("Error encoding response: %v", err)
	}
}

// writeError maps the error's kind to an HTTP status. Internal errors are
// logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logrus.Printf("Internal error: %v", err)
		message = "internal server error"
	}
	writeJSON(w, status, map[string]string{"error": message})
}
