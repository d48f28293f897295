package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondError translates error codes to HTTP statuses. Internal causes
// never leak: anything mapping to 500 answers with a generic message.
func respondError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	respondJSON(w, status, map[string]string{"error": msg})
}
