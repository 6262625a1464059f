package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"salonbook/internal/httperr"
	"salonbook/internal/repository"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Warnf("failed to encode response: %v", err)
	}
}

// writeError maps service errors onto the response taxonomy: validation
// failures keep their status and message, a lost slot race becomes 409 so
// the caller refreshes its slot list, everything else is a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *httperr.Error
	switch {
	case errors.As(err, &httpErr):
		writeJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
	case errors.Is(err, repository.ErrSlotTaken):
		writeJSON(w, http.StatusConflict, map[string]string{"error": repository.ErrSlotTaken.Error()})
	default:
		logrus.Errorf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
