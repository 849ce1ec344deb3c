package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gulfstaffing/manpower-review/internal/docview"
	"github.com/gulfstaffing/manpower-review/internal/review"
	"github.com/gulfstaffing/manpower-review/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, docview.ErrNoDocument),
		errors.Is(err, docview.ErrNoPayload):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, docview.ErrUndecodable):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotCompleted),
		errors.Is(err, review.ErrInFlight):
		return http.StatusConflict
	}
	return http.StatusBadGateway
}
