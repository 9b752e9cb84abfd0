package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"attendo/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("⚠️ error al escribir la respuesta: %v", err)
		}
	}
}

// locale picks the response language straight from the Accept-Language
// header; the translator handles fallback.
func locale(r *http.Request) string {
	return r.Header.Get("Accept-Language")
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// classify maps a service error to its message catalog key and HTTP status.
// Business-rule failures are 400/404; anything unclassified is a persistence
// failure and surfaces as 500.
func classify(err error) (key string, status int) {
	switch {
	case errors.Is(err, domain.ErrParticipantNotFound):
		return "error.participant_not_found", http.StatusNotFound
	case errors.Is(err, domain.ErrEventNotFound):
		return "error.event_not_found", http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return "error.already_registered", http.StatusBadRequest
	case errors.Is(err, domain.ErrEventFull):
		return "error.event_full", http.StatusBadRequest
	case errors.Is(err, domain.ErrEmailTaken):
		return "error.email_taken", http.StatusBadRequest
	case errors.Is(err, domain.ErrNameEmailRequired):
		return "error.name_email_required", http.StatusBadRequest
	case errors.Is(err, domain.ErrPasswordRequired):
		return "error.password_required", http.StatusBadRequest
	case errors.Is(err, domain.ErrTitleRequired):
		return "error.title_required", http.StatusBadRequest
	case errors.Is(err, domain.ErrDateRequired):
		return "error.date_required", http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCapacity):
		return "error.invalid_capacity", http.StatusBadRequest
	default:
		return "error.internal", http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	key, status := classify(err)
	if status == http.StatusInternalServerError {
		// Persistence detail is logged, never leaked to the caller.
		log.Printf("⚠️ error interno: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: s.translator.T(locale(r), key, nil)})
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, key string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: s.translator.T(locale(r), key, nil)})
}

func (s *Server) message(w http.ResponseWriter, r *http.Request, status int, key string) {
	writeJSON(w, status, messageResponse{Message: s.translator.T(locale(r), key, nil)})
}
