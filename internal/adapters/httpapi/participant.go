package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"attendo/internal/domain"
	"attendo/internal/domain/entities"
)

type createParticipantRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type updateParticipantRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// participantResponse is the wire shape of a participant. The credential
// secret is never serialized.
type participantResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone,omitempty"`
	Attendances []attendanceResponse `json:"attendances,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func toParticipantResponse(p *entities.Participant) participantResponse {
	resp := participantResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, a := range p.Attendances {
		resp.Attendances = append(resp.Attendances, toAttendanceResponse(&a))
	}
	return resp
}

func (s *Server) createParticipant(w http.ResponseWriter, r *http.Request) {
	var req createParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, r, "error.invalid_body")
		return
	}
	participant := &entities.Participant{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if err := s.participants.CreateParticipant(r.Context(), participant); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toParticipantResponse(participant))
}

func (s *Server) listParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := s.participants.ListParticipants(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]participantResponse, 0, len(participants))
	for i := range participants {
		resp = append(resp, toParticipantResponse(&participants[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.badRequest(w, r, "error.invalid_id")
		return
	}
	participant, err := s.participants.GetParticipant(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipantResponse(participant))
}

func (s *Server) updateParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.badRequest(w, r, "error.invalid_id")
		return
	}
	var req updateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, r, "error.invalid_body")
		return
	}
	upd := entities.ParticipantUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if err := s.participants.UpdateParticipant(r.Context(), id, upd); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.message(w, r, http.StatusOK, "message.participant_updated")
}

func (s *Server) deleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.badRequest(w, r, "error.invalid_id")
		return
	}
	affected, err := s.participants.DeleteParticipant(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if affected == 0 {
		s.writeError(w, r, domain.ErrParticipantNotFound)
		return
	}
	s.message(w, r, http.StatusOK, "message.participant_deleted")
}
