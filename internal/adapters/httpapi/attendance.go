package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"attendo/internal/domain/entities"
)

type registerAttendanceRequest struct {
	ParticipantID uint `json:"participant_id"`
	EventID       uint `json:"event_id"`
}

type attendanceResponse struct {
	ID            uint      `json:"id"`
	ParticipantID uint      `json:"participant_id"`
	EventID       uint      `json:"event_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAttendanceResponse(a *entities.Attendance) attendanceResponse {
	return attendanceResponse{
		ID:            a.ID,
		ParticipantID: a.ParticipantID,
		EventID:       a.EventID,
		CreatedAt:     a.CreatedAt,
	}
}

type participantSummaryResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type eventSummaryResponse struct {
	ID    uint      `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type attendanceDetailResponse struct {
	attendanceResponse
	Participant participantSummaryResponse `json:"participant"`
	Event       eventSummaryResponse       `json:"event"`
}

type eventStatsResponse struct {
	EventID           uint   `json:"event_id"`
	EventTitle        string `json:"event_title"`
	Capacity          *int   `json:"capacity"` // null = unlimited
	TotalParticipants int64  `json:"total_participants"`
}

func (s *Server) registerAttendance(w http.ResponseWriter, r *http.Request) {
	var req registerAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, r, "error.invalid_body")
		return
	}
	attendance, err := s.attendances.RegisterAttendance(r.Context(), req.ParticipantID, req.EventID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAttendanceResponse(attendance))
}

func (s *Server) listAttendances(w http.ResponseWriter, r *http.Request) {
	details, err := s.attendances.ListAttendances(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]attendanceDetailResponse, 0, len(details))
	for i := range details {
		d := &details[i]
		resp = append(resp, attendanceDetailResponse{
			attendanceResponse: toAttendanceResponse(&d.Attendance),
			Participant: participantSummaryResponse{
				ID:    d.Participant.ID,
				Name:  d.Participant.Name,
				Email: d.Participant.Email,
			},
			Event: eventSummaryResponse{
				ID:    d.Event.ID,
				Title: d.Event.Title,
				Date:  d.Event.Date,
			},
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.attendances.GetStatistics(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]eventStatsResponse, 0, len(stats))
	for _, st := range stats {
		resp = append(resp, eventStatsResponse{
			EventID:           st.EventID,
			EventTitle:        st.EventTitle,
			Capacity:          st.Capacity,
			TotalParticipants: st.TotalParticipants,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
