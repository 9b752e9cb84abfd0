// Package httpapi exposes the application services over HTTP/JSON.
package httpapi

import (
	"net/http"

	"attendo/internal/ports/input"
	"attendo/internal/ports/output"
)

type Server struct {
	translator   output.T
	participants input.ParticipantUseCase
	events       input.EventUseCase
	attendances  input.AttendanceUseCase
}

func NewServer(
	translator output.T,
	participants input.ParticipantUseCase,
	events input.EventUseCase,
	attendances input.AttendanceUseCase,
) *Server {
	return &Server{
		translator:   translator,
		participants: participants,
		events:       events,
		attendances:  attendances,
	}
}

// Handler returns the routed HTTP handler for the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /participants", s.createParticipant)
	mux.HandleFunc("GET /participants", s.listParticipants)
	mux.HandleFunc("GET /participants/{id}", s.getParticipant)
	mux.HandleFunc("PUT /participants/{id}", s.updateParticipant)
	mux.HandleFunc("DELETE /participants/{id}", s.deleteParticipant)

	mux.HandleFunc("POST /events", s.createEvent)
	mux.HandleFunc("GET /events", s.listEvents)
	mux.HandleFunc("GET /events/{id}", s.getEvent)
	mux.HandleFunc("PUT /events/{id}", s.updateEvent)
	mux.HandleFunc("DELETE /events/{id}", s.deleteEvent)

	mux.HandleFunc("POST /attendances", s.registerAttendance)
	mux.HandleFunc("GET /attendances", s.listAttendances)
	mux.HandleFunc("GET /attendances/statistics", s.getStatistics)

	return mux
}
