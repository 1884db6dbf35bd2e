package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope wraps every JSON response of the API
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func (s *Server) success(w http.ResponseWriter, r *http.Request, data any) {
	s.writeJSON(w, r, http.StatusOK, Envelope{Success: true, Data: data, RequestID: GetRequestID(r.Context())})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.writeJSON(w, r, status, Envelope{
		Success:   false,
		Error:     &Error{Code: code, Message: message},
		RequestID: GetRequestID(r.Context()),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload Envelope) {
	if err := WriteJSON(w, status, payload); err != nil {
		s.logger.Warn("Failed to write JSON response",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}
