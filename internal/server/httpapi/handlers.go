package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/authkeeper/internal/server/services"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// writeResponse renders a service Response; the HTTP status code mirrors the
// status embedded in the response body.
func (s *Server) writeResponse(w http.ResponseWriter, resp *services.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, &services.Response{Status: 400, Message: "invalid JSON payload"})
		return
	}

	resp := s.auth.Register(r.Context(), req.Email, req.Username, req.Password, req.Role)
	s.writeResponse(w, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, &services.Response{Status: 400, Message: "invalid JSON payload"})
		return
	}

	resp, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// Login surfaces internal failures as errors; this is the boundary
		// that turns them into a 500 for the caller.
		s.logger.Error(r.Context(), "login failed", "error", err)
		s.writeResponse(w, &services.Response{Status: 500, Message: services.MsgInternalError})
		return
	}
	s.writeResponse(w, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.logger.Info(r.Context(), "Auth microservice is alive")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Auth microservice is alive"})
}
