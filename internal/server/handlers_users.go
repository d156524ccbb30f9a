package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/resume-evaluator/internal/db"
)

// VerifyUserRequest is the payload for POST /verify-user.
type VerifyUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// handleVerifyUser resolves the role for an externally authenticated email,
// creating the user on first sight. Storage failures fall back to the default
// role so sign-in keeps working through an outage.
func (s *Server) handleVerifyUser(w http.ResponseWriter, r *http.Request) {
	var req VerifyUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		errorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := s.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("verify-user lookup failed for %s: %v", req.Email, err)
		jsonResponse(w, http.StatusOK, map[string]string{"role": db.RoleUser})
		return
	}

	if user == nil {
		if _, err := s.db.CreateUser(r.Context(), req.Email, req.Name, db.RoleUser); err != nil {
			log.Printf("verify-user create failed for %s: %v", req.Email, err)
		}
		jsonResponse(w, http.StatusOK, map[string]string{"role": db.RoleUser})
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"role": user.Role})
}
