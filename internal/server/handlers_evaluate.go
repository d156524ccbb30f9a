package server

import (
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-evaluator/internal/ingestion"
)

// maxUploadSize bounds the multipart form, resume file included.
const maxUploadSize = 10 << 20

// handleEvaluate scores an uploaded resume against a job description. The
// form carries the JD text in jd_data, the resume in file, and optionally the
// requesting user's email for history tracking.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	jdText := r.FormValue("jd_data")
	if jdText == "" {
		errorResponse(w, http.StatusBadRequest, "jd_data is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	resumeText, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.evaluator.Evaluate(r.Context(), jdText, resumeText)

	// Persistence is best effort. A storage outage must not block the
	// evaluation response.
	if email := r.FormValue("email"); email != "" && !result.IsRejection() {
		if _, err := s.db.SaveEvaluation(r.Context(), email, result.FinalScore, result.MissingSkills); err != nil {
			log.Printf("failed to save evaluation for %s: %v", email, err)
		}
	}

	jsonResponse(w, http.StatusOK, result)
}
