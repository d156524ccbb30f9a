package server

import (
	"log"
	"math"
	"net/http"
	"sort"

	"github.com/jonathan/resume-evaluator/internal/db"
	"github.com/jonathan/resume-evaluator/internal/server/middleware"
)

// AdminStats is the response for GET /admin/stats.
type AdminStats struct {
	TotalUsers       int64    `json:"total_users"`
	AvgScore         float64  `json:"avg_score"`
	TopMissingSkills []string `json:"top_missing_skills"`
}

// handleAdminStats reports usage statistics. Requires an admin user.
func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		log.Printf("admin stats user lookup failed: %v", err)
		errorResponse(w, http.StatusInternalServerError, "Failed to load user")
		return
	}
	if user == nil || user.Role != db.RoleAdmin {
		errorResponse(w, http.StatusForbidden, "Admin access required")
		return
	}

	totalUsers, err := s.db.CountUsers(r.Context())
	if err != nil {
		log.Printf("admin stats user count failed: %v", err)
		errorResponse(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	avgScore, err := s.db.AverageScore(r.Context())
	if err != nil {
		log.Printf("admin stats average score failed: %v", err)
		errorResponse(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	lists, err := s.db.ListMissingSkills(r.Context())
	if err != nil {
		log.Printf("admin stats missing skills failed: %v", err)
		errorResponse(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	counts := make(map[string]int)
	for _, skills := range lists {
		for _, skill := range skills {
			counts[skill]++
		}
	}

	jsonResponse(w, http.StatusOK, AdminStats{
		TotalUsers:       totalUsers,
		AvgScore:         math.Round(avgScore*10) / 10,
		TopMissingSkills: topMissingSkills(counts, 5),
	})
}

// topMissingSkills returns the n most frequent skills, most common first with
// ties broken alphabetically. Reports a placeholder when nothing is recorded.
func topMissingSkills(counts map[string]int, n int) []string {
	if len(counts) == 0 {
		return []string{"None yet"}
	}

	skills := make([]string, 0, len(counts))
	for skill := range counts {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if counts[skills[i]] != counts[skills[j]] {
			return counts[skills[i]] > counts[skills[j]]
		}
		return skills[i] < skills[j]
	})

	if len(skills) > n {
		skills = skills[:n]
	}
	return skills
}
