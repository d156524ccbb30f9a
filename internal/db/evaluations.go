package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SaveEvaluation stores an evaluation outcome. The missing skills are stored
// as a JSON array so the admin aggregates can re-read them.
func (db *DB) SaveEvaluation(ctx context.Context, userEmail string, finalScore int, missingSkills []string) (uuid.UUID, error) {
	if missingSkills == nil {
		missingSkills = []string{}
	}
	payload, err := json.Marshal(missingSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO evaluations (user_email, final_score, missing_skills)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userEmail, finalScore, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return id, nil
}

// AverageScore returns the mean final score across all evaluations, or 0 when
// none exist.
func (db *DB) AverageScore(ctx context.Context) (float64, error) {
	var avg float64
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(final_score), 0) FROM evaluations`,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to compute average score: %w", err)
	}
	return avg, nil
}

// ListMissingSkills returns the stored missing-skill lists of every
// evaluation. Rows with malformed payloads are skipped rather than failing
// the whole aggregate.
func (db *DB) ListMissingSkills(ctx context.Context) ([][]string, error) {
	rows, err := db.pool.Query(ctx, `SELECT missing_skills FROM evaluations`)
	if err != nil {
		return nil, fmt.Errorf("failed to list missing skills: %w", err)
	}
	defer rows.Close()

	var lists [][]string
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan missing skills: %w", err)
		}
		var skills []string
		if err := json.Unmarshal(raw, &skills); err != nil {
			continue
		}
		lists = append(lists, skills)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read missing skills: %w", err)
	}
	return lists, nil
}
