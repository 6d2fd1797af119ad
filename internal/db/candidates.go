package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// SaveCandidate stores one analyzed resume and returns the record ID.
// Re-uploading the same email replaces the previous extraction; re-analysis
// always produces a fresh record state, never an in-place field edit.
func (db *DB) SaveCandidate(ctx context.Context, resume *types.ParsedResume) (uuid.UUID, error) {
	experienceJSON, err := json.Marshal(resume.Experience)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal experience: %w", err)
	}
	educationJSON, err := json.Marshal(resume.Education)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal education: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, skills, experience, education, summary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (email) DO UPDATE
		 SET name = $1, phone = $3, skills = $4, experience = $5, education = $6, summary = $7
		 RETURNING id`,
		resume.Name, resume.Email, resume.Phone, StringArray(resume.Skills),
		experienceJSON, educationJSON, resume.Summary,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil without error when
// no record exists.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	var c Candidate
	var experienceJSON, educationJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, skills, experience, education, summary, created_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Skills, &experienceJSON, &educationJSON, &c.Summary, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if err := decodeCandidateJSON(&c, experienceJSON, educationJSON); err != nil {
		return nil, err
	}
	return &c, nil
}

// CandidateFilters holds optional filters for listing candidates
type CandidateFilters struct {
	Name  string
	Skill string
	Limit int
}

// ListCandidates retrieves recent candidates with optional filters.
func (db *DB) ListCandidates(ctx context.Context, filters CandidateFilters) ([]Candidate, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, name, email, phone, skills, experience, education, summary, created_at
		FROM candidates WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Name != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argNum)
		args = append(args, "%"+filters.Name+"%")
		argNum++
	}
	if filters.Skill != "" {
		query += fmt.Sprintf(" AND skills::text ILIKE $%d", argNum)
		args = append(args, "%"+filters.Skill+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	return scanCandidates(rows)
}

// scanCandidates drains a candidate result set. An iteration error discards
// the partial list rather than returning it silently truncated.
func scanCandidates(rows pgx.Rows) ([]Candidate, error) {
	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		var experienceJSON, educationJSON []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Skills, &experienceJSON, &educationJSON, &c.Summary, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if err := decodeCandidateJSON(&c, experienceJSON, educationJSON); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// DeleteCandidate removes a candidate record. Returns false without error
// when no record exists.
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete candidate: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func decodeCandidateJSON(c *Candidate, experienceJSON, educationJSON []byte) error {
	if len(experienceJSON) > 0 {
		if err := json.Unmarshal(experienceJSON, &c.Experience); err != nil {
			return fmt.Errorf("failed to decode experience: %w", err)
		}
	}
	if len(educationJSON) > 0 {
		if err := json.Unmarshal(educationJSON, &c.Education); err != nil {
			return fmt.Errorf("failed to decode education: %w", err)
		}
	}
	return nil
}
