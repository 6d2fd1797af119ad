package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// Candidate is the persisted record for one successfully analyzed resume.
// The analysis itself is derived and recomputed on demand, so only the
// extracted resume fields are stored.
type Candidate struct {
	ID         uuid.UUID              `json:"id"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	Skills     StringArray            `json:"skills"`     // JSONB array
	Experience []types.WorkExperience `json:"experience"` // JSONB
	Education  []types.Education      `json:"education"`  // JSONB
	Summary    string                 `json:"summary"`
	CreatedAt  time.Time              `json:"created_at"`
}

// Resume converts the stored record back into the pipeline's canonical shape.
func (c *Candidate) Resume() *types.ParsedResume {
	return &types.ParsedResume{
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Skills:     c.Skills,
		Experience: c.Experience,
		Education:  c.Education,
		Summary:    c.Summary,
	}
}

// Recruiter is a stored recruiter account.
type Recruiter struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Company      string    `json:"company,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
