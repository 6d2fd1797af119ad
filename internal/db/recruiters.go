package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateRecruiter creates a recruiter account and returns its ID. The
// password hash is set separately so credential handling stays in the auth
// service.
func (db *DB) CreateRecruiter(ctx context.Context, name, email, company string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO recruiters (name, email, company)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, email, company,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create recruiter: %w", err)
	}
	return id, nil
}

// UpdateRecruiterPassword stores a new password hash.
func (db *DB) UpdateRecruiterPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE recruiters SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("recruiter not found: %s", id)
	}
	return nil
}

// GetRecruiter retrieves a recruiter by ID. Returns nil without error when
// no record exists.
func (db *DB) GetRecruiter(ctx context.Context, id uuid.UUID) (*Recruiter, error) {
	var r Recruiter
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(company, ''), COALESCE(password_hash, ''), created_at, updated_at
		 FROM recruiters WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Name, &r.Email, &r.Company, &r.PasswordHash, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recruiter: %w", err)
	}
	return &r, nil
}

// GetRecruiterByEmail retrieves a recruiter by email, including the password
// hash for credential verification. Returns nil without error when no record
// exists.
func (db *DB) GetRecruiterByEmail(ctx context.Context, email string) (*Recruiter, error) {
	var r Recruiter
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(company, ''), COALESCE(password_hash, ''), created_at, updated_at
		 FROM recruiters WHERE email = $1`,
		email,
	).Scan(&r.ID, &r.Name, &r.Email, &r.Company, &r.PasswordHash, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recruiter by email: %w", err)
	}
	return &r, nil
}

// CheckRecruiterEmailExists reports whether an account already uses email.
func (db *DB) CheckRecruiterEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM recruiters WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}
