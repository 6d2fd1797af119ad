// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/types"
)

// DBClient is the storage surface the auth service needs. *db.DB satisfies
// it; tests substitute an in-memory implementation.
type DBClient interface {
	CheckRecruiterEmailExists(ctx context.Context, email string) (bool, error)
	CreateRecruiter(ctx context.Context, name, email, company string) (uuid.UUID, error)
	UpdateRecruiterPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	GetRecruiter(ctx context.Context, id uuid.UUID) (*db.Recruiter, error)
	GetRecruiterByEmail(ctx context.Context, email string) (*db.Recruiter, error)
}

// AuthService provides business logic for recruiter authentication.
type AuthService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(db DBClient, passwordConfig *config.PasswordConfig) *AuthService {
	return &AuthService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// toAPIRecruiter converts a stored recruiter to its API shape, excluding the
// password hash.
func toAPIRecruiter(stored *db.Recruiter) *types.Recruiter {
	if stored == nil {
		return nil
	}
	return &types.Recruiter{
		ID:        stored.ID,
		Name:      stored.Name,
		Email:     stored.Email,
		Company:   stored.Company,
		CreatedAt: stored.CreatedAt,
		UpdatedAt: stored.UpdatedAt,
	}
}

// Register creates a new recruiter account with password authentication.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.Recruiter, error) {
	exists, err := s.db.CheckRecruiterEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	recruiterID, err := s.db.CreateRecruiter(ctx, req.Name, req.Email, req.Company)
	if err != nil {
		return nil, fmt.Errorf("failed to create recruiter: %w", err)
	}

	if err := s.db.UpdateRecruiterPassword(ctx, recruiterID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	stored, err := s.db.GetRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created recruiter: %w", err)
	}
	if stored == nil {
		return nil, &ErrRecruiterNotFound{RecruiterID: recruiterID}
	}

	return toAPIRecruiter(stored), nil
}

// Login verifies credentials and returns the recruiter on success.
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.Recruiter, error) {
	stored, err := s.db.GetRecruiterByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up recruiter: %w", err)
	}
	// Run the same failure path whether the account exists or not so the
	// response does not reveal which emails are registered.
	if stored == nil || stored.PasswordHash == "" {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, stored.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIRecruiter(stored), nil
}

// UpdatePassword changes a recruiter's password after verifying the current
// one.
func (s *AuthService) UpdatePassword(ctx context.Context, recruiterID uuid.UUID, currentPassword, newPassword string) error {
	stored, err := s.db.GetRecruiter(ctx, recruiterID)
	if err != nil {
		return fmt.Errorf("failed to look up recruiter: %w", err)
	}
	if stored == nil {
		return &ErrRecruiterNotFound{RecruiterID: recruiterID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, stored.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.UpdateRecruiterPassword(ctx, recruiterID, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
