package identity

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	// Create creates a new profile
	// Returns shared.ErrAlreadyExists if a profile for the user already exists
	Create(ctx context.Context, profile *Profile) error

	// Update updates an existing profile
	Update(ctx context.Context, profile *Profile) error

	// Delete deletes a profile by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a profile by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// FindByUserID finds the profile belonging to a user
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
}
