package estate

import (
	"context"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EstateRepository defines the interface for estate persistence
type EstateRepository interface {
	Save(ctx context.Context, estate *Estate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Estate, error)
	// FindAllForUser returns estates the user is a member of
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Estate, int64, error)
}

// ProjectRepository defines the interface for estate project persistence
type ProjectRepository interface {
	Save(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Project, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]Project, int64, error)
}

// MemberRepository defines the interface for estate member persistence
type MemberRepository interface {
	Save(ctx context.Context, member *Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Member, error)
	FindByEstateAndUser(ctx context.Context, estateID, userID uuid.UUID) (*Member, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID) ([]Member, error)
	CountByRole(ctx context.Context, estateID uuid.UUID, role MemberRole) (int64, error)
}

// InvitationRepository defines the interface for invitation persistence
type InvitationRepository interface {
	Save(ctx context.Context, invitation *Invitation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Invitation, error)
	FindByToken(ctx context.Context, token string) (*Invitation, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]Invitation, int64, error)
	FindPendingByEstateAndEmail(ctx context.Context, estateID uuid.UUID, email string) (*Invitation, error)
}
