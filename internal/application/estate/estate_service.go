// Package estate provides application services for estates, members,
// invitations and projects.
package estate

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EstateService manages the estate lifecycle
type EstateService struct {
	estateRepo estate.EstateRepository
	memberRepo estate.MemberRepository
	logger     *zap.Logger
}

// NewEstateService creates a new EstateService
func NewEstateService(
	estateRepo estate.EstateRepository,
	memberRepo estate.MemberRepository,
	logger *zap.Logger,
) *EstateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstateService{
		estateRepo: estateRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// Create creates a new estate and enrolls the creator as responsible heir
func (s *EstateService) Create(ctx context.Context, input CreateEstateInput) (*EstateInfo, error) {
	est, err := estate.NewEstate(input.Name, input.DeceasedName, input.DateOfDeath, input.CreatedBy)
	if err != nil {
		return nil, err
	}
	if input.Description != "" {
		if err := est.Update(est.Name, est.DeceasedName, input.Description, est.DateOfDeath); err != nil {
			return nil, err
		}
	}

	if err := s.estateRepo.Save(ctx, est); err != nil {
		s.logger.Error("Failed to create estate", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create estate")
	}

	member, err := estate.NewMember(est.ID, input.CreatedBy, estate.MemberRoleResponsibleHeir)
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(ctx, member); err != nil {
		// Without a membership row the creator cannot see the estate, undo
		s.logger.Error("Failed to enroll estate creator", zap.Error(err))
		if delErr := s.estateRepo.Delete(ctx, est.ID); delErr != nil {
			s.logger.Error("Failed to roll back estate creation", zap.Error(delErr))
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create estate")
	}

	s.logger.Info("Estate created",
		zap.String("estate_id", est.ID.String()),
		zap.String("created_by", input.CreatedBy.String()))

	info := estateInfoFromDomain(est)
	return &info, nil
}

// Get returns a single estate
func (s *EstateService) Get(ctx context.Context, estateID uuid.UUID) (*EstateInfo, error) {
	est, err := s.loadEstate(ctx, estateID)
	if err != nil {
		return nil, err
	}
	info := estateInfoFromDomain(est)
	return &info, nil
}

// List returns the estates the user is a member of
func (s *EstateService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*EstateListResult, error) {
	estates, total, err := s.estateRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list estates", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list estates")
	}

	infos := make([]EstateInfo, 0, len(estates))
	for i := range estates {
		infos = append(infos, estateInfoFromDomain(&estates[i]))
	}
	return &EstateListResult{Estates: infos, Total: total}, nil
}

// Update changes the estate's descriptive fields
func (s *EstateService) Update(ctx context.Context, input UpdateEstateInput) (*EstateInfo, error) {
	est, err := s.loadEstate(ctx, input.EstateID)
	if err != nil {
		return nil, err
	}

	if err := est.Update(input.Name, input.DeceasedName, input.Description, input.DateOfDeath); err != nil {
		return nil, err
	}

	if err := s.estateRepo.Save(ctx, est); err != nil {
		s.logger.Error("Failed to update estate", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update estate")
	}

	info := estateInfoFromDomain(est)
	return &info, nil
}

// MarkSettled marks the estate as settled
func (s *EstateService) MarkSettled(ctx context.Context, estateID uuid.UUID) (*EstateInfo, error) {
	return s.transition(ctx, estateID, (*estate.Estate).MarkSettled)
}

// Archive archives a settled estate
func (s *EstateService) Archive(ctx context.Context, estateID uuid.UUID) (*EstateInfo, error) {
	return s.transition(ctx, estateID, (*estate.Estate).Archive)
}

// Reopen returns a settled or archived estate to active status
func (s *EstateService) Reopen(ctx context.Context, estateID uuid.UUID) (*EstateInfo, error) {
	return s.transition(ctx, estateID, (*estate.Estate).Reopen)
}

// Delete permanently removes an estate
func (s *EstateService) Delete(ctx context.Context, estateID uuid.UUID) error {
	if err := s.estateRepo.Delete(ctx, estateID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		s.logger.Error("Failed to delete estate", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete estate")
	}

	s.logger.Info("Estate deleted", zap.String("estate_id", estateID.String()))
	return nil
}

func (s *EstateService) transition(ctx context.Context, estateID uuid.UUID, change func(*estate.Estate) error) (*EstateInfo, error) {
	est, err := s.loadEstate(ctx, estateID)
	if err != nil {
		return nil, err
	}

	if err := change(est); err != nil {
		return nil, err
	}

	if err := s.estateRepo.Save(ctx, est); err != nil {
		s.logger.Error("Failed to save estate status change", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update estate")
	}

	s.logger.Info("Estate status changed",
		zap.String("estate_id", est.ID.String()),
		zap.String("status", string(est.Status)))

	info := estateInfoFromDomain(est)
	return &info, nil
}

func (s *EstateService) loadEstate(ctx context.Context, estateID uuid.UUID) (*estate.Estate, error) {
	est, err := s.estateRepo.FindByID(ctx, estateID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load estate", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load estate")
	}
	return est, nil
}
