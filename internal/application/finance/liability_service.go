package finance

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LiabilityService manages estate liabilities
type LiabilityService struct {
	liabilityRepo finance.LiabilityRepository
	logger        *zap.Logger
}

// NewLiabilityService creates a new LiabilityService
func NewLiabilityService(liabilityRepo finance.LiabilityRepository, logger *zap.Logger) *LiabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiabilityService{
		liabilityRepo: liabilityRepo,
		logger:        logger,
	}
}

// Create registers a new liability
func (s *LiabilityService) Create(ctx context.Context, input CreateLiabilityInput) (*LiabilityInfo, error) {
	value, err := parseAmount(input.Value)
	if err != nil {
		return nil, err
	}

	liability, err := finance.NewLiability(
		input.EstateID,
		input.Name,
		input.Creditor,
		finance.LiabilityCategory(input.Category),
		input.Description,
		value,
		input.DueDate,
		input.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := s.liabilityRepo.Save(ctx, liability); err != nil {
		s.logger.Error("Failed to save liability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register liability")
	}

	s.logger.Info("Liability registered",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("liability_id", liability.ID.String()),
		zap.String("value", liability.Value.String()))

	info := liabilityInfoFromDomain(liability)
	return &info, nil
}

// Get returns a single liability
func (s *LiabilityService) Get(ctx context.Context, estateID, liabilityID uuid.UUID) (*LiabilityInfo, error) {
	liability, err := s.loadLiability(ctx, estateID, liabilityID)
	if err != nil {
		return nil, err
	}
	info := liabilityInfoFromDomain(liability)
	return &info, nil
}

// List returns the liabilities of an estate
func (s *LiabilityService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*LiabilityListResult, error) {
	liabilities, total, err := s.liabilityRepo.FindAllForEstate(ctx, estateID, filter)
	if err != nil {
		s.logger.Error("Failed to list liabilities", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list liabilities")
	}

	infos := make([]LiabilityInfo, 0, len(liabilities))
	for i := range liabilities {
		infos = append(infos, liabilityInfoFromDomain(&liabilities[i]))
	}
	return &LiabilityListResult{Liabilities: infos, Total: total}, nil
}

// Update changes a liability's details
func (s *LiabilityService) Update(ctx context.Context, input UpdateLiabilityInput) (*LiabilityInfo, error) {
	value, err := parseAmount(input.Value)
	if err != nil {
		return nil, err
	}

	liability, err := s.loadLiability(ctx, input.EstateID, input.LiabilityID)
	if err != nil {
		return nil, err
	}

	if err := liability.Update(input.Name, input.Creditor, finance.LiabilityCategory(input.Category), input.Description, value, input.DueDate); err != nil {
		return nil, err
	}

	if err := s.liabilityRepo.Save(ctx, liability); err != nil {
		s.logger.Error("Failed to update liability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update liability")
	}

	info := liabilityInfoFromDomain(liability)
	return &info, nil
}

// Delete removes a liability
func (s *LiabilityService) Delete(ctx context.Context, estateID, liabilityID uuid.UUID) error {
	liability, err := s.loadLiability(ctx, estateID, liabilityID)
	if err != nil {
		return err
	}

	if err := s.liabilityRepo.Delete(ctx, liability.ID); err != nil {
		s.logger.Error("Failed to delete liability", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete liability")
	}
	return nil
}

func (s *LiabilityService) loadLiability(ctx context.Context, estateID, liabilityID uuid.UUID) (*finance.Liability, error) {
	liability, err := s.liabilityRepo.FindByIDForEstate(ctx, estateID, liabilityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load liability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load liability")
	}
	return liability, nil
}
