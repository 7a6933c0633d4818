package estate

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MembershipService manages estate members
type MembershipService struct {
	memberRepo estate.MemberRepository
	logger     *zap.Logger
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(memberRepo estate.MemberRepository, logger *zap.Logger) *MembershipService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MembershipService{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// List returns all members of an estate
func (s *MembershipService) List(ctx context.Context, estateID uuid.UUID) ([]MemberInfo, error) {
	members, err := s.memberRepo.FindAllForEstate(ctx, estateID)
	if err != nil {
		s.logger.Error("Failed to list members", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list members")
	}

	infos := make([]MemberInfo, 0, len(members))
	for i := range members {
		infos = append(infos, memberInfoFromDomain(&members[i]))
	}
	return infos, nil
}

// ChangeRole changes a member's role. The acting member must be allowed
// to manage members, and the last manager cannot be demoted.
func (s *MembershipService) ChangeRole(ctx context.Context, input ChangeMemberRoleInput) (*MemberInfo, error) {
	if err := s.requireManager(ctx, input.EstateID, input.ActorID); err != nil {
		return nil, err
	}

	member, err := s.loadMember(ctx, input.EstateID, input.MemberID)
	if err != nil {
		return nil, err
	}

	newRole := estate.MemberRole(input.Role)
	if member.Role.CanManageMembers() && !newRole.CanManageMembers() {
		if err := s.requireOtherManager(ctx, input.EstateID, member); err != nil {
			return nil, err
		}
	}

	if err := member.ChangeRole(newRole); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		s.logger.Error("Failed to save member role change", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to change member role")
	}

	s.logger.Info("Member role changed",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("member_id", member.ID.String()),
		zap.String("role", string(member.Role)))

	info := memberInfoFromDomain(member)
	return &info, nil
}

// Remove removes a member from an estate. The last member able to manage
// members cannot be removed.
func (s *MembershipService) Remove(ctx context.Context, input RemoveMemberInput) error {
	if err := s.requireManager(ctx, input.EstateID, input.ActorID); err != nil {
		return err
	}

	member, err := s.loadMember(ctx, input.EstateID, input.MemberID)
	if err != nil {
		return err
	}

	if member.Role.CanManageMembers() {
		if err := s.requireOtherManager(ctx, input.EstateID, member); err != nil {
			return err
		}
	}

	if err := s.memberRepo.Delete(ctx, member.ID); err != nil {
		s.logger.Error("Failed to remove member", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove member")
	}

	s.logger.Info("Member removed",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("member_id", member.ID.String()))

	return nil
}

// requireManager verifies the actor is a member allowed to manage members
func (s *MembershipService) requireManager(ctx context.Context, estateID, actorID uuid.UUID) error {
	actor, err := s.memberRepo.FindByEstateAndUser(ctx, estateID, actorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotEstateMember
		}
		s.logger.Error("Failed to load acting member", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to verify membership")
	}
	if !actor.Role.CanManageMembers() {
		return shared.ErrForbidden
	}
	return nil
}

// requireOtherManager verifies another managing member remains besides the given one
func (s *MembershipService) requireOtherManager(ctx context.Context, estateID uuid.UUID, member *estate.Member) error {
	admins, err := s.memberRepo.CountByRole(ctx, estateID, estate.MemberRoleAdministrator)
	if err != nil {
		s.logger.Error("Failed to count managers", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to verify members")
	}
	responsible, err := s.memberRepo.CountByRole(ctx, estateID, estate.MemberRoleResponsibleHeir)
	if err != nil {
		s.logger.Error("Failed to count managers", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to verify members")
	}
	if admins+responsible <= 1 {
		return shared.NewDomainError("LAST_MANAGER", "Estate must keep at least one member who can manage members")
	}
	return nil
}

func (s *MembershipService) loadMember(ctx context.Context, estateID, memberID uuid.UUID) (*estate.Member, error) {
	member, err := s.memberRepo.FindByIDForEstate(ctx, estateID, memberID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load member", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load member")
	}
	return member, nil
}
