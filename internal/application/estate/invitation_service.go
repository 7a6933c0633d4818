package estate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/identity"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvitationService manages estate invitations
type InvitationService struct {
	invitationRepo   estate.InvitationRepository
	memberRepo       estate.MemberRepository
	estateRepo       estate.EstateRepository
	userRepo         identity.UserRepository
	notificationRepo engagement.NotificationRepository
	logger           *zap.Logger
}

// NewInvitationService creates a new InvitationService
func NewInvitationService(
	invitationRepo estate.InvitationRepository,
	memberRepo estate.MemberRepository,
	estateRepo estate.EstateRepository,
	userRepo identity.UserRepository,
	notificationRepo engagement.NotificationRepository,
	logger *zap.Logger,
) *InvitationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvitationService{
		invitationRepo:   invitationRepo,
		memberRepo:       memberRepo,
		estateRepo:       estateRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Invite creates a pending invitation for the given email.
// An already pending invitation for the same email is returned instead
// of creating a duplicate.
func (s *InvitationService) Invite(ctx context.Context, input InviteInput) (*InvitationInfo, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.invitationRepo.FindPendingByEstateAndEmail(ctx, input.EstateID, email)
	if err == nil {
		if !existing.IsExpired() {
			info := invitationInfoFromDomain(existing)
			return &info, nil
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to check pending invitations", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create invitation")
	}

	// An existing member must not be invited again
	if user, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		if _, err := s.memberRepo.FindByEstateAndUser(ctx, input.EstateID, user.ID); err == nil {
			return nil, shared.NewDomainError("ALREADY_MEMBER", "User is already a member of this estate")
		} else if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("Failed to check existing membership", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create invitation")
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to look up invited user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create invitation")
	}

	invitation, err := estate.NewInvitation(input.EstateID, email, estate.MemberRole(input.Role), input.InvitedBy)
	if err != nil {
		return nil, err
	}

	if err := s.invitationRepo.Save(ctx, invitation); err != nil {
		s.logger.Error("Failed to save invitation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create invitation")
	}

	s.notifyInvitedUser(ctx, invitation)

	s.logger.Info("Invitation created",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("email", email),
		zap.String("role", string(invitation.Role)))

	info := invitationInfoFromDomain(invitation)
	return &info, nil
}

// Accept accepts an invitation by token and enrolls the user as a member
func (s *InvitationService) Accept(ctx context.Context, input AcceptInvitationInput) (*MemberInfo, error) {
	invitation, err := s.invitationRepo.FindByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_INVITATION", "Invitation not found")
		}
		s.logger.Error("Failed to load invitation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to accept invitation")
	}

	if err := invitation.Accept(input.UserID); err != nil {
		if errors.Is(err, shared.ErrInvitationExpired) {
			// Persist the expired status so subsequent attempts fail fast
			if saveErr := s.invitationRepo.Save(ctx, invitation); saveErr != nil {
				s.logger.Error("Failed to persist expired invitation", zap.Error(saveErr))
			}
		}
		return nil, err
	}

	member, err := estate.NewMember(invitation.EstateID, input.UserID, invitation.Role)
	if err != nil {
		return nil, err
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_MEMBER", "User is already a member of this estate")
		}
		s.logger.Error("Failed to enroll invited member", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to accept invitation")
	}

	if err := s.invitationRepo.Save(ctx, invitation); err != nil {
		s.logger.Error("Failed to persist accepted invitation", zap.Error(err))
	}

	s.logger.Info("Invitation accepted",
		zap.String("estate_id", invitation.EstateID.String()),
		zap.String("user_id", input.UserID.String()))

	info := memberInfoFromDomain(member)
	return &info, nil
}

// Decline declines an invitation by token
func (s *InvitationService) Decline(ctx context.Context, token string) error {
	invitation, err := s.invitationRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_INVITATION", "Invitation not found")
		}
		s.logger.Error("Failed to load invitation", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to decline invitation")
	}

	if err := invitation.Decline(); err != nil {
		return err
	}

	if err := s.invitationRepo.Save(ctx, invitation); err != nil {
		s.logger.Error("Failed to persist declined invitation", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to decline invitation")
	}

	return nil
}

// Revoke deletes a pending invitation
func (s *InvitationService) Revoke(ctx context.Context, estateID, invitationID uuid.UUID) error {
	invitation, err := s.invitationRepo.FindByIDForEstate(ctx, estateID, invitationID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		s.logger.Error("Failed to load invitation", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke invitation")
	}

	if invitation.Status != estate.InvitationStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending invitations can be revoked")
	}

	if err := s.invitationRepo.Delete(ctx, invitation.ID); err != nil {
		s.logger.Error("Failed to delete invitation", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke invitation")
	}

	s.logger.Info("Invitation revoked",
		zap.String("estate_id", estateID.String()),
		zap.String("invitation_id", invitationID.String()))

	return nil
}

// List returns the invitations for an estate
func (s *InvitationService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*InvitationListResult, error) {
	invitations, total, err := s.invitationRepo.FindAllForEstate(ctx, estateID, filter)
	if err != nil {
		s.logger.Error("Failed to list invitations", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list invitations")
	}

	infos := make([]InvitationInfo, 0, len(invitations))
	for i := range invitations {
		infos = append(infos, invitationInfoFromDomain(&invitations[i]))
	}
	return &InvitationListResult{Invitations: infos, Total: total}, nil
}

// notifyInvitedUser creates an in-app notification when the invited email
// belongs to a registered user. Failures only log, the invitation stands.
func (s *InvitationService) notifyInvitedUser(ctx context.Context, invitation *estate.Invitation) {
	user, err := s.userRepo.FindByEmail(ctx, invitation.Email)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Failed to look up invited user for notification", zap.Error(err))
		}
		return
	}

	title := "Du er invitert til et dødsbo"
	body := fmt.Sprintf("Du er invitert som %s. Bruk invitasjonskoden for å bli med.", invitation.Role)
	notification, err := engagement.NewNotification(user.ID, &invitation.EstateID, engagement.NotificationTypeInvitation, title, body)
	if err != nil {
		s.logger.Warn("Failed to build invitation notification", zap.Error(err))
		return
	}

	if err := s.notificationRepo.Save(ctx, notification); err != nil {
		s.logger.Warn("Failed to save invitation notification", zap.Error(err))
	}
}
