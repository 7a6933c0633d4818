package estate

import (
	"context"
	"testing"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestMember(t *testing.T, estateID uuid.UUID, role estate.MemberRole) *estate.Member {
	t.Helper()
	member, err := estate.NewMember(estateID, uuid.New(), role)
	require.NoError(t, err)
	return member
}

func TestMembershipService_ChangeRole_Success(t *testing.T) {
	ctx := context.Background()
	memberRepo := new(MockMemberRepository)

	estateID := uuid.New()
	actor := createTestMember(t, estateID, estate.MemberRoleResponsibleHeir)
	target := createTestMember(t, estateID, estate.MemberRoleViewer)

	memberRepo.On("FindByEstateAndUser", ctx, estateID, actor.UserID).Return(actor, nil)
	memberRepo.On("FindByIDForEstate", ctx, estateID, target.ID).Return(target, nil)
	memberRepo.On("Save", ctx, target).Return(nil)

	service := NewMembershipService(memberRepo, zap.NewNop())

	result, err := service.ChangeRole(ctx, ChangeMemberRoleInput{
		EstateID: estateID,
		MemberID: target.ID,
		ActorID:  actor.UserID,
		Role:     "heir",
	})

	require.NoError(t, err)
	assert.Equal(t, "heir", result.Role)
	memberRepo.AssertExpectations(t)
}

func TestMembershipService_ChangeRole_ActorNotMember(t *testing.T) {
	ctx := context.Background()
	memberRepo := new(MockMemberRepository)

	estateID := uuid.New()
	actorID := uuid.New()
	memberRepo.On("FindByEstateAndUser", ctx, estateID, actorID).Return(nil, shared.ErrNotFound)

	service := NewMembershipService(memberRepo, zap.NewNop())

	_, err := service.ChangeRole(ctx, ChangeMemberRoleInput{
		EstateID: estateID,
		MemberID: uuid.New(),
		ActorID:  actorID,
		Role:     "heir",
	})

	assert.ErrorIs(t, err, shared.ErrNotEstateMember)
}

func TestMembershipService_ChangeRole_ActorCannotManage(t *testing.T) {
	ctx := context.Background()
	memberRepo := new(MockMemberRepository)

	estateID := uuid.New()
	actor := createTestMember(t, estateID, estate.MemberRoleHeir)
	memberRepo.On("FindByEstateAndUser", ctx, estateID, actor.UserID).Return(actor, nil)

	service := NewMembershipService(memberRepo, zap.NewNop())

	_, err := service.ChangeRole(ctx, ChangeMemberRoleInput{
		EstateID: estateID,
		MemberID: uuid.New(),
		ActorID:  actor.UserID,
		Role:     "viewer",
	})

	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestMembershipService_ChangeRole_ProtectsLastManager(t *testing.T) {
	ctx := context.Background()
	memberRepo := new(MockMemberRepository)

	estateID := uuid.New()
	actor := createTestMember(t, estateID, estate.MemberRoleResponsibleHeir)

	memberRepo.On("FindByEstateAndUser", ctx, estateID, actor.UserID).Return(actor, nil)
	memberRepo.On("FindByIDForEstate", ctx, estateID, actor.ID).Return(actor, nil)
	memberRepo.On("CountByRole", ctx, estateID, estate.MemberRoleAdministrator).Return(int64(0), nil)
	memberRepo.On("CountByRole", ctx, estateID, estate.MemberRoleResponsibleHeir).Return(int64(1), nil)

	service := NewMembershipService(memberRepo, zap.NewNop())

	_, err := service.ChangeRole(ctx, ChangeMemberRoleInput{
		EstateID: estateID,
		MemberID: actor.ID,
		ActorID:  actor.UserID,
		Role:     "viewer",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "LAST_MANAGER", domainErr.Code)
}

func TestMembershipService_Remove_Success(t *testing.T) {
	ctx := context.Background()
	memberRepo := new(MockMemberRepository)

	estateID := uuid.New()
	actor := createTestMember(t, estateID, estate.MemberRoleAdministrator)
	target := createTestMember(t, estateID, estate.MemberRoleViewer)

	memberRepo.On("FindByEstateAndUser", ctx, estateID, actor.UserID).Return(actor, nil)
	memberRepo.On("FindByIDForEstate", ctx, estateID, target.ID).Return(target, nil)
	memberRepo.On("Delete", ctx, target.ID).Return(nil)

	service := NewMembershipService(memberRepo, zap.NewNop())

	err := service.Remove(ctx, RemoveMemberInput{
		EstateID: estateID,
		MemberID: target.ID,
		ActorID:  actor.UserID,
	})

	require.NoError(t, err)
	memberRepo.AssertExpectations(t)
}

func TestMembershipService_List(t *testing.T) {
	ctx := context.Background()
	memberRepo := new(MockMemberRepository)

	estateID := uuid.New()
	member := createTestMember(t, estateID, estate.MemberRoleHeir)
	memberRepo.On("FindAllForEstate", ctx, estateID).Return([]estate.Member{*member}, nil)

	service := NewMembershipService(memberRepo, zap.NewNop())

	members, err := service.List(ctx, estateID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "heir", members[0].Role)
}
