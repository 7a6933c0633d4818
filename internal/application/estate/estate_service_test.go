package estate

import (
	"context"
	"errors"
	"testing"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestEstate(t *testing.T, createdBy uuid.UUID) *estate.Estate {
	t.Helper()
	est, err := estate.NewEstate("Dødsboet etter Ola Nordmann", "Ola Nordmann", nil, createdBy)
	require.NoError(t, err)
	return est
}

func TestEstateService_Create_EnrollsCreatorAsResponsibleHeir(t *testing.T) {
	ctx := context.Background()
	estateRepo := new(MockEstateRepository)
	memberRepo := new(MockMemberRepository)

	creatorID := uuid.New()
	estateRepo.On("Save", ctx, mock.AnythingOfType("*estate.Estate")).Return(nil)
	memberRepo.On("Save", ctx, mock.MatchedBy(func(m *estate.Member) bool {
		return m.UserID == creatorID && m.Role == estate.MemberRoleResponsibleHeir
	})).Return(nil)

	service := NewEstateService(estateRepo, memberRepo, zap.NewNop())

	result, err := service.Create(ctx, CreateEstateInput{
		Name:         "Dødsboet etter Ola Nordmann",
		DeceasedName: "Ola Nordmann",
		CreatedBy:    creatorID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Dødsboet etter Ola Nordmann", result.Name)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, creatorID, result.CreatedBy)

	estateRepo.AssertExpectations(t)
	memberRepo.AssertExpectations(t)
}

func TestEstateService_Create_RollsBackWhenEnrollmentFails(t *testing.T) {
	ctx := context.Background()
	estateRepo := new(MockEstateRepository)
	memberRepo := new(MockMemberRepository)

	creatorID := uuid.New()
	estateRepo.On("Save", ctx, mock.AnythingOfType("*estate.Estate")).Return(nil)
	memberRepo.On("Save", ctx, mock.AnythingOfType("*estate.Member")).Return(errors.New("db down"))
	estateRepo.On("Delete", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)

	service := NewEstateService(estateRepo, memberRepo, zap.NewNop())

	_, err := service.Create(ctx, CreateEstateInput{
		Name:         "Dødsboet etter Ola Nordmann",
		DeceasedName: "Ola Nordmann",
		CreatedBy:    creatorID,
	})

	require.Error(t, err)
	estateRepo.AssertExpectations(t)
}

func TestEstateService_Create_RejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	service := NewEstateService(new(MockEstateRepository), new(MockMemberRepository), zap.NewNop())

	_, err := service.Create(ctx, CreateEstateInput{
		Name:      "   ",
		CreatedBy: uuid.New(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_NAME", domainErr.Code)
}

func TestEstateService_MarkSettled(t *testing.T) {
	ctx := context.Background()
	estateRepo := new(MockEstateRepository)

	est := createTestEstate(t, uuid.New())
	estateRepo.On("FindByID", ctx, est.ID).Return(est, nil)
	estateRepo.On("Save", ctx, est).Return(nil)

	service := NewEstateService(estateRepo, new(MockMemberRepository), zap.NewNop())

	result, err := service.MarkSettled(ctx, est.ID)
	require.NoError(t, err)
	assert.Equal(t, "settled", result.Status)
}

func TestEstateService_Reopen_RejectsActiveEstate(t *testing.T) {
	ctx := context.Background()
	estateRepo := new(MockEstateRepository)

	est := createTestEstate(t, uuid.New())
	estateRepo.On("FindByID", ctx, est.ID).Return(est, nil)

	service := NewEstateService(estateRepo, new(MockMemberRepository), zap.NewNop())

	_, err := service.Reopen(ctx, est.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestEstateService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	estateRepo := new(MockEstateRepository)

	id := uuid.New()
	estateRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	service := NewEstateService(estateRepo, new(MockMemberRepository), zap.NewNop())

	_, err := service.Get(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEstateService_List(t *testing.T) {
	ctx := context.Background()
	estateRepo := new(MockEstateRepository)

	userID := uuid.New()
	est := createTestEstate(t, userID)
	filter := shared.DefaultFilter()

	estateRepo.On("FindAllForUser", ctx, userID, filter).Return([]estate.Estate{*est}, int64(1), nil)

	service := NewEstateService(estateRepo, new(MockMemberRepository), zap.NewNop())

	result, err := service.List(ctx, userID, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Estates, 1)
	assert.Equal(t, est.Name, result.Estates[0].Name)
}
