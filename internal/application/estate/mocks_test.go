package estate

import (
	"context"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/identity"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEstateRepository is a mock implementation of estate.EstateRepository
type MockEstateRepository struct {
	mock.Mock
}

func (m *MockEstateRepository) Save(ctx context.Context, est *estate.Estate) error {
	args := m.Called(ctx, est)
	return args.Error(0)
}

func (m *MockEstateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEstateRepository) FindByID(ctx context.Context, id uuid.UUID) (*estate.Estate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estate.Estate), args.Error(1)
}

func (m *MockEstateRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]estate.Estate, int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]estate.Estate), args.Get(1).(int64), args.Error(2)
}

// MockMemberRepository is a mock implementation of estate.MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Save(ctx context.Context, member *estate.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*estate.Member, error) {
	args := m.Called(ctx, estateID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estate.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByEstateAndUser(ctx context.Context, estateID, userID uuid.UUID) (*estate.Member, error) {
	args := m.Called(ctx, estateID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estate.Member), args.Error(1)
}

func (m *MockMemberRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID) ([]estate.Member, error) {
	args := m.Called(ctx, estateID)
	return args.Get(0).([]estate.Member), args.Error(1)
}

func (m *MockMemberRepository) CountByRole(ctx context.Context, estateID uuid.UUID, role estate.MemberRole) (int64, error) {
	args := m.Called(ctx, estateID, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockInvitationRepository is a mock implementation of estate.InvitationRepository
type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Save(ctx context.Context, invitation *estate.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *MockInvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvitationRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*estate.Invitation, error) {
	args := m.Called(ctx, estateID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estate.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) FindByToken(ctx context.Context, token string) (*estate.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estate.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]estate.Invitation, int64, error) {
	args := m.Called(ctx, estateID, filter)
	return args.Get(0).([]estate.Invitation), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvitationRepository) FindPendingByEstateAndEmail(ctx context.Context, estateID uuid.UUID, email string) (*estate.Invitation, error) {
	args := m.Called(ctx, estateID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estate.Invitation), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockNotificationRepository is a mock implementation of engagement.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *engagement.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*engagement.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engagement.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]engagement.Notification, int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]engagement.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllReadForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
