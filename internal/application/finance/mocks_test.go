package finance

import (
	"context"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock implementation of finance.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Save(ctx context.Context, transaction *finance.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*finance.Transaction, error) {
	args := m.Called(ctx, estateID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]finance.Transaction, int64, error) {
	args := m.Called(ctx, estateID, filter)
	return args.Get(0).([]finance.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SumByDirectionAndStatus(ctx context.Context, estateID uuid.UUID, direction finance.TransactionDirection, status finance.ApprovalStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, estateID, direction, status)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SumByCategoryAndStatus(ctx context.Context, estateID uuid.UUID, status finance.ApprovalStatus, directions ...finance.TransactionDirection) (map[string]decimal.Decimal, error) {
	callArgs := []any{ctx, estateID, status}
	for _, d := range directions {
		callArgs = append(callArgs, d)
	}
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) CountUnknownDirection(ctx context.Context, estateID uuid.UUID) (int64, error) {
	args := m.Called(ctx, estateID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAssetRepository is a mock implementation of finance.AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Save(ctx context.Context, asset *finance.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*finance.Asset, error) {
	args := m.Called(ctx, estateID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]finance.Asset, int64, error) {
	args := m.Called(ctx, estateID, filter)
	return args.Get(0).([]finance.Asset), args.Get(1).(int64), args.Error(2)
}

func (m *MockAssetRepository) SumValueForEstate(ctx context.Context, estateID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, estateID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockLiabilityRepository is a mock implementation of finance.LiabilityRepository
type MockLiabilityRepository struct {
	mock.Mock
}

func (m *MockLiabilityRepository) Save(ctx context.Context, liability *finance.Liability) error {
	args := m.Called(ctx, liability)
	return args.Error(0)
}

func (m *MockLiabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLiabilityRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*finance.Liability, error) {
	args := m.Called(ctx, estateID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]finance.Liability, int64, error) {
	args := m.Called(ctx, estateID, filter)
	return args.Get(0).([]finance.Liability), args.Get(1).(int64), args.Error(2)
}

func (m *MockLiabilityRepository) SumValueForEstate(ctx context.Context, estateID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, estateID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
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
