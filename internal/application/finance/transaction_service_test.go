package finance

import (
	"context"
	"testing"
	"time"

	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createPendingTransaction(t *testing.T, estateID uuid.UUID) *finance.Transaction {
	t.Helper()
	tx, err := finance.NewTransaction(
		estateID,
		finance.DirectionExpense,
		"Begravelse",
		"Begravelsesbyrå faktura",
		decimal.NewFromInt(25000),
		time.Now(),
		uuid.New(),
	)
	require.NoError(t, err)
	return tx
}

func newTransactionService(txRepo *MockTransactionRepository, notificationRepo *MockNotificationRepository) *TransactionService {
	return NewTransactionService(txRepo, notificationRepo, zap.NewNop())
}

func TestTransactionService_Create_Success(t *testing.T) {
	ctx := context.Background()
	txRepo := new(MockTransactionRepository)

	estateID := uuid.New()
	txRepo.On("Save", ctx, mock.AnythingOfType("*finance.Transaction")).Return(nil)

	service := newTransactionService(txRepo, new(MockNotificationRepository))

	result, err := service.Create(ctx, CreateTransactionInput{
		EstateID:    estateID,
		Direction:   "expense",
		Category:    "Begravelse",
		Description: "Begravelsesbyrå faktura",
		Amount:      "25000.00",
		OccurredAt:  time.Now(),
		CreatedBy:   uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, "expense", result.Direction)
	assert.Equal(t, "pending", result.ApprovalStatus)
	assert.Equal(t, "NOK", result.Currency)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(25000)))

	txRepo.AssertExpectations(t)
}

func TestTransactionService_Create_RejectsBadAmount(t *testing.T) {
	ctx := context.Background()
	service := newTransactionService(new(MockTransactionRepository), new(MockNotificationRepository))

	for _, amount := range []string{"", "abc", "12,50"} {
		_, err := service.Create(ctx, CreateTransactionInput{
			EstateID:   uuid.New(),
			Direction:  "income",
			Category:   "Salg",
			Amount:     amount,
			OccurredAt: time.Now(),
			CreatedBy:  uuid.New(),
		})
		require.Error(t, err, "amount %q", amount)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
	}
}

func TestTransactionService_Create_RejectsNegativeAmount(t *testing.T) {
	ctx := context.Background()
	service := newTransactionService(new(MockTransactionRepository), new(MockNotificationRepository))

	_, err := service.Create(ctx, CreateTransactionInput{
		EstateID:   uuid.New(),
		Direction:  "income",
		Category:   "Salg",
		Amount:     "-100",
		OccurredAt: time.Now(),
		CreatedBy:  uuid.New(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
}

func TestTransactionService_Approve_NotifiesCreator(t *testing.T) {
	ctx := context.Background()
	txRepo := new(MockTransactionRepository)
	notificationRepo := new(MockNotificationRepository)

	estateID := uuid.New()
	tx := createPendingTransaction(t, estateID)
	approverID := uuid.New()

	txRepo.On("FindByIDForEstate", ctx, estateID, tx.ID).Return(tx, nil)
	txRepo.On("Save", ctx, tx).Return(nil)
	notificationRepo.On("Save", ctx, mock.AnythingOfType("*engagement.Notification")).Return(nil)

	service := newTransactionService(txRepo, notificationRepo)

	result, err := service.Approve(ctx, ApproveTransactionInput{
		EstateID:      estateID,
		TransactionID: tx.ID,
		ApproverID:    approverID,
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", result.ApprovalStatus)
	require.NotNil(t, result.ApprovedBy)
	assert.Equal(t, approverID, *result.ApprovedBy)

	notificationRepo.AssertExpectations(t)
}

func TestTransactionService_Approve_RejectsNonPending(t *testing.T) {
	ctx := context.Background()
	txRepo := new(MockTransactionRepository)
	notificationRepo := new(MockNotificationRepository)

	estateID := uuid.New()
	tx := createPendingTransaction(t, estateID)
	require.NoError(t, tx.Approve(uuid.New()))

	txRepo.On("FindByIDForEstate", ctx, estateID, tx.ID).Return(tx, nil)

	service := newTransactionService(txRepo, notificationRepo)

	_, err := service.Approve(ctx, ApproveTransactionInput{
		EstateID:      estateID,
		TransactionID: tx.ID,
		ApproverID:    uuid.New(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestTransactionService_Reject_RequiresReason(t *testing.T) {
	ctx := context.Background()
	txRepo := new(MockTransactionRepository)

	estateID := uuid.New()
	tx := createPendingTransaction(t, estateID)

	txRepo.On("FindByIDForEstate", ctx, estateID, tx.ID).Return(tx, nil)

	service := newTransactionService(txRepo, new(MockNotificationRepository))

	_, err := service.Reject(ctx, RejectTransactionInput{
		EstateID:      estateID,
		TransactionID: tx.ID,
		ApproverID:    uuid.New(),
		Reason:        "   ",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_REASON", domainErr.Code)
}

func TestTransactionService_Delete_OnlyPending(t *testing.T) {
	ctx := context.Background()
	txRepo := new(MockTransactionRepository)

	estateID := uuid.New()
	tx := createPendingTransaction(t, estateID)
	require.NoError(t, tx.Approve(uuid.New()))

	txRepo.On("FindByIDForEstate", ctx, estateID, tx.ID).Return(tx, nil)

	service := newTransactionService(txRepo, new(MockNotificationRepository))

	err := service.Delete(ctx, estateID, tx.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	txRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTransactionService_Summary(t *testing.T) {
	ctx := context.Background()
	txRepo := new(MockTransactionRepository)

	estateID := uuid.New()
	txRepo.On("SumByDirectionAndStatus", ctx, estateID, finance.DirectionIncome, finance.ApprovalStatusApproved).
		Return(decimal.NewFromInt(150000), nil)
	txRepo.On("SumByDirectionAndStatus", ctx, estateID, finance.DirectionExpense, finance.ApprovalStatusApproved).
		Return(decimal.NewFromInt(40000), nil)
	txRepo.On("SumByDirectionAndStatus", ctx, estateID, finance.DirectionIncome, finance.ApprovalStatusPending).
		Return(decimal.NewFromInt(5000), nil)
	txRepo.On("SumByDirectionAndStatus", ctx, estateID, finance.DirectionExpense, finance.ApprovalStatusPending).
		Return(decimal.NewFromInt(1200), nil)
	txRepo.On("SumByCategoryAndStatus", ctx, estateID, finance.ApprovalStatusApproved, finance.DirectionExpense).
		Return(map[string]decimal.Decimal{
			"Begravelse": decimal.NewFromInt(30000),
			"Bolig":      decimal.NewFromInt(10000),
		}, nil)
	txRepo.On("SumByCategoryAndStatus", ctx, estateID, finance.ApprovalStatusPending).
		Return(map[string]decimal.Decimal{
			"Bolig": decimal.NewFromInt(1200),
		}, nil)
	txRepo.On("CountUnknownDirection", ctx, estateID).Return(int64(2), nil)

	service := newTransactionService(txRepo, new(MockNotificationRepository))

	summary, err := service.Summary(ctx, estateID)
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(150000)))
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromInt(40000)))
	assert.True(t, summary.NetBalance.Equal(decimal.NewFromInt(110000)))
	assert.True(t, summary.PendingIncome.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summary.PendingExpenses.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, 2, summary.ExcludedCount)

	require.Len(t, summary.Categories, 2)
	assert.True(t, summary.Categories["Begravelse"].Approved.Equal(decimal.NewFromInt(30000)))
	assert.True(t, summary.Categories["Begravelse"].Pending.IsZero())
	assert.True(t, summary.Categories["Bolig"].Approved.Equal(decimal.NewFromInt(10000)))
	assert.True(t, summary.Categories["Bolig"].Pending.Equal(decimal.NewFromInt(1200)))
}

func TestTransactionService_Summary_EmptyEstate(t *testing.T) {
	ctx := context.Background()
	txRepo := new(MockTransactionRepository)

	estateID := uuid.New()
	txRepo.On("SumByDirectionAndStatus", ctx, estateID, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil)
	txRepo.On("SumByCategoryAndStatus", ctx, estateID, finance.ApprovalStatusApproved, finance.DirectionExpense).
		Return(map[string]decimal.Decimal{}, nil)
	txRepo.On("SumByCategoryAndStatus", ctx, estateID, finance.ApprovalStatusPending).
		Return(map[string]decimal.Decimal{}, nil)
	txRepo.On("CountUnknownDirection", ctx, estateID).Return(int64(0), nil)

	service := newTransactionService(txRepo, new(MockNotificationRepository))

	summary, err := service.Summary(ctx, estateID)
	require.NoError(t, err)
	assert.True(t, summary.NetBalance.IsZero())
	assert.Equal(t, 0, summary.ExcludedCount)
	assert.Empty(t, summary.Categories)
}
