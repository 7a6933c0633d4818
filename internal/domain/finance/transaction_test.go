package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPendingTransaction(t *testing.T) *Transaction {
	tx, err := NewTransaction(uuid.New(), DirectionExpense, "begravelse", "Bårebil", decimal.NewFromInt(4500), time.Now(), uuid.New())
	require.NoError(t, err)
	return tx
}

func TestNewTransaction(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		tx := createPendingTransaction(t)
		assert.Equal(t, ApprovalStatusPending, tx.ApprovalStatus)
		assert.True(t, tx.IsPending())
		assert.False(t, tx.IsApproved())
		assert.Equal(t, "NOK", string(tx.Currency))
	})

	t.Run("rejects unknown direction", func(t *testing.T) {
		_, err := NewTransaction(uuid.New(), TransactionDirection("transfer"), "annet", "", decimal.NewFromInt(100), time.Now(), uuid.New())
		require.Error(t, err)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewTransaction(uuid.New(), DirectionIncome, "annet", "", decimal.Zero, time.Now(), uuid.New())
		require.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewTransaction(uuid.New(), DirectionIncome, "annet", "", decimal.NewFromInt(-5), time.Now(), uuid.New())
		require.Error(t, err)
	})

	t.Run("rejects empty category", func(t *testing.T) {
		_, err := NewTransaction(uuid.New(), DirectionIncome, "  ", "", decimal.NewFromInt(100), time.Now(), uuid.New())
		require.Error(t, err)
	})
}

func TestTransactionApprove(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		tx := createPendingTransaction(t)
		approver := uuid.New()
		require.NoError(t, tx.Approve(approver))
		assert.True(t, tx.IsApproved())
		require.NotNil(t, tx.ApprovedBy)
		assert.Equal(t, approver, *tx.ApprovedBy)
		assert.NotNil(t, tx.ApprovedAt)
		assert.NotEmpty(t, tx.GetDomainEvents())
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		tx := createPendingTransaction(t)
		require.NoError(t, tx.Approve(uuid.New()))
		require.Error(t, tx.Approve(uuid.New()))
	})

	t.Run("cannot approve with nil approver", func(t *testing.T) {
		tx := createPendingTransaction(t)
		require.Error(t, tx.Approve(uuid.Nil))
	})
}

func TestTransactionReject(t *testing.T) {
	t.Run("reject requires reason", func(t *testing.T) {
		tx := createPendingTransaction(t)
		require.Error(t, tx.Reject(uuid.New(), "  "))
	})

	t.Run("reject pending", func(t *testing.T) {
		tx := createPendingTransaction(t)
		require.NoError(t, tx.Reject(uuid.New(), "mangler kvittering"))
		assert.Equal(t, ApprovalStatusRejected, tx.ApprovalStatus)
		assert.Equal(t, "mangler kvittering", tx.RejectedReason)
	})

	t.Run("cannot reject approved", func(t *testing.T) {
		tx := createPendingTransaction(t)
		require.NoError(t, tx.Approve(uuid.New()))
		require.Error(t, tx.Reject(uuid.New(), "nei"))
	})
}

func TestTransactionUpdate(t *testing.T) {
	t.Run("pending transaction can be edited", func(t *testing.T) {
		tx := createPendingTransaction(t)
		err := tx.Update(DirectionIncome, "forsikring", "Utbetaling", decimal.NewFromInt(12000), time.Now())
		require.NoError(t, err)
		assert.Equal(t, DirectionIncome, tx.Direction)
		assert.Equal(t, "12000", tx.Amount.String())
	})

	t.Run("approved transaction is immutable", func(t *testing.T) {
		tx := createPendingTransaction(t)
		require.NoError(t, tx.Approve(uuid.New()))
		err := tx.Update(DirectionIncome, "forsikring", "", decimal.NewFromInt(1), time.Now())
		require.Error(t, err)
	})
}

func TestAssetValidation(t *testing.T) {
	estateID := uuid.New()

	t.Run("creates with non-negative value", func(t *testing.T) {
		a, err := NewAsset(estateID, "Leilighet Majorstuen", AssetCategoryProperty, "", decimal.NewFromInt(4500000), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "NOK", string(a.Currency))
	})

	t.Run("zero value is allowed", func(t *testing.T) {
		_, err := NewAsset(estateID, "Gammel bil", AssetCategoryVehicle, "", decimal.Zero, uuid.New())
		require.NoError(t, err)
	})

	t.Run("rejects negative value", func(t *testing.T) {
		_, err := NewAsset(estateID, "Leilighet", AssetCategoryProperty, "", decimal.NewFromInt(-1), uuid.New())
		require.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewAsset(estateID, "Noe", AssetCategory("crypto"), "", decimal.NewFromInt(1), uuid.New())
		require.Error(t, err)
	})
}

func TestLiabilityValidation(t *testing.T) {
	estateID := uuid.New()

	t.Run("creates with due date", func(t *testing.T) {
		due := time.Now().Add(30 * 24 * time.Hour)
		l, err := NewLiability(estateID, "Boliglån", "DNB", LiabilityCategoryMortgage, "", decimal.NewFromInt(2100000), &due, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, l.DueDate)
	})

	t.Run("rejects negative value", func(t *testing.T) {
		_, err := NewLiability(estateID, "Restskatt", "Skatteetaten", LiabilityCategoryTax, "", decimal.NewFromInt(-100), nil, uuid.New())
		require.Error(t, err)
	})
}
