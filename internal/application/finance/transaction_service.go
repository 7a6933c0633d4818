// Package finance provides application services for transactions,
// assets and liabilities.
package finance

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionService manages estate transactions and the financial summary
type TransactionService struct {
	transactionRepo  finance.TransactionRepository
	notificationRepo engagement.NotificationRepository
	logger           *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo finance.TransactionRepository,
	notificationRepo engagement.NotificationRepository,
	logger *zap.Logger,
) *TransactionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionService{
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Create records a new pending transaction
func (s *TransactionService) Create(ctx context.Context, input CreateTransactionInput) (*TransactionInfo, error) {
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	tx, err := finance.NewTransaction(
		input.EstateID,
		finance.TransactionDirection(input.Direction),
		input.Category,
		input.Description,
		amount,
		input.OccurredAt,
		input.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		s.logger.Error("Failed to save transaction", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record transaction")
	}

	s.logger.Info("Transaction recorded",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("transaction_id", tx.ID.String()),
		zap.String("direction", string(tx.Direction)),
		zap.String("amount", tx.Amount.String()))

	info := transactionInfoFromDomain(tx)
	return &info, nil
}

// Get returns a single transaction
func (s *TransactionService) Get(ctx context.Context, estateID, transactionID uuid.UUID) (*TransactionInfo, error) {
	tx, err := s.loadTransaction(ctx, estateID, transactionID)
	if err != nil {
		return nil, err
	}
	info := transactionInfoFromDomain(tx)
	return &info, nil
}

// List returns the transactions of an estate
func (s *TransactionService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*TransactionListResult, error) {
	transactions, total, err := s.transactionRepo.FindAllForEstate(ctx, estateID, filter)
	if err != nil {
		s.logger.Error("Failed to list transactions", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list transactions")
	}

	infos := make([]TransactionInfo, 0, len(transactions))
	for i := range transactions {
		infos = append(infos, transactionInfoFromDomain(&transactions[i]))
	}
	return &TransactionListResult{Transactions: infos, Total: total}, nil
}

// Update edits a pending transaction
func (s *TransactionService) Update(ctx context.Context, input UpdateTransactionInput) (*TransactionInfo, error) {
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	tx, err := s.loadTransaction(ctx, input.EstateID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if err := tx.Update(finance.TransactionDirection(input.Direction), input.Category, input.Description, amount, input.OccurredAt); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		s.logger.Error("Failed to update transaction", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update transaction")
	}

	info := transactionInfoFromDomain(tx)
	return &info, nil
}

// Approve approves a pending transaction and notifies its creator
func (s *TransactionService) Approve(ctx context.Context, input ApproveTransactionInput) (*TransactionInfo, error) {
	tx, err := s.loadTransaction(ctx, input.EstateID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if err := tx.Approve(input.ApproverID); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		s.logger.Error("Failed to save approved transaction", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to approve transaction")
	}

	s.notifyCreator(ctx, tx, engagement.NotificationTypeTransactionApproved,
		"Transaksjon godkjent", "Transaksjonen "+tx.Category+" er godkjent.")

	s.logger.Info("Transaction approved",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("transaction_id", tx.ID.String()),
		zap.String("approved_by", input.ApproverID.String()))

	info := transactionInfoFromDomain(tx)
	return &info, nil
}

// Reject rejects a pending transaction with a reason and notifies its creator
func (s *TransactionService) Reject(ctx context.Context, input RejectTransactionInput) (*TransactionInfo, error) {
	tx, err := s.loadTransaction(ctx, input.EstateID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if err := tx.Reject(input.ApproverID, input.Reason); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		s.logger.Error("Failed to save rejected transaction", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reject transaction")
	}

	s.notifyCreator(ctx, tx, engagement.NotificationTypeTransactionRejected,
		"Transaksjon avvist", "Transaksjonen "+tx.Category+" ble avvist: "+tx.RejectedReason)

	s.logger.Info("Transaction rejected",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("transaction_id", tx.ID.String()))

	info := transactionInfoFromDomain(tx)
	return &info, nil
}

// Delete removes a transaction. Approved and rejected transactions are
// part of the audit trail and cannot be deleted.
func (s *TransactionService) Delete(ctx context.Context, estateID, transactionID uuid.UUID) error {
	tx, err := s.loadTransaction(ctx, estateID, transactionID)
	if err != nil {
		return err
	}

	if !tx.IsPending() {
		return shared.NewDomainError("INVALID_STATE", "Only pending transactions can be deleted")
	}

	if err := s.transactionRepo.Delete(ctx, tx.ID); err != nil {
		s.logger.Error("Failed to delete transaction", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete transaction")
	}
	return nil
}

// Summary computes the estate's financial summary from aggregated sums,
// including the per-category expense breakdown. Only approved amounts
// count toward the totals; rows whose direction is not a known value are
// excluded and reported in ExcludedCount.
func (s *TransactionService) Summary(ctx context.Context, estateID uuid.UUID) (*finance.Summary, error) {
	summary := finance.EmptySummary()

	var err error
	if summary.TotalIncome, err = s.transactionRepo.SumByDirectionAndStatus(ctx, estateID, finance.DirectionIncome, finance.ApprovalStatusApproved); err != nil {
		return nil, s.summaryError(err)
	}
	if summary.TotalExpenses, err = s.transactionRepo.SumByDirectionAndStatus(ctx, estateID, finance.DirectionExpense, finance.ApprovalStatusApproved); err != nil {
		return nil, s.summaryError(err)
	}
	if summary.PendingIncome, err = s.transactionRepo.SumByDirectionAndStatus(ctx, estateID, finance.DirectionIncome, finance.ApprovalStatusPending); err != nil {
		return nil, s.summaryError(err)
	}
	if summary.PendingExpenses, err = s.transactionRepo.SumByDirectionAndStatus(ctx, estateID, finance.DirectionExpense, finance.ApprovalStatusPending); err != nil {
		return nil, s.summaryError(err)
	}

	approvedByCategory, err := s.transactionRepo.SumByCategoryAndStatus(ctx, estateID, finance.ApprovalStatusApproved, finance.DirectionExpense)
	if err != nil {
		return nil, s.summaryError(err)
	}
	pendingByCategory, err := s.transactionRepo.SumByCategoryAndStatus(ctx, estateID, finance.ApprovalStatusPending)
	if err != nil {
		return nil, s.summaryError(err)
	}
	for category, amount := range approvedByCategory {
		c := summary.Categories[category]
		c.Approved = amount
		summary.Categories[category] = c
	}
	for category, amount := range pendingByCategory {
		c := summary.Categories[category]
		c.Pending = amount
		summary.Categories[category] = c
	}

	excluded, err := s.transactionRepo.CountUnknownDirection(ctx, estateID)
	if err != nil {
		return nil, s.summaryError(err)
	}
	summary.ExcludedCount = int(excluded)

	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return &summary, nil
}

func (s *TransactionService) summaryError(err error) error {
	s.logger.Error("Failed to compute financial summary", zap.Error(err))
	return shared.NewDomainError("INTERNAL_ERROR", "Failed to compute summary")
}

// notifyCreator notifies the transaction's creator about an approval decision.
// Failures only log, the decision stands.
func (s *TransactionService) notifyCreator(ctx context.Context, tx *finance.Transaction, nType engagement.NotificationType, title, body string) {
	if tx.CreatedBy == nil {
		return
	}
	notification, err := engagement.NewNotification(*tx.CreatedBy, &tx.EstateID, nType, title, body)
	if err != nil {
		s.logger.Warn("Failed to build transaction notification", zap.Error(err))
		return
	}
	if err := s.notificationRepo.Save(ctx, notification); err != nil {
		s.logger.Warn("Failed to save transaction notification", zap.Error(err))
	}
}

func (s *TransactionService) loadTransaction(ctx context.Context, estateID, transactionID uuid.UUID) (*finance.Transaction, error) {
	tx, err := s.transactionRepo.FindByIDForEstate(ctx, estateID, transactionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load transaction", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load transaction")
	}
	return tx, nil
}
