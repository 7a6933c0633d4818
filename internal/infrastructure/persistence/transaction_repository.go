package persistence

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, transaction *finance.Transaction) error {
	model := models.TransactionModelFromDomain(transaction)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a transaction by ID
func (r *GormTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds a transaction by ID within an estate
func (r *GormTransactionRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*finance.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("estate_id = ? AND id = ?", estateID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForEstate returns transactions for an estate
func (r *GormTransactionRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]finance.Transaction, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("estate_id = ?", estateID)

	base = applySearch(base, filter.Search, "description", "category")
	for key, value := range filter.Filters {
		switch key {
		case "direction":
			base = base.Where("direction = ?", value)
		case "approval_status":
			base = base.Where("approval_status = ?", value)
		case "category":
			base = base.Where("category = ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.TransactionModel
	query := applyOrder(base, filter, TransactionSortFields, "occurred_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	transactions := make([]finance.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, *rows[i].ToDomain())
	}
	return transactions, total, nil
}

// SumByDirectionAndStatus sums transaction amounts for a direction/status pair
func (r *GormTransactionRepository) SumByDirectionAndStatus(ctx context.Context, estateID uuid.UUID, direction finance.TransactionDirection, status finance.ApprovalStatus) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("estate_id = ? AND direction = ? AND approval_status = ?", estateID, direction, status).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// SumByCategoryAndStatus sums transaction amounts per category for a status,
// optionally restricted to the given directions
func (r *GormTransactionRepository) SumByCategoryAndStatus(ctx context.Context, estateID uuid.UUID, status finance.ApprovalStatus, directions ...finance.TransactionDirection) (map[string]decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("estate_id = ? AND approval_status = ?", estateID, status)
	if len(directions) > 0 {
		query = query.Where("direction IN ?", directions)
	}

	var rows []struct {
		Category string
		Total    decimal.Decimal
	}
	if err := query.Group("category").Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.Category] = row.Total
	}
	return sums, nil
}

// CountUnknownDirection counts rows whose direction is not a known value
func (r *GormTransactionRepository) CountUnknownDirection(ctx context.Context, estateID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("estate_id = ? AND direction NOT IN ?", estateID,
			[]finance.TransactionDirection{finance.DirectionIncome, finance.DirectionExpense}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormTransactionRepository implements TransactionRepository
var _ finance.TransactionRepository = (*GormTransactionRepository)(nil)
