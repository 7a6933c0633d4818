package finance

import (
	"github.com/shopspring/decimal"
)

// CategorySummary carries the per-category figures of the breakdown:
// approved expense sums plus what still awaits approval.
type CategorySummary struct {
	Approved decimal.Decimal `json:"approved"`
	Pending  decimal.Decimal `json:"pending"`
}

// Summary aggregates an estate's transactions. Only approved transactions
// count toward the totals; pending amounts are reported separately so the
// caller can show what is still awaiting approval. Categories breaks the
// figures down per category: approved expenses summed per group, and
// pending amounts summed per group regardless of direction. Transactions
// with an unrecognized direction are excluded from every sum and counted
// in ExcludedCount.
type Summary struct {
	TotalIncome     decimal.Decimal            `json:"total_income"`
	TotalExpenses   decimal.Decimal            `json:"total_expenses"`
	NetBalance      decimal.Decimal            `json:"net_balance"`
	PendingIncome   decimal.Decimal            `json:"pending_income"`
	PendingExpenses decimal.Decimal            `json:"pending_expenses"`
	Categories      map[string]CategorySummary `json:"categories"`
	ExcludedCount   int                        `json:"excluded_count"`
}

// EmptySummary returns a summary with all amounts zero
func EmptySummary() Summary {
	return Summary{
		TotalIncome:     decimal.Zero,
		TotalExpenses:   decimal.Zero,
		NetBalance:      decimal.Zero,
		PendingIncome:   decimal.Zero,
		PendingExpenses: decimal.Zero,
		Categories:      make(map[string]CategorySummary),
	}
}

func (s *Summary) addCategoryApproved(category string, amount decimal.Decimal) {
	c := s.Categories[category]
	c.Approved = c.Approved.Add(amount)
	s.Categories[category] = c
}

func (s *Summary) addCategoryPending(category string, amount decimal.Decimal) {
	c := s.Categories[category]
	c.Pending = c.Pending.Add(amount)
	s.Categories[category] = c
}

// Summarize computes the financial summary over a set of transactions.
// NetBalance is always TotalIncome minus TotalExpenses.
func Summarize(transactions []Transaction) Summary {
	s := EmptySummary()

	for i := range transactions {
		tx := &transactions[i]

		if !tx.Direction.IsValid() {
			s.ExcludedCount++
			continue
		}

		switch tx.ApprovalStatus {
		case ApprovalStatusApproved:
			if tx.Direction == DirectionIncome {
				s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			} else {
				s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
				s.addCategoryApproved(tx.Category, tx.Amount)
			}
		case ApprovalStatusPending:
			if tx.Direction == DirectionIncome {
				s.PendingIncome = s.PendingIncome.Add(tx.Amount)
			} else {
				s.PendingExpenses = s.PendingExpenses.Add(tx.Amount)
			}
			s.addCategoryPending(tx.Category, tx.Amount)
		}
	}

	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
