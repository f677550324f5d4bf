package finance

import (
	"sort"
	"time"
)

// Derived views. Every function here is pure over the store snapshot and is
// recomputed on each call; at this data scale a rescan is cheaper than
// keeping caches coherent.

// TotalBalance is bank balances minus credit-card bills, scoped to the
// selected member's holdings if one is set. It is a point-in-time snapshot
// and deliberately ignores the date range.
func (s *Store) TotalBalance() float64 {
	var total float64
	for _, a := range s.accounts {
		if s.filter.MemberID != "" && a.HolderID != s.filter.MemberID {
			continue
		}
		total += a.Balance
	}
	for _, c := range s.cards {
		if s.filter.MemberID != "" && c.HolderID != s.filter.MemberID {
			continue
		}
		total -= c.CurrentBill
	}
	return total
}

// IncomeForPeriod sums income transactions in the filtered view.
func (s *Store) IncomeForPeriod() float64 {
	return s.sumByType(Income)
}

// ExpensesForPeriod sums expense transactions in the filtered view.
func (s *Store) ExpensesForPeriod() float64 {
	return s.sumByType(Expense)
}

func (s *Store) sumByType(tt TransactionType) float64 {
	var total float64
	for _, t := range s.FilteredTransactions() {
		if t.Type == tt {
			total += t.Value
		}
	}
	return total
}

// ExpensesByCategory groups filtered expenses by category string.
func (s *Store) ExpensesByCategory() map[string]float64 {
	out := make(map[string]float64)
	for _, t := range s.FilteredTransactions() {
		if t.Type != Expense {
			continue
		}
		out[t.Category] += t.Value
	}
	return out
}

// CategoryPercentage is the category's share of total filtered expenses,
// in percent. Zero when there are no expenses.
func (s *Store) CategoryPercentage(category string) float64 {
	byCat := s.ExpensesByCategory()
	var total float64
	for _, v := range byCat {
		total += v
	}
	if total <= 0 {
		return 0
	}
	return byCat[category] / total * 100
}

// SavingsRate is (income - expenses) / income for the period, in percent.
// Zero when there is no income.
func (s *Store) SavingsRate() float64 {
	income := s.IncomeForPeriod()
	if income <= 0 {
		return 0
	}
	return (income - s.ExpensesForPeriod()) / income * 100
}

// CategoryShare is one row of the category breakdown.
type CategoryShare struct {
	Category string
	Value    float64
	Percent  float64
}

// CategoryBreakdown flattens ExpensesByCategory into rows sorted by value
// descending (ties by name, for stable rendering).
func (s *Store) CategoryBreakdown() []CategoryShare {
	byCat := s.ExpensesByCategory()
	var total float64
	for _, v := range byCat {
		total += v
	}
	out := make([]CategoryShare, 0, len(byCat))
	for cat, v := range byCat {
		share := CategoryShare{Category: cat, Value: v}
		if total > 0 {
			share.Percent = v / total * 100
		}
		out = append(out, share)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// PendingExpenses lists unpaid expenses sorted by date ascending. The active
// filters do not apply: an upcoming bill is upcoming regardless of the
// period being viewed.
func (s *Store) PendingExpenses() []Transaction {
	out := make([]Transaction, 0)
	for _, t := range s.transactions {
		if t.Type == Expense && !t.IsPaid {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// MarkExpensePaid flags the transaction paid. A recurring expense also
// regenerates itself one month later as a fresh unpaid instance.
func (s *Store) MarkExpensePaid(id string) {
	for _, t := range s.transactions {
		if t.ID != id {
			continue
		}
		paid := true
		s.UpdateTransaction(id, TransactionPatch{IsPaid: &paid})
		if t.IsRecurring {
			next := t
			next.Date = NextRecurrenceDate(t.Date)
			next.IsPaid = false
			s.AddTransaction(next)
		}
		return
	}
}

// FlowPoint is one month of the income/expense flow chart.
type FlowPoint struct {
	Month   string // YYYY-MM
	Income  float64
	Expense float64
}

// MonthlyFlow aggregates income and expenses per calendar month for the
// trailing months window ending at now's month. Only the member filter
// applies; the flow chart always shows its own time axis.
func (s *Store) MonthlyFlow(months int, now time.Time) []FlowPoint {
	if months <= 0 {
		return nil
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	index := make(map[string]int, months)
	out := make([]FlowPoint, months)
	for i := 0; i < months; i++ {
		key := first.AddDate(0, i, 0).Format("2006-01")
		index[key] = i
		out[i] = FlowPoint{Month: key}
	}
	for _, t := range s.transactions {
		if !matchesMember(t, s.filter.MemberID) {
			continue
		}
		if len(t.Date) < 7 {
			continue
		}
		i, ok := index[t.Date[:7]]
		if !ok {
			continue
		}
		switch t.Type {
		case Income:
			out[i].Income += t.Value
		case Expense:
			out[i].Expense += t.Value
		}
	}
	return out
}
