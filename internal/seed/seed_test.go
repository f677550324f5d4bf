package seed

import (
	"testing"
	"time"

	"mycash/internal/finance"
)

func TestPopulate(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	s := finance.NewStoreAt(now)
	Populate(s, now)

	if got := len(s.FamilyMembers()); got != 3 {
		t.Fatalf("members = %d, want 3", got)
	}
	if got := len(s.BankAccounts()); got != 3 {
		t.Fatalf("accounts = %d, want 3", got)
	}
	if got := len(s.CreditCards()); got != 4 {
		t.Fatalf("cards = %d, want 4", got)
	}
	if got := len(s.Goals()); got != 4 {
		t.Fatalf("goals = %d, want 4", got)
	}

	txs := s.Transactions()
	// 3 months x (2 salaries + 8 expenses) + 4 pending bills.
	if got := len(txs); got != 34 {
		t.Fatalf("transactions = %d, want 34", got)
	}

	for _, tx := range txs {
		if tx.ID == "" {
			t.Fatal("transaction without id")
		}
		if len(tx.Date) != 10 || tx.Date[4] != '-' || tx.Date[7] != '-' {
			t.Fatalf("non-ISO date %q", tx.Date)
		}
		if tx.Value <= 0 {
			t.Fatalf("non-positive value %v in %q", tx.Value, tx.Description)
		}
		if _, ok := s.ResolveAccount(tx.AccountID); !ok {
			t.Fatalf("transaction %q references unknown account %q", tx.Description, tx.AccountID)
		}
	}

	pending := s.PendingExpenses()
	if len(pending) != 4 {
		t.Fatalf("pending expenses = %d, want 4", len(pending))
	}
	for _, p := range pending {
		if p.IsPaid || p.Type != finance.Expense {
			t.Fatalf("bad pending expense %+v", p)
		}
	}
}

func TestPopulateSalariesLandInEachMonth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	s := finance.NewStoreAt(now)
	Populate(s, now)

	months := map[string]int{}
	for _, tx := range s.Transactions() {
		if tx.Type == finance.Income {
			months[tx.Date[:7]]++
		}
	}
	for _, m := range []string{"2024-01", "2024-02", "2024-03"} {
		if months[m] != 2 {
			t.Fatalf("incomes in %s = %d, want 2", m, months[m])
		}
	}
}
