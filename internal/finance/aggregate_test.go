package finance

import (
	"math"
	"testing"
)

// The canonical scenario: two Food expenses and one salary inside March.
func seedScenario(t *testing.T) *Store {
	t.Helper()
	s := NewStoreAt(testNow())
	s.SetDateRange(DateRange{Start: "2024-03-01", End: "2024-03-31"})
	s.AddTransaction(Transaction{Type: Expense, Value: 100, Category: "Food", Description: "Groceries", Date: "2024-03-05"})
	s.AddTransaction(Transaction{Type: Expense, Value: 50, Category: "Food", Description: "Takeaway", Date: "2024-03-10"})
	s.AddTransaction(Transaction{Type: Income, Value: 1000, Category: "Salary", Description: "Salary", Date: "2024-03-01"})
	return s
}

func TestPeriodAggregates(t *testing.T) {
	s := seedScenario(t)

	if got := s.ExpensesForPeriod(); got != 150 {
		t.Fatalf("expenses = %v, want 150", got)
	}
	if got := s.IncomeForPeriod(); got != 1000 {
		t.Fatalf("income = %v, want 1000", got)
	}
	byCat := s.ExpensesByCategory()
	if len(byCat) != 1 || byCat["Food"] != 150 {
		t.Fatalf("byCategory = %v, want {Food:150}", byCat)
	}
	if got := s.CategoryPercentage("Food"); got != 100 {
		t.Fatalf("Food percentage = %v, want 100", got)
	}
	if got := s.SavingsRate(); got != 85 {
		t.Fatalf("savings rate = %v, want 85", got)
	}
}

func TestCategoryPercentagesSumTo100(t *testing.T) {
	s := seedScenario(t)
	s.AddTransaction(Transaction{Type: Expense, Value: 33.33, Category: "Transport", Date: "2024-03-12"})
	s.AddTransaction(Transaction{Type: Expense, Value: 19.99, Category: "Health", Date: "2024-03-13"})

	var sum float64
	for cat := range s.ExpensesByCategory() {
		sum += s.CategoryPercentage(cat)
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("percentages sum = %v, want 100", sum)
	}
}

func TestEmptyAggregatesAreZeroNotNaN(t *testing.T) {
	s := NewStoreAt(testNow())
	if got := s.IncomeForPeriod(); got != 0 {
		t.Fatalf("income = %v, want 0", got)
	}
	if got := s.ExpensesForPeriod(); got != 0 {
		t.Fatalf("expenses = %v, want 0", got)
	}
	if got := s.SavingsRate(); got != 0 || math.IsNaN(got) {
		t.Fatalf("savings rate = %v, want 0", got)
	}
	if got := s.CategoryPercentage("Food"); got != 0 || math.IsNaN(got) {
		t.Fatalf("category percentage = %v, want 0", got)
	}
	if got := s.TotalBalance(); got != 0 {
		t.Fatalf("balance = %v, want 0", got)
	}
}

func TestTotalBalanceIsSnapshotNotPeriodFlow(t *testing.T) {
	s := seedScenario(t)
	s.AddBankAccount(BankAccount{Name: "Corrente", Balance: 6200})
	s.AddCreditCard(CreditCard{Name: "Nubank", CurrentBill: 2100, Limit: 8000, Theme: ThemeBlack})

	want := 6200.0 - 2100.0
	if got := s.TotalBalance(); got != want {
		t.Fatalf("balance = %v, want %v", got, want)
	}

	// Shrinking the period changes the flows but never the balance.
	s.SetDateRange(DateRange{Start: "2024-03-01", End: "2024-03-01"})
	if got := s.TotalBalance(); got != want {
		t.Fatalf("balance after range change = %v, want %v", got, want)
	}
	if income := s.IncomeForPeriod(); income != 1000 {
		t.Fatalf("income = %v, want 1000", income)
	}
	if expenses := s.ExpensesForPeriod(); expenses != 0 {
		t.Fatalf("expenses = %v, want 0", expenses)
	}
	if s.IncomeForPeriod()-s.ExpensesForPeriod() == s.TotalBalance() {
		t.Fatal("flows happened to equal balance; pick fixture values apart")
	}
}

func TestTotalBalanceScopedToSelectedMember(t *testing.T) {
	s := NewStoreAt(testNow())
	holder := s.AddFamilyMember(FamilyMember{Name: "Maria", Role: "Mãe"})
	other := s.AddFamilyMember(FamilyMember{Name: "João", Role: "Pai"})
	s.AddBankAccount(BankAccount{Name: "Itaú", HolderID: holder, Balance: 3100})
	s.AddBankAccount(BankAccount{Name: "Nubank", HolderID: other, Balance: 6200})
	s.AddCreditCard(CreditCard{Name: "Itaú", HolderID: holder, CurrentBill: 890, Theme: ThemeLime})

	s.SetSelectedMember(holder)
	if got := s.TotalBalance(); got != 3100-890 {
		t.Fatalf("scoped balance = %v, want %v", got, 3100-890)
	}

	// A member with no holdings is worth zero, not an error.
	noAssets := s.AddFamilyMember(FamilyMember{Name: "Pedro", Role: "Filho"})
	s.SetSelectedMember(noAssets)
	if got := s.TotalBalance(); got != 0 {
		t.Fatalf("balance for member without holdings = %v, want 0", got)
	}
}

func TestCategoryBreakdownSortedByValueDesc(t *testing.T) {
	s := seedScenario(t)
	s.AddTransaction(Transaction{Type: Expense, Value: 300, Category: "Moradia", Date: "2024-03-15"})

	rows := s.CategoryBreakdown()
	if len(rows) != 2 {
		t.Fatalf("breakdown rows = %d, want 2", len(rows))
	}
	if rows[0].Category != "Moradia" || rows[1].Category != "Food" {
		t.Fatalf("breakdown order = %+v", rows)
	}
	if math.Abs(rows[0].Percent-300.0/450.0*100) > 1e-9 {
		t.Fatalf("Moradia percent = %v", rows[0].Percent)
	}
}

func TestPendingExpensesSortedAndUnfiltered(t *testing.T) {
	s := NewStoreAt(testNow())
	s.AddTransaction(Transaction{Type: Expense, Value: 150, Description: "Luz", Date: "2024-03-25", IsPaid: false})
	s.AddTransaction(Transaction{Type: Expense, Value: 55, Description: "Netflix", Date: "2024-03-12", IsPaid: false})
	s.AddTransaction(Transaction{Type: Expense, Value: 90, Description: "Água", Date: "2024-04-08", IsPaid: false})
	s.AddTransaction(Transaction{Type: Expense, Value: 10, Description: "Paga", Date: "2024-03-01", IsPaid: true})
	s.AddTransaction(Transaction{Type: Income, Value: 1000, Description: "Salário", Date: "2024-03-01"})

	// Pending list ignores the active period (April row included).
	got := s.PendingExpenses()
	if len(got) != 3 {
		t.Fatalf("pending = %d rows, want 3", len(got))
	}
	if got[0].Description != "Netflix" || got[1].Description != "Luz" || got[2].Description != "Água" {
		t.Fatalf("pending order = %+v", got)
	}
}

func TestMarkExpensePaidRegeneratesRecurring(t *testing.T) {
	s := NewStoreAt(testNow())
	id := s.AddTransaction(Transaction{
		Type: Expense, Value: 150, Description: "Luz", Category: "Contas",
		Date: "2024-03-25", IsRecurring: true, IsPaid: false,
	})

	s.MarkExpensePaid(id)

	txs := s.Transactions()
	if len(txs) != 2 {
		t.Fatalf("transactions = %d, want paid original plus next instance", len(txs))
	}
	if !txs[0].IsPaid {
		t.Fatal("original not marked paid")
	}
	next := txs[1]
	if next.IsPaid || next.Date != "2024-04-25" || next.Value != 150 || next.ID == id {
		t.Fatalf("next instance = %+v", next)
	}
}

func TestMarkExpensePaidNonRecurring(t *testing.T) {
	s := NewStoreAt(testNow())
	id := s.AddTransaction(Transaction{Type: Expense, Value: 120, Description: "Academia", Date: "2024-03-18"})

	s.MarkExpensePaid(id)

	txs := s.Transactions()
	if len(txs) != 1 || !txs[0].IsPaid {
		t.Fatalf("transactions = %+v, want single paid record", txs)
	}
}

func TestMonthlyFlow(t *testing.T) {
	s := NewStoreAt(testNow())
	s.AddTransaction(Transaction{Type: Income, Value: 8500, Date: "2024-01-05"})
	s.AddTransaction(Transaction{Type: Expense, Value: 400, Date: "2024-01-20"})
	s.AddTransaction(Transaction{Type: Income, Value: 8500, Date: "2024-02-05"})
	s.AddTransaction(Transaction{Type: Expense, Value: 900, Date: "2024-03-10"})
	s.AddTransaction(Transaction{Type: Expense, Value: 999, Date: "2023-11-01"}) // outside window

	flow := s.MonthlyFlow(3, testNow())
	if len(flow) != 3 {
		t.Fatalf("flow points = %d, want 3", len(flow))
	}
	if flow[0].Month != "2024-01" || flow[0].Income != 8500 || flow[0].Expense != 400 {
		t.Fatalf("jan = %+v", flow[0])
	}
	if flow[1].Month != "2024-02" || flow[1].Income != 8500 || flow[1].Expense != 0 {
		t.Fatalf("feb = %+v", flow[1])
	}
	if flow[2].Month != "2024-03" || flow[2].Expense != 900 {
		t.Fatalf("mar = %+v", flow[2])
	}
}
