package finance

import (
	"testing"
	"time"
)

func testNow() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestNewStoreDefaultFilterState(t *testing.T) {
	s := NewStoreAt(testNow())
	f := s.Filter()
	if f.MemberID != "" {
		t.Fatalf("default member filter = %q, want empty", f.MemberID)
	}
	if f.Range.Start != "2024-03-01" || f.Range.End != "2024-03-31" {
		t.Fatalf("default range = %+v, want current month", f.Range)
	}
	if f.Type != FilterAll {
		t.Fatalf("default type filter = %q, want all", f.Type)
	}
	if f.Search != "" {
		t.Fatalf("default search = %q, want empty", f.Search)
	}
}

func TestAddAssignsFreshIDs(t *testing.T) {
	s := NewStoreAt(testNow())
	id1 := s.AddTransaction(Transaction{ID: "ignored", Type: Expense, Value: 10, Date: "2024-03-05"})
	id2 := s.AddTransaction(Transaction{Type: Income, Value: 20, Date: "2024-03-06"})
	if id1 == "" || id2 == "" || id1 == id2 {
		t.Fatalf("ids = %q, %q, want distinct non-empty", id1, id2)
	}
	if id1 == "ignored" {
		t.Fatal("store must not honor caller-provided ids")
	}
	if got := len(s.Transactions()); got != 2 {
		t.Fatalf("transactions = %d, want 2", got)
	}
}

func TestUpdateTransactionMergesPartialFields(t *testing.T) {
	s := NewStoreAt(testNow())
	id := s.AddTransaction(Transaction{Type: Expense, Value: 100, Description: "Mercado", Category: "Mercado", Date: "2024-03-05"})

	v := 150.0
	s.UpdateTransaction(id, TransactionPatch{Value: &v})

	got := s.Transactions()[0]
	if got.Value != 150 {
		t.Fatalf("value = %v, want 150", got.Value)
	}
	if got.Description != "Mercado" || got.Category != "Mercado" || got.Date != "2024-03-05" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdateAndDeleteUnknownIDAreNoOps(t *testing.T) {
	s := NewStoreAt(testNow())
	s.AddTransaction(Transaction{Type: Expense, Value: 10, Date: "2024-03-05"})

	v := 99.0
	s.UpdateTransaction("missing", TransactionPatch{Value: &v})
	s.DeleteTransaction("missing")
	s.DeleteGoal("missing")
	s.DeleteFamilyMember("missing")

	txs := s.Transactions()
	if len(txs) != 1 || txs[0].Value != 10 {
		t.Fatalf("transactions = %+v, want single untouched record", txs)
	}
}

func TestDeleteMemberDoesNotCascade(t *testing.T) {
	s := NewStoreAt(testNow())
	memberID := s.AddFamilyMember(FamilyMember{Name: "Maria", Role: "Mãe"})
	s.AddTransaction(Transaction{Type: Expense, Value: 50, Date: "2024-03-05", MemberID: memberID})
	s.AddBankAccount(BankAccount{Name: "Corrente", HolderID: memberID, Balance: 100})

	s.DeleteFamilyMember(memberID)

	if len(s.FamilyMembers()) != 0 {
		t.Fatal("member not removed")
	}
	txs := s.Transactions()
	if len(txs) != 1 || txs[0].MemberID != memberID {
		t.Fatalf("transaction memberId = %q, want orphaned %q", txs[0].MemberID, memberID)
	}
	if accts := s.BankAccounts(); len(accts) != 1 || accts[0].HolderID != memberID {
		t.Fatal("account holder reference must survive member deletion")
	}
}

func TestResolveAccountReturnsTaggedRef(t *testing.T) {
	s := NewStoreAt(testNow())
	bankID := s.AddBankAccount(BankAccount{Name: "Nubank Conta", Balance: 6200})
	cardID := s.AddCreditCard(CreditCard{Name: "Nubank", LastDigits: "1234", Theme: ThemeBlack})

	ref, ok := s.ResolveAccount(bankID)
	if !ok || ref.Kind != AccountBank || ref.Bank == nil {
		t.Fatalf("bank ref = %+v ok=%v", ref, ok)
	}
	if ref.Label() != "Nubank Conta" {
		t.Fatalf("bank label = %q", ref.Label())
	}

	ref, ok = s.ResolveAccount(cardID)
	if !ok || ref.Kind != AccountCard || ref.Card == nil {
		t.Fatalf("card ref = %+v ok=%v", ref, ok)
	}
	if ref.Label() != "Crédito Nubank **** 1234" {
		t.Fatalf("card label = %q", ref.Label())
	}

	if _, ok := s.ResolveAccount("nope"); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestUpdateCreditCardPatch(t *testing.T) {
	s := NewStoreAt(testNow())
	id := s.AddCreditCard(CreditCard{Name: "Itaú", ClosingDay: 10, DueDay: 17, Limit: 5000, CurrentBill: 890, Theme: ThemeLime})

	bill := 1200.0
	theme := ThemeWhite
	s.UpdateCreditCard(id, CreditCardPatch{CurrentBill: &bill, Theme: &theme})

	got := s.CreditCards()[0]
	if got.CurrentBill != 1200 || got.Theme != ThemeWhite {
		t.Fatalf("card after patch = %+v", got)
	}
	if got.ClosingDay != 10 || got.Limit != 5000 {
		t.Fatalf("untouched card fields changed: %+v", got)
	}
}

func TestClearAllDropsCollectionsKeepsFilter(t *testing.T) {
	s := NewStoreAt(testNow())
	s.AddTransaction(Transaction{Type: Expense, Value: 10, Date: "2024-03-05"})
	s.AddGoal(Goal{Name: "Viagem", TargetAmount: 15000})
	s.SetSearchText("mercado")

	s.ClearAll()

	if len(s.Transactions()) != 0 || len(s.Goals()) != 0 {
		t.Fatal("collections not cleared")
	}
	if s.Filter().Search != "mercado" {
		t.Fatal("filter state must survive ClearAll")
	}
}

func TestSnapshotAccessorsCopy(t *testing.T) {
	s := NewStoreAt(testNow())
	s.AddTransaction(Transaction{Type: Expense, Value: 10, Date: "2024-03-05", Description: "Luz"})

	snap := s.Transactions()
	snap[0].Description = "tampered"

	if s.Transactions()[0].Description != "Luz" {
		t.Fatal("accessor must return a copy, not the backing slice")
	}
}
