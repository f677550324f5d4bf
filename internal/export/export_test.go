package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mycash/internal/finance"
)

func seededStore(t *testing.T) *finance.Store {
	t.Helper()
	s := finance.NewStoreAt(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	member := s.AddFamilyMember(finance.FamilyMember{Name: "João Silva", Role: "Pai", MonthlyIncome: 8500})
	acct := s.AddBankAccount(finance.BankAccount{Name: "Nubank Conta", HolderID: member, Balance: 6200})
	s.AddCreditCard(finance.CreditCard{Name: "Nubank", HolderID: member, ClosingDay: 15, DueDay: 22, Limit: 8000, CurrentBill: 2100, Theme: finance.ThemeBlack, LastDigits: "1234"})
	s.AddGoal(finance.Goal{Name: "Viagem em família", TargetAmount: 15000, CurrentAmount: 4200})
	s.AddTransaction(finance.Transaction{Type: finance.Expense, Value: 100, Description: "Mercado", Category: "Mercado", Date: "2024-03-05", AccountID: acct, Installments: 1, Status: finance.StatusCompleted})
	return s
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	snap := Collect(seededStore(t))

	path, err := WriteJSON(dir, snap)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "mycash-dados.json"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Snapshot
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Transactions, 1)
	require.Len(t, got.Members, 1)
	require.Equal(t, "Nubank", got.CreditCards[0].Name)
	require.Equal(t, snap.Transactions[0].ID, got.Transactions[0].ID)
}

func TestWriteCSVFraming(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteCSV(dir, Collect(seededStore(t)))
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(body)
	require.True(t, strings.HasPrefix(text, "\uFEFF"), "missing UTF-8 BOM")
	require.False(t, strings.HasSuffix(text, "\r\n"), "trailing line break after last row")

	lines := strings.Split(strings.TrimPrefix(text, "\uFEFF"), "\r\n")
	require.Len(t, lines, 6) // header + five collections
	require.Equal(t, "Tipo;Dados", lines[0])

	wantOrder := []string{"transactions", "goals", "creditCards", "bankAccounts", "familyMembers"}
	for i, name := range wantOrder {
		require.True(t, strings.HasPrefix(lines[i+1], name+";"), "line %d = %q", i+1, lines[i+1])
	}

	// Each payload is valid JSON.
	var txs []finance.Transaction
	payload := strings.TrimPrefix(lines[1], "transactions;")
	require.NoError(t, json.Unmarshal([]byte(payload), &txs))
	require.Len(t, txs, 1)
}

func TestWriteCSVEmptyStore(t *testing.T) {
	dir := t.TempDir()
	s := finance.NewStoreAt(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

	path, err := WriteCSV(dir, Collect(s))
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(body), "transactions;[]")
}

func TestWriteJSONBadDir(t *testing.T) {
	_, err := WriteJSON(filepath.Join(t.TempDir(), "missing", "nested"), Collect(seededStore(t)))
	require.Error(t, err)
}
