// Package export writes the store's collections to local files. Export is
// one-way: there is no import path back into the store.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mycash/internal/finance"
)

const (
	jsonFileName = "mycash-dados.json"
	csvFileName  = "mycash-dados.csv"
)

// Snapshot bundles the five collections for serialization.
type Snapshot struct {
	Transactions []finance.Transaction  `json:"transactions"`
	Goals        []finance.Goal         `json:"goals"`
	CreditCards  []finance.CreditCard   `json:"creditCards"`
	BankAccounts []finance.BankAccount  `json:"bankAccounts"`
	Members      []finance.FamilyMember `json:"familyMembers"`
}

// Collect takes a snapshot of every collection in the store.
func Collect(s *finance.Store) Snapshot {
	return Snapshot{
		Transactions: s.Transactions(),
		Goals:        s.Goals(),
		CreditCards:  s.CreditCards(),
		BankAccounts: s.BankAccounts(),
		Members:      s.FamilyMembers(),
	}
}

// WriteJSON writes the snapshot pretty-printed to mycash-dados.json under
// dir and returns the full path.
func WriteJSON(dir string, snap Snapshot) (string, error) {
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	path := filepath.Join(dir, jsonFileName)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", jsonFileName, err)
	}
	return path, nil
}

// WriteCSV writes the snapshot to mycash-dados.csv: semicolon-delimited,
// UTF-8 BOM, CRLF between rows (none trailing), one row per collection
// under a Tipo;Dados header. Each row's payload is the collection as
// compact JSON.
func WriteCSV(dir string, snap Snapshot) (string, error) {
	rows := []struct {
		name string
		data any
	}{
		{"transactions", snap.Transactions},
		{"goals", snap.Goals},
		{"creditCards", snap.CreditCards},
		{"bankAccounts", snap.BankAccounts},
		{"familyMembers", snap.Members},
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "Tipo;Dados")
	for _, row := range rows {
		body, err := json.Marshal(row.data)
		if err != nil {
			return "", fmt.Errorf("marshal %s: %w", row.name, err)
		}
		lines = append(lines, row.name+";"+string(body))
	}
	content := "\uFEFF" + strings.Join(lines, "\r\n")

	path := filepath.Join(dir, csvFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", csvFileName, err)
	}
	return path, nil
}
