package finance

import (
	"strings"
	"unicode"
)

// Form validation. Errors come back as a field-keyed map of human-readable
// messages; nothing is thrown and nothing blocks except submission.

// TransactionForm carries the parsed form fields before they become a
// Transaction. IsCardAccount reflects the resolved kind of AccountID.
type TransactionForm struct {
	Type          TransactionType
	Value         float64
	Description   string
	Category      string
	AccountID     string
	MemberID      string
	Date          string
	Installments  int
	IsRecurring   bool
	IsCardAccount bool
}

// ValidateTransactionForm checks the form the way the submit handler does:
// required fields, minimum description length, positive value, and the
// installments/recurring exclusivity rule.
func ValidateTransactionForm(f TransactionForm) map[string]string {
	errs := make(map[string]string)
	if f.Value <= 0 {
		errs["value"] = "Valor deve ser maior que zero"
	}
	if len(strings.TrimSpace(f.Description)) < 3 {
		errs["description"] = "Descrição deve ter pelo menos 3 caracteres"
	}
	if strings.TrimSpace(f.Category) == "" {
		errs["category"] = "Selecione ou informe uma categoria"
	}
	if f.AccountID == "" {
		errs["account"] = "Selecione conta ou cartão"
	}
	if f.Installments < 1 || f.Installments > 12 {
		errs["installments"] = "Parcelamento deve ser de 1x a 12x"
	} else if f.Installments > 1 {
		if f.Type != Expense || !f.IsCardAccount {
			errs["installments"] = "Parcelamento só vale para despesas no cartão"
		} else if f.IsRecurring {
			errs["installments"] = "Despesas parceladas não podem ser recorrentes"
		}
	}
	return errs
}

// CardForm carries the credit-card form fields.
type CardForm struct {
	Name       string
	HolderID   string
	ClosingDay int
	DueDay     int
	Limit      float64
	LastDigits string
}

func ValidateCardForm(f CardForm) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Informe o nome do cartão"
	}
	if f.ClosingDay < 1 || f.ClosingDay > 31 {
		errs["closingDay"] = "Dia de fechamento deve estar entre 1 e 31"
	}
	if f.DueDay < 1 || f.DueDay > 31 {
		errs["dueDay"] = "Dia de vencimento deve estar entre 1 e 31"
	}
	if f.Limit <= 0 {
		errs["limit"] = "Limite deve ser maior que zero"
	}
	if f.LastDigits != "" && !isFourDigits(f.LastDigits) {
		errs["lastDigits"] = "Informe os 4 últimos dígitos"
	}
	return errs
}

// MemberForm carries the family-member form fields.
type MemberForm struct {
	Name          string
	Role          string
	Email         string
	MonthlyIncome float64
}

func ValidateMemberForm(f MemberForm) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Informe o nome"
	}
	if strings.TrimSpace(f.Role) == "" {
		errs["role"] = "Informe a função (ex: Pai, Mãe)"
	}
	return errs
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
