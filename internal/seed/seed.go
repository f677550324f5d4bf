// Package seed populates a fresh store with sample family finance data so
// the dashboard has something to show on first run.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"mycash/internal/finance"
)

type expenseKind struct {
	category    string
	description string
	min, max    float64
}

var expenseKinds = []expenseKind{
	{"Mercado", "Supermercado Pão de Açúcar", 180, 650},
	{"Mercado", "Feira da semana", 60, 180},
	{"Transporte", "Uber", 18, 65},
	{"Transporte", "Combustível Shell", 150, 320},
	{"Alimentação", "iFood", 35, 120},
	{"Alimentação", "Padaria São José", 15, 55},
	{"Lazer", "Cinema Cinemark", 40, 110},
	{"Saúde", "Farmácia Droga Raia", 30, 160},
	{"Educação", "Material escolar", 50, 220},
	{"Assinaturas", "Netflix", 39.9, 39.9},
	{"Assinaturas", "Spotify Família", 34.9, 34.9},
}

// Populate fills the store with members, accounts, cards, goals and roughly
// three months of transactions ending at now. Idempotence is not a concern;
// callers seed only into an empty store.
func Populate(s *finance.Store, now time.Time) {
	rng := rand.New(rand.NewSource(now.UnixNano()))

	pai := s.AddFamilyMember(finance.FamilyMember{Name: "João Silva", Role: "Pai", MonthlyIncome: 8500})
	mae := s.AddFamilyMember(finance.FamilyMember{Name: "Maria Silva", Role: "Mãe", MonthlyIncome: 7200})
	filho := s.AddFamilyMember(finance.FamilyMember{Name: "Pedro Silva", Role: "Filho", MonthlyIncome: 0})

	contaJoao := s.AddBankAccount(finance.BankAccount{Name: "Nubank Conta", HolderID: pai, Balance: 6200})
	contaMaria := s.AddBankAccount(finance.BankAccount{Name: "Itaú Corrente", HolderID: mae, Balance: 4350})
	s.AddBankAccount(finance.BankAccount{Name: "Poupança Pedro", HolderID: filho, Balance: 850})

	cardJoao := s.AddCreditCard(finance.CreditCard{Name: "Nubank", HolderID: pai, ClosingDay: 15, DueDay: 22, Limit: 8000, CurrentBill: 2100, Theme: finance.ThemeBlack, LastDigits: "1234"})
	cardMaria := s.AddCreditCard(finance.CreditCard{Name: "Itaú Click", HolderID: mae, ClosingDay: 10, DueDay: 17, Limit: 6500, CurrentBill: 1480, Theme: finance.ThemeLime, LastDigits: "5678"})
	s.AddCreditCard(finance.CreditCard{Name: "Inter Gold", HolderID: pai, ClosingDay: 5, DueDay: 12, Limit: 4000, CurrentBill: 320, Theme: finance.ThemeWhite, LastDigits: "9012"})
	s.AddCreditCard(finance.CreditCard{Name: "C6 Carbon", HolderID: mae, ClosingDay: 20, DueDay: 27, Limit: 12000, CurrentBill: 0, Theme: finance.ThemeBlack, LastDigits: "3456"})

	s.AddGoal(finance.Goal{Name: "Viagem em família", TargetAmount: 15000, CurrentAmount: 4200, Deadline: iso(now.AddDate(0, 10, 0))})
	s.AddGoal(finance.Goal{Name: "Reserva de emergência", TargetAmount: 30000, CurrentAmount: 12500})
	s.AddGoal(finance.Goal{Name: "Carro novo", TargetAmount: 60000, CurrentAmount: 8900, Deadline: iso(now.AddDate(2, 0, 0))})
	s.AddGoal(finance.Goal{Name: "Curso do Pedro", TargetAmount: 5000, CurrentAmount: 3100, Deadline: iso(now.AddDate(0, 4, 0))})

	accounts := []string{contaJoao, contaMaria, cardJoao, cardMaria}
	members := []string{pai, mae, pai, mae}

	// Salaries on the 5th of each of the trailing three months.
	for back := 2; back >= 0; back-- {
		month := now.AddDate(0, -back, 0)
		payday := time.Date(month.Year(), month.Month(), 5, 0, 0, 0, 0, time.UTC)
		if payday.After(now) {
			payday = now
		}
		s.AddTransaction(finance.Transaction{
			Type: finance.Income, Value: 8500, Description: "Salário João",
			Category: "Salário", Date: iso(payday), AccountID: contaJoao,
			MemberID: pai, Installments: 1, Status: finance.StatusCompleted, IsPaid: true,
		})
		s.AddTransaction(finance.Transaction{
			Type: finance.Income, Value: 7200, Description: "Salário Maria",
			Category: "Salário", Date: iso(payday), AccountID: contaMaria,
			MemberID: mae, Installments: 1, Status: finance.StatusCompleted, IsPaid: true,
		})

		for i := 0; i < 8; i++ {
			kind := expenseKinds[rng.Intn(len(expenseKinds))]
			value := kind.min
			if kind.max > kind.min {
				value = kind.min + rng.Float64()*(kind.max-kind.min)
			}
			day := 1 + rng.Intn(daysIn(month))
			date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
			if date.After(now) {
				date = now
			}
			n := rng.Intn(len(accounts))
			s.AddTransaction(finance.Transaction{
				Type: finance.Expense, Value: round2(value), Description: kind.description,
				Category: kind.category, Date: iso(date), AccountID: accounts[n],
				MemberID: members[n], Installments: 1, Status: finance.StatusCompleted, IsPaid: true,
			})
		}
	}

	// Pending bills due later this month or early next.
	pending := []struct {
		desc, cat string
		value     float64
		inDays    int
		recurring bool
	}{
		{"Aluguel", "Moradia", 2800, 3, true},
		{"Conta de luz Enel", "Moradia", 245.8, 6, true},
		{"Internet Vivo Fibra", "Moradia", 119.9, 9, true},
		{"Escola do Pedro", "Educação", 1450, 12, true},
	}
	for _, p := range pending {
		s.AddTransaction(finance.Transaction{
			Type: finance.Expense, Value: p.value, Description: p.desc,
			Category: p.cat, Date: iso(now.AddDate(0, 0, p.inDays)), AccountID: contaJoao,
			MemberID: pai, Installments: 1, Status: finance.StatusPending,
			IsRecurring: p.recurring, IsPaid: false,
		})
	}
}

func iso(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
