package finance

import (
	"time"

	"github.com/google/uuid"
)

// Store is the single source of truth for all entity collections and the
// active filter state. It is owned by the UI event loop: all mutations and
// reads happen on one goroutine, so there is no locking.
type Store struct {
	transactions []Transaction
	goals        []Goal
	cards        []CreditCard
	accounts     []BankAccount
	members      []FamilyMember

	filter FilterState

	newID func() string
}

// NewStore returns an empty store with the default filter state: current
// calendar month, no member, all types, empty search.
func NewStore() *Store {
	return NewStoreAt(time.Now())
}

// NewStoreAt is NewStore with an injectable clock for tests.
func NewStoreAt(now time.Time) *Store {
	return &Store{
		filter: FilterState{
			Range: CurrentMonth(now),
			Type:  FilterAll,
		},
		newID: uuid.NewString,
	}
}

// ---------------------------------------------------------------------------
// Snapshot accessors
// ---------------------------------------------------------------------------

func (s *Store) Transactions() []Transaction {
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) Goals() []Goal {
	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Store) CreditCards() []CreditCard {
	out := make([]CreditCard, len(s.cards))
	copy(out, s.cards)
	return out
}

func (s *Store) BankAccounts() []BankAccount {
	out := make([]BankAccount, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) FamilyMembers() []FamilyMember {
	out := make([]FamilyMember, len(s.members))
	copy(out, s.members)
	return out
}

func (s *Store) Filter() FilterState { return s.filter }

// ResolveAccount resolves an account id against the union of bank accounts
// and credit cards, returning a typed reference instead of leaving callers
// to search both collections.
func (s *Store) ResolveAccount(id string) (AccountRef, bool) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return AccountRef{Kind: AccountBank, Bank: &s.accounts[i]}, true
		}
	}
	for i := range s.cards {
		if s.cards[i].ID == id {
			return AccountRef{Kind: AccountCard, Card: &s.cards[i]}, true
		}
	}
	return AccountRef{}, false
}

// MemberByID returns the member, or false for unknown/empty ids.
func (s *Store) MemberByID(id string) (FamilyMember, bool) {
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return FamilyMember{}, false
}

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

// AddTransaction assigns a fresh id and appends. The caller validates
// beforehand; the store itself accepts any record.
func (s *Store) AddTransaction(t Transaction) string {
	t.ID = s.newID()
	s.transactions = append(s.transactions, t)
	return t.ID
}

// UpdateTransaction merges the patch into the matching record. Unknown ids
// are silently ignored.
func (s *Store) UpdateTransaction(id string, p TransactionPatch) {
	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		t := &s.transactions[i]
		if p.Type != nil {
			t.Type = *p.Type
		}
		if p.Value != nil {
			t.Value = *p.Value
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.Category != nil {
			t.Category = *p.Category
		}
		if p.Date != nil {
			t.Date = *p.Date
		}
		if p.AccountID != nil {
			t.AccountID = *p.AccountID
		}
		if p.MemberID != nil {
			t.MemberID = *p.MemberID
		}
		if p.Installments != nil {
			t.Installments = *p.Installments
		}
		if p.Status != nil {
			t.Status = *p.Status
		}
		if p.IsRecurring != nil {
			t.IsRecurring = *p.IsRecurring
		}
		if p.IsPaid != nil {
			t.IsPaid = *p.IsPaid
		}
		return
	}
}

// DeleteTransaction removes by id. No cascade; no-op if absent.
func (s *Store) DeleteTransaction(id string) {
	s.transactions = deleteByID(s.transactions, id, func(t Transaction) string { return t.ID })
}

// ---------------------------------------------------------------------------
// Goals
// ---------------------------------------------------------------------------

func (s *Store) AddGoal(g Goal) string {
	g.ID = s.newID()
	s.goals = append(s.goals, g)
	return g.ID
}

func (s *Store) UpdateGoal(id string, p GoalPatch) {
	for i := range s.goals {
		if s.goals[i].ID != id {
			continue
		}
		g := &s.goals[i]
		if p.Name != nil {
			g.Name = *p.Name
		}
		if p.TargetAmount != nil {
			g.TargetAmount = *p.TargetAmount
		}
		if p.CurrentAmount != nil {
			g.CurrentAmount = *p.CurrentAmount
		}
		if p.Deadline != nil {
			g.Deadline = *p.Deadline
		}
		if p.Description != nil {
			g.Description = *p.Description
		}
		return
	}
}

func (s *Store) DeleteGoal(id string) {
	s.goals = deleteByID(s.goals, id, func(g Goal) string { return g.ID })
}

// ---------------------------------------------------------------------------
// Credit cards
// ---------------------------------------------------------------------------

func (s *Store) AddCreditCard(c CreditCard) string {
	c.ID = s.newID()
	s.cards = append(s.cards, c)
	return c.ID
}

func (s *Store) UpdateCreditCard(id string, p CreditCardPatch) {
	for i := range s.cards {
		if s.cards[i].ID != id {
			continue
		}
		c := &s.cards[i]
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.HolderID != nil {
			c.HolderID = *p.HolderID
		}
		if p.ClosingDay != nil {
			c.ClosingDay = *p.ClosingDay
		}
		if p.DueDay != nil {
			c.DueDay = *p.DueDay
		}
		if p.Limit != nil {
			c.Limit = *p.Limit
		}
		if p.CurrentBill != nil {
			c.CurrentBill = *p.CurrentBill
		}
		if p.Theme != nil {
			c.Theme = *p.Theme
		}
		if p.LastDigits != nil {
			c.LastDigits = *p.LastDigits
		}
		return
	}
}

func (s *Store) DeleteCreditCard(id string) {
	s.cards = deleteByID(s.cards, id, func(c CreditCard) string { return c.ID })
}

// ---------------------------------------------------------------------------
// Bank accounts
// ---------------------------------------------------------------------------

func (s *Store) AddBankAccount(a BankAccount) string {
	a.ID = s.newID()
	s.accounts = append(s.accounts, a)
	return a.ID
}

func (s *Store) UpdateBankAccount(id string, p BankAccountPatch) {
	for i := range s.accounts {
		if s.accounts[i].ID != id {
			continue
		}
		a := &s.accounts[i]
		if p.Name != nil {
			a.Name = *p.Name
		}
		if p.HolderID != nil {
			a.HolderID = *p.HolderID
		}
		if p.Balance != nil {
			a.Balance = *p.Balance
		}
		return
	}
}

func (s *Store) DeleteBankAccount(id string) {
	s.accounts = deleteByID(s.accounts, id, func(a BankAccount) string { return a.ID })
}

// ---------------------------------------------------------------------------
// Family members
// ---------------------------------------------------------------------------

func (s *Store) AddFamilyMember(m FamilyMember) string {
	m.ID = s.newID()
	s.members = append(s.members, m)
	return m.ID
}

func (s *Store) UpdateFamilyMember(id string, p FamilyMemberPatch) {
	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		m := &s.members[i]
		if p.Name != nil {
			m.Name = *p.Name
		}
		if p.Role != nil {
			m.Role = *p.Role
		}
		if p.AvatarURL != nil {
			m.AvatarURL = *p.AvatarURL
		}
		if p.Email != nil {
			m.Email = *p.Email
		}
		if p.MonthlyIncome != nil {
			m.MonthlyIncome = *p.MonthlyIncome
		}
		return
	}
}

// DeleteFamilyMember removes the member only. Transactions, accounts and
// cards referencing the id keep the dangling reference.
func (s *Store) DeleteFamilyMember(id string) {
	s.members = deleteByID(s.members, id, func(m FamilyMember) string { return m.ID })
}

// ---------------------------------------------------------------------------
// Filter setters
// ---------------------------------------------------------------------------

// SetSelectedMember filters derived views to one member. Empty clears.
func (s *Store) SetSelectedMember(id string) { s.filter.MemberID = id }

// SetDateRange replaces the active period. Not validated: an inverted range
// yields empty results downstream rather than an error.
func (s *Store) SetDateRange(r DateRange) { s.filter.Range = r }

func (s *Store) SetTypeFilter(f TypeFilter) { s.filter.Type = f }

func (s *Store) SetSearchText(text string) { s.filter.Search = text }

// ClearAll drops every collection. Filter state is kept.
func (s *Store) ClearAll() {
	s.transactions = nil
	s.goals = nil
	s.cards = nil
	s.accounts = nil
	s.members = nil
}

func deleteByID[T any](items []T, id string, key func(T) string) []T {
	for i := range items {
		if key(items[i]) == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
