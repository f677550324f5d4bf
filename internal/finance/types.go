package finance

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusCancelled TransactionStatus = "cancelled"
)

type CardTheme string

const (
	ThemeBlack CardTheme = "black"
	ThemeLime  CardTheme = "lime"
	ThemeWhite CardTheme = "white"
)

// Transaction is a single money movement. Date is a zero-padded ISO
// YYYY-MM-DD string, so lexicographic order matches chronological order.
// MemberID is empty for household-level (unattributed) transactions.
type Transaction struct {
	ID           string            `json:"id"`
	Type         TransactionType   `json:"type"`
	Value        float64           `json:"value"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Date         string            `json:"date"`
	AccountID    string            `json:"accountId"`
	MemberID     string            `json:"memberId,omitempty"`
	Installments int               `json:"installments"`
	Status       TransactionStatus `json:"status"`
	IsRecurring  bool              `json:"isRecurring"`
	IsPaid       bool              `json:"isPaid"`
}

// Goal tracks savings toward a target. CurrentAmount may exceed TargetAmount.
type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty"`
	Description   string  `json:"description,omitempty"`
}

type CreditCard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	HolderID    string    `json:"holderId"`
	ClosingDay  int       `json:"closingDay"`
	DueDay      int       `json:"dueDay"`
	Limit       float64   `json:"limit"`
	CurrentBill float64   `json:"currentBill"`
	Theme       CardTheme `json:"theme"`
	LastDigits  string    `json:"lastDigits,omitempty"`
}

type BankAccount struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	HolderID string  `json:"holderId"`
	Balance  float64 `json:"balance"`
}

type FamilyMember struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	AvatarURL     string  `json:"avatarUrl,omitempty"`
	Email         string  `json:"email,omitempty"`
	MonthlyIncome float64 `json:"monthlyIncome"`
}

// ---------------------------------------------------------------------------
// Account references
// ---------------------------------------------------------------------------

// AccountKind tags the fundable source a transaction settles against.
type AccountKind int

const (
	AccountUnknown AccountKind = iota
	AccountBank
	AccountCard
)

// AccountRef is the resolved, typed form of Transaction.AccountID. Exactly
// one of Bank/Card is set when Kind is not AccountUnknown.
type AccountRef struct {
	Kind AccountKind
	Bank *BankAccount
	Card *CreditCard
}

// Label renders the reference the way account selectors display it.
func (r AccountRef) Label() string {
	switch r.Kind {
	case AccountBank:
		return r.Bank.Name
	case AccountCard:
		digits := r.Card.LastDigits
		if digits == "" {
			digits = "****"
		}
		return "Crédito " + r.Card.Name + " **** " + digits
	default:
		return "Conta"
	}
}

// ---------------------------------------------------------------------------
// Filter state
// ---------------------------------------------------------------------------

type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

// DateRange is inclusive on both ends. An inverted range is accepted and
// simply matches nothing.
type DateRange struct {
	Start string `json:"startDate"`
	End   string `json:"endDate"`
}

// FilterState is the shared filter context applied by the derived views.
type FilterState struct {
	MemberID string
	Range    DateRange
	Type     TypeFilter
	Search   string
}

// ---------------------------------------------------------------------------
// Partial updates
// ---------------------------------------------------------------------------

// Patch types carry optional fields for merge-by-id updates. Nil means
// "leave unchanged".

type TransactionPatch struct {
	Type         *TransactionType
	Value        *float64
	Description  *string
	Category     *string
	Date         *string
	AccountID    *string
	MemberID     *string
	Installments *int
	Status       *TransactionStatus
	IsRecurring  *bool
	IsPaid       *bool
}

type GoalPatch struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *string
	Description   *string
}

type CreditCardPatch struct {
	Name        *string
	HolderID    *string
	ClosingDay  *int
	DueDay      *int
	Limit       *float64
	CurrentBill *float64
	Theme       *CardTheme
	LastDigits  *string
}

type BankAccountPatch struct {
	Name     *string
	HolderID *string
	Balance  *float64
}

type FamilyMemberPatch struct {
	Name          *string
	Role          *string
	AvatarURL     *string
	Email         *string
	MonthlyIncome *float64
}
