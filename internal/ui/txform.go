package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mycash/internal/finance"
	"mycash/internal/format"
)

// Form field order. Text fields index into txForm.inputs; the others are
// toggles or cycles handled directly.
const (
	fieldType = iota
	fieldValue
	fieldDescription
	fieldCategory
	fieldAccount
	fieldInstallments
	fieldRecurring
	fieldCount
)

type accountOption struct {
	id     string
	label  string
	isCard bool
}

// txForm is the add-transaction modal. Validation runs on submit and
// field errors render inline until the next attempt.
type txForm struct {
	store *finance.Store
	now   time.Time

	inputs map[int]textinput.Model
	focus  int

	txType     finance.TransactionType
	accounts   []accountOption
	accountIdx int
	recurring  bool

	errs map[string]string
}

func newTxForm(s *finance.Store, now time.Time) txForm {
	inputs := make(map[int]textinput.Model, 4)
	for _, idx := range []int{fieldValue, fieldDescription, fieldCategory, fieldInstallments} {
		in := textinput.New()
		in.CharLimit = 64
		inputs[idx] = in
	}
	v := inputs[fieldValue]
	v.Placeholder = "0,00"
	inputs[fieldValue] = v
	n := inputs[fieldInstallments]
	n.Placeholder = "1"
	n.CharLimit = 2
	inputs[fieldInstallments] = n

	f := txForm{
		store:    s,
		now:      now,
		inputs:   inputs,
		txType:   finance.Expense,
		accounts: accountOptions(s),
	}
	f.setFocus(fieldType)
	return f
}

// accountOptions flattens bank accounts and credit cards into one selector
// list, banks first.
func accountOptions(s *finance.Store) []accountOption {
	var opts []accountOption
	for _, a := range s.BankAccounts() {
		opts = append(opts, accountOption{id: a.ID, label: a.Name})
	}
	for _, c := range s.CreditCards() {
		ref, ok := s.ResolveAccount(c.ID)
		if !ok {
			continue
		}
		opts = append(opts, accountOption{id: c.ID, label: ref.Label(), isCard: true})
	}
	return opts
}

func (f *txForm) setFocus(idx int) tea.Cmd {
	f.focus = idx
	var cmd tea.Cmd
	for i, in := range f.inputs {
		if i == idx {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
		f.inputs[i] = in
	}
	return cmd
}

// Handle processes one key. It returns the new transaction when the form
// submits cleanly, and closed=true when the modal should go away. The
// command keeps the focused input's cursor blinking.
func (f *txForm) Handle(msg tea.KeyMsg) (*finance.Transaction, bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return nil, true, nil
	case "tab", "down":
		return nil, false, f.setFocus((f.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return nil, false, f.setFocus((f.focus + fieldCount - 1) % fieldCount)
	case "enter":
		tx, closed := f.submit()
		return tx, closed, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldType:
		if s := msg.String(); s == "left" || s == "right" || s == " " {
			if f.txType == finance.Expense {
				f.txType = finance.Income
			} else {
				f.txType = finance.Expense
			}
		}
	case fieldAccount:
		if len(f.accounts) > 0 {
			switch msg.String() {
			case "right", " ":
				f.accountIdx = (f.accountIdx + 1) % len(f.accounts)
			case "left":
				f.accountIdx = (f.accountIdx + len(f.accounts) - 1) % len(f.accounts)
			}
		}
	case fieldRecurring:
		if s := msg.String(); s == "left" || s == "right" || s == " " {
			f.recurring = !f.recurring
		}
	default:
		in := f.inputs[f.focus]
		in, cmd = in.Update(msg)
		f.inputs[f.focus] = in
	}
	return nil, false, cmd
}

func (f *txForm) build() finance.TransactionForm {
	installments := 1
	if raw := strings.TrimSpace(f.inputs[fieldInstallments].Value()); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			installments = n
		} else {
			installments = 0
		}
	}
	form := finance.TransactionForm{
		Type:         f.txType,
		Value:        format.ParseAmount(f.inputs[fieldValue].Value()),
		Description:  f.inputs[fieldDescription].Value(),
		Category:     f.inputs[fieldCategory].Value(),
		Date:         f.now.Format("2006-01-02"),
		Installments: installments,
		IsRecurring:  f.recurring,
		MemberID:     f.store.Filter().MemberID,
	}
	if f.accountIdx < len(f.accounts) {
		opt := f.accounts[f.accountIdx]
		form.AccountID = opt.id
		form.IsCardAccount = opt.isCard
	}
	return form
}

func (f *txForm) submit() (*finance.Transaction, bool) {
	form := f.build()
	f.errs = finance.ValidateTransactionForm(form)
	if len(f.errs) > 0 {
		return nil, false
	}
	tx := finance.Transaction{
		Type:         form.Type,
		Value:        form.Value,
		Description:  strings.TrimSpace(form.Description),
		Category:     strings.TrimSpace(form.Category),
		Date:         form.Date,
		AccountID:    form.AccountID,
		MemberID:     form.MemberID,
		Installments: form.Installments,
		Status:       finance.StatusCompleted,
		IsRecurring:  form.IsRecurring,
		IsPaid:       true,
	}
	return &tx, true
}

func (f txForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Nova transação"))
	b.WriteString("\n\n")

	typeLabel := "Despesa"
	if f.txType == finance.Income {
		typeLabel = "Receita"
	}
	b.WriteString(f.row(fieldType, "Tipo", typeLabel))
	b.WriteString(f.row(fieldValue, "Valor", f.inputs[fieldValue].View()))
	f.writeErr(&b, "value")
	b.WriteString(f.row(fieldDescription, "Descrição", f.inputs[fieldDescription].View()))
	f.writeErr(&b, "description")
	b.WriteString(f.row(fieldCategory, "Categoria", f.inputs[fieldCategory].View()))
	f.writeErr(&b, "category")
	if f.focus == fieldCategory {
		if sug := f.store.SuggestCategories(f.inputs[fieldCategory].Value(), 3); len(sug) > 0 {
			b.WriteString(mutedStyle.Render("  sugestões: " + strings.Join(sug, ", ")))
			b.WriteString("\n")
		}
	}

	accountLabel := "nenhuma conta cadastrada"
	if f.accountIdx < len(f.accounts) {
		accountLabel = f.accounts[f.accountIdx].label
	}
	b.WriteString(f.row(fieldAccount, "Conta", accountLabel))
	f.writeErr(&b, "account")

	b.WriteString(f.row(fieldInstallments, "Parcelas", f.inputs[fieldInstallments].View()))
	f.writeErr(&b, "installments")

	recurringLabel := "não"
	if f.recurring {
		recurringLabel = "sim"
	}
	b.WriteString(f.row(fieldRecurring, "Recorrente", recurringLabel))

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter salva, esc cancela, tab muda o campo"))
	return panelFocusStyle.Render(b.String())
}

func (f txForm) row(idx int, label, value string) string {
	marker := "  "
	if idx == f.focus {
		marker = lipgloss.NewStyle().Foreground(colorAccent).Render("> ")
	}
	return marker + labelStyle.Render(label+": ") + value + "\n"
}

func (f txForm) writeErr(b *strings.Builder, key string) {
	if msg, ok := f.errs[key]; ok {
		b.WriteString("  " + errorStyle.Render(msg) + "\n")
	}
}
