package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mycash/internal/finance"
	"mycash/internal/format"
)

// Shared plumbing for the small add-card / add-member modals: a column of
// text inputs plus optional cycle fields appended after them.

type fieldSpec struct {
	label       string
	placeholder string
	limit       int
}

type entityForm struct {
	title  string
	inputs []textinput.Model
	labels []string
	focus  int
	extra  int // cycle fields after the text inputs
	errs   map[string]string
}

func newEntityForm(title string, fields []fieldSpec, extra int) entityForm {
	inputs := make([]textinput.Model, len(fields))
	labels := make([]string, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = f.limit
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
		labels[i] = f.label
	}
	return entityForm{title: title, inputs: inputs, labels: labels, extra: extra}
}

func (f *entityForm) fieldCount() int { return len(f.inputs) + f.extra }

func (f *entityForm) setFocus(idx int) tea.Cmd {
	f.focus = idx
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == idx {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// handleNav consumes focus movement and text entry. It reports whether the
// key was an enter (submit) or esc (close); cycle fields are the caller's.
// The returned command keeps the focused input's cursor blinking.
func (f *entityForm) handleNav(msg tea.KeyMsg) (submit, closed bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return false, true, nil
	case "enter":
		return true, false, nil
	case "tab", "down":
		cmd = f.setFocus((f.focus + 1) % f.fieldCount())
	case "shift+tab", "up":
		cmd = f.setFocus((f.focus + f.fieldCount() - 1) % f.fieldCount())
	default:
		if f.focus < len(f.inputs) {
			f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		}
	}
	return false, false, cmd
}

func (f entityForm) viewRows(extraRows []string, errKeys []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	row := func(idx int, label, value string) {
		marker := "  "
		if idx == f.focus {
			marker = lipgloss.NewStyle().Foreground(colorAccent).Render("> ")
		}
		if label != "" {
			value = labelStyle.Render(label+": ") + value
		}
		b.WriteString(marker + value + "\n")
	}
	for i := range f.inputs {
		row(i, f.labels[i], f.inputs[i].View())
	}
	for i, extra := range extraRows {
		row(len(f.inputs)+i, "", extra)
	}
	for _, key := range errKeys {
		if msg, ok := f.errs[key]; ok {
			b.WriteString("  " + errorStyle.Render(msg) + "\n")
		}
	}
	b.WriteString("\n" + mutedStyle.Render("enter salva, esc cancela, tab muda o campo"))
	return panelFocusStyle.Render(b.String())
}

func (f entityForm) intValue(idx int) int {
	n, err := strconv.Atoi(strings.TrimSpace(f.inputs[idx].Value()))
	if err != nil {
		return 0
	}
	return n
}

// ---------------------------------------------------------------------------
// Add credit card
// ---------------------------------------------------------------------------

var cardThemes = []finance.CardTheme{finance.ThemeBlack, finance.ThemeLime, finance.ThemeWhite}

type cardForm struct {
	entityForm
	holders   []finance.FamilyMember
	holderIdx int
	themeIdx  int
}

func newCardForm(s *finance.Store) cardForm {
	fields := []fieldSpec{
		{"Nome", "Nubank", 32},
		{"Últimos dígitos", "1234", 4},
		{"Dia de fechamento", "15", 2},
		{"Dia de vencimento", "22", 2},
		{"Limite", "5.000,00", 16},
	}
	return cardForm{
		entityForm: newEntityForm("Novo cartão", fields, 2),
		holders:    s.FamilyMembers(),
	}
}

func (f *cardForm) Handle(msg tea.KeyMsg) (*finance.CreditCard, bool, tea.Cmd) {
	holderField := len(f.inputs)
	themeField := holderField + 1

	if f.focus == holderField || f.focus == themeField {
		switch msg.String() {
		case "left", "right", " ":
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			if f.focus == holderField && len(f.holders) > 0 {
				f.holderIdx = (f.holderIdx + delta + len(f.holders)) % len(f.holders)
			}
			if f.focus == themeField {
				f.themeIdx = (f.themeIdx + delta + len(cardThemes)) % len(cardThemes)
			}
			return nil, false, nil
		}
	}

	submit, closed, cmd := f.handleNav(msg)
	if closed {
		return nil, true, nil
	}
	if !submit {
		return nil, false, cmd
	}

	form := finance.CardForm{
		Name:       f.inputs[0].Value(),
		LastDigits: strings.TrimSpace(f.inputs[1].Value()),
		ClosingDay: f.intValue(2),
		DueDay:     f.intValue(3),
		Limit:      format.ParseAmount(f.inputs[4].Value()),
	}
	if f.holderIdx < len(f.holders) {
		form.HolderID = f.holders[f.holderIdx].ID
	}
	f.errs = finance.ValidateCardForm(form)
	if len(f.errs) > 0 {
		return nil, false, nil
	}
	card := finance.CreditCard{
		Name:       strings.TrimSpace(form.Name),
		HolderID:   form.HolderID,
		ClosingDay: form.ClosingDay,
		DueDay:     form.DueDay,
		Limit:      form.Limit,
		Theme:      cardThemes[f.themeIdx],
		LastDigits: form.LastDigits,
	}
	return &card, true, nil
}

func (f cardForm) View() string {
	holder := "nenhum membro"
	if f.holderIdx < len(f.holders) {
		holder = f.holders[f.holderIdx].Name
	}
	extras := []string{
		labelStyle.Render("Titular: ") + holder,
		labelStyle.Render("Tema: ") + string(cardThemes[f.themeIdx]),
	}
	return f.viewRows(extras, []string{"name", "lastDigits", "closingDay", "dueDay", "limit"})
}

// ---------------------------------------------------------------------------
// Add family member
// ---------------------------------------------------------------------------

type memberForm struct {
	entityForm
}

func newMemberForm() memberForm {
	fields := []fieldSpec{
		{"Nome", "Maria Silva", 48},
		{"Função", "Mãe", 24},
		{"E-mail", "", 64},
		{"Renda mensal", "0,00", 16},
	}
	return memberForm{entityForm: newEntityForm("Novo membro", fields, 0)}
}

func (f *memberForm) Handle(msg tea.KeyMsg) (*finance.FamilyMember, bool, tea.Cmd) {
	submit, closed, cmd := f.handleNav(msg)
	if closed {
		return nil, true, nil
	}
	if !submit {
		return nil, false, cmd
	}

	form := finance.MemberForm{
		Name:          f.inputs[0].Value(),
		Role:          f.inputs[1].Value(),
		Email:         strings.TrimSpace(f.inputs[2].Value()),
		MonthlyIncome: format.ParseAmount(f.inputs[3].Value()),
	}
	f.errs = finance.ValidateMemberForm(form)
	if len(f.errs) > 0 {
		return nil, false, nil
	}
	member := finance.FamilyMember{
		Name:          strings.TrimSpace(form.Name),
		Role:          strings.TrimSpace(form.Role),
		Email:         form.Email,
		MonthlyIncome: form.MonthlyIncome,
	}
	return &member, true, nil
}

func (f memberForm) View() string {
	return f.viewRows(nil, []string{"name", "role"})
}
