package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mycash/internal/finance"
	"mycash/internal/format"
)

// dashboard holds the animated summary numbers and the cursor over the
// pending-expenses list.
type dashboard struct {
	now time.Time

	balance  countUp
	income   countUp
	expenses countUp

	pendingCursor int
}

// retarget points every summary animation at the store's current
// aggregates. Call it after anything that changes filters or data.
func (d *dashboard) retarget(s *finance.Store) tea.Cmd {
	return tea.Batch(
		d.balance.Set(s.TotalBalance()),
		d.income.Set(s.IncomeForPeriod()),
		d.expenses.Set(s.ExpensesForPeriod()),
	)
}

func (d *dashboard) tick(msg tea.Msg) tea.Cmd {
	return tea.Batch(
		d.balance.Update(msg),
		d.income.Update(msg),
		d.expenses.Update(msg),
	)
}

func (d *dashboard) handleKey(msg tea.KeyMsg, s *finance.Store) tea.Cmd {
	pending := s.PendingExpenses()
	switch msg.String() {
	case "up", "k":
		if d.pendingCursor > 0 {
			d.pendingCursor--
		}
	case "down", "j":
		if d.pendingCursor < len(pending)-1 {
			d.pendingCursor++
		}
	case "x":
		if d.pendingCursor < len(pending) {
			s.MarkExpensePaid(pending[d.pendingCursor].ID)
			if d.pendingCursor > 0 {
				d.pendingCursor--
			}
			return d.retarget(s)
		}
	}
	return nil
}

func (d *dashboard) view(s *finance.Store, fm format.Formatter, width int) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		summaryCard("Saldo total", fm.Currency(d.balance.Value()), colorBlue),
		summaryCard("Receitas", fm.Currency(d.income.Value()), colorIncome),
		summaryCard("Despesas", fm.Currency(d.expenses.Value()), colorExpense),
		summaryCard("Poupança", fm.Percent(s.SavingsRate()), colorTeal),
	)

	left := panelStyle.Width(width/2 - 2).Render(categoryBars(s, fm))
	right := panelStyle.Width(width/2 - 2).Render(flowChart(s, fm, d.now))
	charts := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	pending := panelStyle.Width(width - 2).Render(d.pendingView(s, fm))

	return lipgloss.JoinVertical(lipgloss.Left, cards, charts, pending)
}

func summaryCard(label, value string, accent lipgloss.Color) string {
	body := labelStyle.Render(label) + "\n" +
		lipgloss.NewStyle().Bold(true).Foreground(accent).Render(value)
	return panelStyle.Width(22).Render(body)
}

// categoryBars renders the period's expenses by category as proportional
// bars, largest first.
func categoryBars(s *finance.Store, fm format.Formatter) string {
	shares := s.CategoryBreakdown()
	if len(shares) == 0 {
		return titleStyle.Render("Gastos por categoria") + "\n" + mutedStyle.Render("sem despesas no período")
	}

	const barWidth = 18
	var b strings.Builder
	b.WriteString(titleStyle.Render("Gastos por categoria"))
	for i, share := range shares {
		if i >= 6 {
			break
		}
		filled := int(share.Percent / 100 * barWidth)
		if filled < 1 {
			filled = 1
		}
		bar := lipgloss.NewStyle().Foreground(barColor(i)).
			Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled))
		b.WriteString(fmt.Sprintf("\n%-14s %s %s %s",
			truncate(share.Category, 14), bar,
			fm.Currency(share.Value), mutedStyle.Render(fm.Percent(share.Percent))))
	}
	return b.String()
}

// flowChart renders the last six months of income vs expenses as paired
// bars, scaled against the largest value in the window.
func flowChart(s *finance.Store, fm format.Formatter, now time.Time) string {
	points := s.MonthlyFlow(6, now)
	maxV := 0.0
	for _, p := range points {
		if p.Income > maxV {
			maxV = p.Income
		}
		if p.Expense > maxV {
			maxV = p.Expense
		}
	}
	if maxV <= 0 {
		maxV = 1
	}

	const barWidth = 16
	var b strings.Builder
	b.WriteString(titleStyle.Render("Fluxo mensal"))
	for _, p := range points {
		in := int(p.Income / maxV * barWidth)
		out := int(p.Expense / maxV * barWidth)
		b.WriteString("\n" + labelStyle.Render(format.MonthLabel(p.Month)))
		b.WriteString("\n  " + incomeStyle.Render(strings.Repeat("█", in)) + " " + fm.Currency(p.Income))
		b.WriteString("\n  " + expenseStyle.Render(strings.Repeat("█", out)) + " " + fm.Currency(p.Expense))
	}
	return b.String()
}

func (d dashboard) pendingView(s *finance.Store, fm format.Formatter) string {
	pending := s.PendingExpenses()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contas a pagar"))
	if len(pending) == 0 {
		b.WriteString("\n" + mutedStyle.Render("nenhuma conta pendente"))
		return b.String()
	}
	for i, p := range pending {
		line := fmt.Sprintf("%s  %-28s %s", fm.DayMonth(p.Date), truncate(p.Description, 28), fm.Currency(p.Value))
		if p.IsRecurring {
			line += " " + mutedStyle.Render("(recorrente)")
		}
		if i == d.pendingCursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString("\n" + line)
	}
	b.WriteString("\n" + mutedStyle.Render("x marca como paga"))
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
