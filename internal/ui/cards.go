package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mycash/internal/finance"
	"mycash/internal/format"
)

type cardsTab struct {
	cursor int
}

// cardFace maps the stored visual theme to terminal colors.
func cardFace(theme finance.CardTheme) lipgloss.Style {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Width(34)
	switch theme {
	case finance.ThemeLime:
		return base.BorderForeground(colorGreen).Foreground(colorGreen)
	case finance.ThemeWhite:
		return base.BorderForeground(colorText).Foreground(colorText)
	default:
		return base.BorderForeground(colorOverlay0).Foreground(colorSubtext0)
	}
}

func (ct *cardsTab) handleKey(msg tea.KeyMsg, s *finance.Store) {
	n := len(s.CreditCards())
	switch msg.String() {
	case "up", "k", "left":
		if ct.cursor > 0 {
			ct.cursor--
		}
	case "down", "j", "right":
		if ct.cursor < n-1 {
			ct.cursor++
		}
	case "d":
		cards := s.CreditCards()
		if ct.cursor < len(cards) {
			s.DeleteCreditCard(cards[ct.cursor].ID)
			if ct.cursor > 0 {
				ct.cursor--
			}
		}
	}
}

func (ct cardsTab) view(s *finance.Store, fm format.Formatter, width int) string {
	cards := s.CreditCards()
	if len(cards) == 0 {
		return panelStyle.Width(width - 2).Render(mutedStyle.Render("nenhum cartão cadastrado"))
	}

	faces := make([]string, 0, len(cards))
	for i, c := range cards {
		holder := ""
		if m, ok := s.MemberByID(c.HolderID); ok {
			holder = m.Name
		}
		digits := c.LastDigits
		if digits == "" {
			digits = "****"
		}

		usage := 0.0
		if c.Limit > 0 {
			usage = c.CurrentBill / c.Limit * 100
		}
		const barWidth = 20
		filled := int(usage / 100 * barWidth)
		if filled > barWidth {
			filled = barWidth
		}
		usageStyle := incomeStyle
		if usage >= 80 {
			usageStyle = expenseStyle
		} else if usage >= 50 {
			usageStyle = warnStyle
		}
		bar := usageStyle.Render(strings.Repeat("█", filled)) +
			mutedStyle.Render(strings.Repeat("░", barWidth-filled))

		body := fmt.Sprintf("%s\n**** **** **** %s\n%s\n\nFatura  %s\nLimite  %s\n%s %s\nFecha dia %d, vence dia %d",
			lipgloss.NewStyle().Bold(true).Render(c.Name),
			digits, holder,
			fm.Currency(c.CurrentBill), fm.Currency(c.Limit),
			bar, fm.Percent(usage),
			c.ClosingDay, c.DueDay)

		face := cardFace(c.Theme).Render(body)
		if i == ct.cursor {
			face = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorAccent).
				Render(face)
		}
		faces = append(faces, face)
	}

	perRow := width / 40
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for i := 0; i < len(faces); i += perRow {
		end := i + perRow
		if end > len(faces) {
			end = len(faces)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, faces[i:end]...))
	}
	accounts := panelStyle.Width(width - 2).Render(bankAccountsView(s, fm))
	help := mutedStyle.Render("a adiciona cartão, d exclui o selecionado")
	return lipgloss.JoinVertical(lipgloss.Left, append(rows, accounts, help)...)
}

func bankAccountsView(s *finance.Store, fm format.Formatter) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contas bancárias"))
	accounts := s.BankAccounts()
	if len(accounts) == 0 {
		b.WriteString("\n" + mutedStyle.Render("nenhuma conta cadastrada"))
		return b.String()
	}
	for _, a := range accounts {
		holder := ""
		if m, ok := s.MemberByID(a.HolderID); ok {
			holder = m.Name
		}
		b.WriteString(fmt.Sprintf("\n%-24s %-20s %s",
			truncate(a.Name, 24), holder, fm.Currency(a.Balance)))
	}
	return b.String()
}
