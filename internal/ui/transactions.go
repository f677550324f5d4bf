package ui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mycash/internal/finance"
	"mycash/internal/format"
)

// transactionsTab is the filtered ledger. ids mirrors the row order so the
// delete key can target the selected transaction.
type transactionsTab struct {
	table      table.Model
	ids        []string
	suggestion string
}

func newTransactionsTab() transactionsTab {
	cols := []table.Column{
		{Title: "Data", Width: 10},
		{Title: "Descrição", Width: 30},
		{Title: "Categoria", Width: 16},
		{Title: "Conta", Width: 24},
		{Title: "Valor", Width: 14},
	}
	tbl := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(14))

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorText).
		BorderStyle(lipgloss.NormalBorder()).BorderForeground(colorSurface1).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(colorCrust).Background(colorAccent)
	tbl.SetStyles(styles)

	return transactionsTab{table: tbl}
}

// refresh rebuilds the rows from the store's filtered view.
func (tt *transactionsTab) refresh(s *finance.Store, fm format.Formatter) {
	txs := s.FilteredTransactions()
	rows := make([]table.Row, 0, len(txs))
	ids := make([]string, 0, len(txs))
	for _, t := range txs {
		value := fm.Currency(t.Value)
		if t.Type == finance.Expense {
			value = "-" + value
		}
		account := "Conta"
		if ref, ok := s.ResolveAccount(t.AccountID); ok {
			account = ref.Label()
		}
		rows = append(rows, table.Row{fm.Date(t.Date), t.Description, t.Category, account, value})
		ids = append(ids, t.ID)
	}
	tt.table.SetRows(rows)
	tt.ids = ids
	if cur := tt.table.Cursor(); cur >= len(rows) && len(rows) > 0 {
		tt.table.SetCursor(len(rows) - 1)
	}

	// When a search comes up empty, offer the closest known category.
	tt.suggestion = ""
	if len(rows) == 0 {
		if query := s.Filter().Search; query != "" {
			if sug := s.SuggestCategories(query, 1); len(sug) > 0 {
				tt.suggestion = sug[0]
			}
		}
	}
}

func (tt *transactionsTab) handleKey(msg tea.KeyMsg, s *finance.Store, fm format.Formatter) tea.Cmd {
	if msg.String() == "d" {
		if cur := tt.table.Cursor(); cur >= 0 && cur < len(tt.ids) {
			s.DeleteTransaction(tt.ids[cur])
			tt.refresh(s, fm)
		}
		return nil
	}
	var cmd tea.Cmd
	tt.table, cmd = tt.table.Update(msg)
	return cmd
}

func (tt transactionsTab) view(width int) string {
	body := tt.table.View()
	if len(tt.ids) == 0 {
		body = mutedStyle.Render("nenhuma transação no filtro atual")
		if tt.suggestion != "" {
			body += "\n" + labelStyle.Render("você quis dizer \""+tt.suggestion+"\"?")
		}
	}
	help := mutedStyle.Render("a adiciona, d exclui, / busca, t tipo, m membro, p período")
	return panelStyle.Width(width - 2).Render(body + "\n" + help)
}
