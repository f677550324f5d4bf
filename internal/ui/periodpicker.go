package ui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mycash/internal/finance"
	"mycash/internal/format"
)

// periodPicker is the modal that sets the store's date range: number keys
// apply a shortcut, or the calendar picks a custom start and end day.
type periodPicker struct {
	now    time.Time
	year   int
	month  time.Month
	cells  []string
	cursor int

	pendingStart string
}

func newPeriodPicker(now time.Time) periodPicker {
	p := periodPicker{now: now, year: now.Year(), month: now.Month()}
	p.loadMonth(p.year, p.month)
	return p
}

func (p *periodPicker) loadMonth(year int, month time.Month) {
	p.year, p.month = year, month
	p.cells = finance.MonthGrid(year, month)
	p.cursor = 0
	for i, c := range p.cells {
		if c != "" {
			p.cursor = i
			break
		}
	}
}

// Handle processes one key. It returns the chosen range when a shortcut or
// a completed start/end pair applies one, and closed=true when the modal
// should go away.
func (p *periodPicker) Handle(msg tea.KeyMsg) (*finance.DateRange, bool) {
	switch msg.String() {
	case "esc":
		return nil, true
	case "1":
		r := finance.CurrentMonth(p.now)
		return &r, true
	case "2":
		r := finance.LastMonth(p.now)
		return &r, true
	case "3":
		r := finance.LastThreeMonths(p.now)
		return &r, true
	case "4":
		r := finance.ThisYear(p.now)
		return &r, true
	case "n":
		y, m := finance.NextMonth(p.year, p.month)
		p.loadMonth(y, m)
	case "b":
		y, m := finance.PrevMonth(p.year, p.month)
		p.loadMonth(y, m)
	case "left":
		p.move(-1)
	case "right":
		p.move(1)
	case "up":
		p.move(-7)
	case "down":
		p.move(7)
	case "enter":
		day := p.cells[p.cursor]
		if day == "" {
			return nil, false
		}
		if p.pendingStart == "" {
			p.pendingStart = day
			return nil, false
		}
		start, end := p.pendingStart, day
		if end < start {
			start, end = end, start
		}
		p.pendingStart = ""
		return &finance.DateRange{Start: start, End: end}, true
	}
	return nil, false
}

func (p *periodPicker) move(delta int) {
	next := p.cursor + delta
	for next >= 0 && next < len(p.cells) && p.cells[next] == "" {
		if delta > 0 {
			next++
		} else {
			next--
		}
	}
	if next >= 0 && next < len(p.cells) {
		p.cursor = next
	}
}

var (
	pickerCellStyle    = lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	pickerCursorStyle  = pickerCellStyle.Foreground(colorCrust).Background(colorAccent)
	pickerPendingStyle = pickerCellStyle.Foreground(colorCrust).Background(colorTeal)
)

func (p periodPicker) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Período"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("[1] mês atual  [2] mês passado  [3] últimos 3 meses  [4] este ano"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(format.MonthLabel(
		strconv.Itoa(p.year) + "-" + twoDigits(int(p.month)))))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(" dom seg ter qua qui sex sáb"))
	b.WriteString("\n")

	for row := 0; row < len(p.cells); row += 7 {
		for col := 0; col < 7 && row+col < len(p.cells); col++ {
			i := row + col
			cell := p.cells[i]
			text := "  "
			if cell != "" {
				text = cell[8:]
			}
			switch {
			case i == p.cursor:
				b.WriteString(pickerCursorStyle.Render(text))
			case cell != "" && cell == p.pendingStart:
				b.WriteString(pickerPendingStyle.Render(text))
			default:
				b.WriteString(pickerCellStyle.Render(text))
			}
		}
		b.WriteString("\n")
	}

	if p.pendingStart != "" {
		b.WriteString(mutedStyle.Render("início: " + p.pendingStart + ", escolha o fim"))
	} else {
		b.WriteString(mutedStyle.Render("enter marca início/fim, n/b troca o mês"))
	}
	return panelFocusStyle.Render(b.String())
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
