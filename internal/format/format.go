// Package format renders money, dates and periods following Brazilian
// Portuguese conventions. Display only; nothing here touches the data model.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var monthsShort = []string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Formatter renders values for one locale/currency configuration.
type Formatter struct {
	printer *message.Printer
	symbol  string
	dateFmt string
}

// New builds a Formatter. Unparsable locales fall back to pt-BR.
func New(locale, symbol, dateFmt string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	if symbol == "" {
		symbol = "R$"
	}
	if dateFmt == "" {
		dateFmt = "02/01/2006"
	}
	return Formatter{printer: message.NewPrinter(tag), symbol: symbol, dateFmt: dateFmt}
}

// Currency renders "R$ 1.234,56". The sign stays with the number.
func (f Formatter) Currency(v float64) string {
	return f.symbol + " " + f.printer.Sprintf("%.2f", v)
}

// Percent renders "12,5%" with one decimal place.
func (f Formatter) Percent(v float64) string {
	return f.printer.Sprintf("%.1f", v) + "%"
}

// Date converts an ISO date to the configured presentation format
// (DD/MM/YYYY by default). Unparsable input passes through unchanged.
func (f Formatter) Date(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format(f.dateFmt)
}

// DayMonth renders the "due on 25/03" short form.
func (f Formatter) DayMonth(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01")
}

// MonthLabel renders a YYYY-MM key as "mar 2024".
func MonthLabel(yearMonth string) string {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return monthsShort[int(t.Month())-1] + " " + strconv.Itoa(t.Year())
}

// PeriodLabel renders an inclusive ISO range as "01 mar - 31 mar, 2024".
func PeriodLabel(startISO, endISO string) string {
	a, errA := time.Parse("2006-01-02", startISO)
	b, errB := time.Parse("2006-01-02", endISO)
	if errA != nil || errB != nil {
		return startISO + " - " + endISO
	}
	return fmt.Sprintf("%02d %s - %02d %s, %d",
		a.Day(), monthsShort[int(a.Month())-1],
		b.Day(), monthsShort[int(b.Month())-1], b.Year())
}

// ParseAmount parses pt-BR money input: "." as thousands separator and ","
// as decimal mark ("1.234,56"). Returns 0 for unparsable input, matching
// the form's lenient behavior.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
