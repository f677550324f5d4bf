package format

import "testing"

func ptBR() Formatter { return New("pt-BR", "R$", "02/01/2006") }

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.56, "R$ 1.234,56"},
		{0, "R$ 0,00"},
		{-85.5, "R$ -85,50"},
		{1000000, "R$ 1.000.000,00"},
	}
	f := ptBR()
	for _, tc := range tests {
		if got := f.Currency(tc.in); got != tc.want {
			t.Fatalf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCurrencyCustomSymbol(t *testing.T) {
	f := New("pt-BR", "$", "02/01/2006")
	if got := f.Currency(10); got != "$ 10,00" {
		t.Fatalf("custom symbol = %q", got)
	}
}

func TestPercent(t *testing.T) {
	f := ptBR()
	if got := f.Percent(12.5); got != "12,5%" {
		t.Fatalf("Percent = %q", got)
	}
}

func TestDate(t *testing.T) {
	f := ptBR()
	if got := f.Date("2024-03-05"); got != "05/03/2024" {
		t.Fatalf("Date = %q", got)
	}
	if got := f.Date("garbage"); got != "garbage" {
		t.Fatalf("unparsable date = %q, want pass-through", got)
	}
	if got := f.DayMonth("2024-03-25"); got != "25/03" {
		t.Fatalf("DayMonth = %q", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2024-03"); got != "mar 2024" {
		t.Fatalf("MonthLabel = %q", got)
	}
}

func TestPeriodLabel(t *testing.T) {
	if got := PeriodLabel("2024-03-01", "2024-03-31"); got != "01 mar - 31 mar, 2024" {
		t.Fatalf("PeriodLabel = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"85,50", 85.5},
		{"1000", 1000},
		{" 42 ", 42},
		{"abc", 0},
		{"", 0},
	}
	for _, tc := range tests {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
