package ui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

const (
	colorAccent  = colorLavender
	colorIncome  = colorGreen
	colorExpense = colorRed
	colorWarning = colorYellow
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	mutedStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	incomeStyle  = lipgloss.NewStyle().Foreground(colorIncome)
	expenseStyle = lipgloss.NewStyle().Foreground(colorExpense)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)

	tabActiveStyle = lipgloss.NewStyle().Bold(true).
			Foreground(colorCrust).Background(colorAccent).Padding(0, 2)
	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	panelFocusStyle = panelStyle.BorderForeground(colorAccent)

	selectedRowStyle = lipgloss.NewStyle().Foreground(colorCrust).Background(colorAccent)

	footerStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Background(colorCrust).Padding(0, 1)
)

// barPalette colors category bars in display order, wrapping when there are
// more categories than colors.
var barPalette = []lipgloss.Color{
	colorGreen, colorTeal, colorPeach, colorBlue,
	colorYellow, colorPink, colorSky, colorMauve,
}

func barColor(i int) lipgloss.Color {
	return barPalette[i%len(barPalette)]
}
