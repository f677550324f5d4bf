package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mycash/internal/avatar"
	"mycash/internal/config"
	"mycash/internal/export"
	"mycash/internal/finance"
	"mycash/internal/format"
)

type exportDoneMsg struct {
	paths []string
	err   error
}

type configSavedMsg struct {
	err error
}

type avatarLoadedMsg struct {
	memberID string
	url      string
	err      error
}

// profileTab manages family members, goals, data export and the clear-all
// flow. Clearing asks twice.
type profileTab struct {
	cursor       int
	confirmClear bool
	status       string

	avatarInput  textinput.Model
	avatarTarget string
}

func newProfileTab() profileTab {
	in := textinput.New()
	in.Placeholder = "/caminho/para/foto.png"
	in.CharLimit = 256
	return profileTab{avatarInput: in}
}

func exportCmd(s *finance.Store, dir string) tea.Cmd {
	snap := export.Collect(s)
	return func() tea.Msg {
		jsonPath, err := export.WriteJSON(dir, snap)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		csvPath, err := export.WriteCSV(dir, snap)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{paths: []string{jsonPath, csvPath}}
	}
}

func saveConfigCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{err: config.Save(cfg)}
	}
}

func loadAvatarCmd(memberID, path string) tea.Cmd {
	return func() tea.Msg {
		url, err := avatar.LoadDataURL(path)
		return avatarLoadedMsg{memberID: memberID, url: url, err: err}
	}
}

func (pt *profileTab) handleMsg(msg tea.Msg, s *finance.Store) {
	switch m := msg.(type) {
	case exportDoneMsg:
		if m.err != nil {
			pt.status = "erro ao exportar: " + m.err.Error()
			return
		}
		pt.status = "exportado: " + strings.Join(m.paths, ", ")
	case avatarLoadedMsg:
		if m.err != nil {
			pt.status = m.err.Error()
			return
		}
		url := m.url
		s.UpdateFamilyMember(m.memberID, finance.FamilyMemberPatch{AvatarURL: &url})
		pt.status = "foto atualizada"
	case configSavedMsg:
		if m.err != nil {
			pt.status = "erro ao salvar preferências: " + m.err.Error()
			return
		}
		pt.status = "preferências salvas"
	}
}

func (pt *profileTab) handleKey(msg tea.KeyMsg, s *finance.Store, exportDir string) tea.Cmd {
	// Avatar path entry takes over the keyboard while active.
	if pt.avatarTarget != "" {
		switch msg.String() {
		case "esc":
			pt.avatarTarget = ""
			pt.avatarInput.Reset()
		case "enter":
			path := strings.TrimSpace(pt.avatarInput.Value())
			target := pt.avatarTarget
			pt.avatarTarget = ""
			pt.avatarInput.Reset()
			if path != "" {
				return loadAvatarCmd(target, path)
			}
		default:
			var cmd tea.Cmd
			pt.avatarInput, cmd = pt.avatarInput.Update(msg)
			return cmd
		}
		return nil
	}

	members := s.FamilyMembers()
	key := msg.String()

	// Anything but a second "c" cancels the pending clear.
	if pt.confirmClear && key != "c" {
		pt.confirmClear = false
		pt.status = "limpeza cancelada"
	}

	switch key {
	case "up", "k":
		if pt.cursor > 0 {
			pt.cursor--
		}
	case "down", "j":
		if pt.cursor < len(members)-1 {
			pt.cursor++
		}
	case "v":
		if pt.cursor < len(members) {
			pt.avatarTarget = members[pt.cursor].ID
			pt.avatarInput.Focus()
		}
	case "e":
		pt.status = "exportando..."
		return exportCmd(s, exportDir)
	case "c":
		if pt.confirmClear {
			s.ClearAll()
			pt.confirmClear = false
			pt.cursor = 0
			pt.status = "todos os dados foram apagados"
		} else {
			pt.confirmClear = true
			pt.status = "apagar TODOS os dados? pressione c de novo para confirmar"
		}
	}
	return nil
}

func (pt profileTab) view(s *finance.Store, fm format.Formatter, width int) string {
	var members strings.Builder
	members.WriteString(titleStyle.Render("Família"))
	for i, m := range s.FamilyMembers() {
		photo := mutedStyle.Render("sem foto")
		if m.AvatarURL != "" {
			photo = incomeStyle.Render("foto ok")
		}
		line := fmt.Sprintf("%-20s %-8s %s  %s",
			truncate(m.Name, 20), m.Role, fm.Currency(m.MonthlyIncome), photo)
		if i == pt.cursor {
			line = selectedRowStyle.Render(line)
		}
		members.WriteString("\n" + line)
	}
	if pt.avatarTarget != "" {
		members.WriteString("\n\n" + labelStyle.Render("Foto: ") + pt.avatarInput.View())
	}

	var goals strings.Builder
	goals.WriteString(titleStyle.Render("Metas"))
	for _, g := range s.Goals() {
		pct := 0.0
		if g.TargetAmount > 0 {
			pct = g.CurrentAmount / g.TargetAmount * 100
		}
		const barWidth = 20
		filled := int(pct / 100 * barWidth)
		if filled > barWidth {
			filled = barWidth
		}
		bar := incomeStyle.Render(strings.Repeat("█", filled)) +
			mutedStyle.Render(strings.Repeat("░", barWidth-filled))
		goals.WriteString(fmt.Sprintf("\n%-22s %s %s de %s",
			truncate(g.Name, 22), bar, fm.Currency(g.CurrentAmount), fm.Currency(g.TargetAmount)))
	}

	help := mutedStyle.Render("v foto, e exporta JSON+CSV, f formato de data, c limpa tudo (duas vezes)")
	status := ""
	if pt.status != "" {
		status = warnStyle.Render(pt.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Width(width-2).Render(members.String()),
		panelStyle.Width(width-2).Render(goals.String()),
		help, status)
}
