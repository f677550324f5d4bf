// Package ui is the Bubble Tea front end. One Model owns the store; every
// mutation and read happens inside its Update loop.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mycash/internal/config"
	"mycash/internal/finance"
	"mycash/internal/format"
)

const appName = "mycash"

// Tab indices
const (
	tabDashboard = iota
	tabTransactions
	tabCards
	tabProfile
	tabCount
)

var tabNames = []string{"Dashboard", "Transações", "Cartões", "Perfil"}

type Model struct {
	store *finance.Store
	cfg   config.Config
	fm    format.Formatter
	keys  keyMap
	now   time.Time

	tab    int
	width  int
	height int

	searching bool
	search    textinput.Model

	picker     *periodPicker
	form       *txForm
	cardForm   *cardForm
	memberForm *memberForm

	dash    dashboard
	txs     transactionsTab
	cards   cardsTab
	profile profileTab

	initCmd tea.Cmd
}

// New wires the root model around an already-populated store.
func New(store *finance.Store, cfg config.Config, now time.Time) Model {
	search := textinput.New()
	search.Placeholder = "buscar descrição ou categoria"
	search.CharLimit = 64

	fm := format.New(cfg.UI.Locale, cfg.UI.CurrencySymbol, cfg.UI.DateFormat)

	m := Model{
		store:   store,
		cfg:     cfg,
		fm:      fm,
		keys:    newKeyMap(),
		now:     now,
		search:  search,
		dash:    dashboard{now: now},
		txs:     newTransactionsTab(),
		profile: newProfileTab(),
	}
	m.txs.refresh(store, fm)
	// Retarget here, not in Init: Init has a value receiver, so animation
	// state bumped there would be lost.
	m.initCmd = m.dash.retarget(store)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case countTickMsg:
		return m, m.dash.tick(msg)

	case exportDoneMsg, avatarLoadedMsg, configSavedMsg:
		m.profile.handleMsg(msg, m.store)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals first: they own the keyboard while open.
	if m.picker != nil {
		r, closed := m.picker.Handle(msg)
		var cmd tea.Cmd
		if r != nil {
			m.store.SetDateRange(*r)
			cmd = m.refresh()
		}
		if closed {
			m.picker = nil
		}
		return m, cmd
	}
	if m.form != nil {
		tx, closed, cmd := m.form.Handle(msg)
		if tx != nil {
			m.store.AddTransaction(*tx)
			cmd = tea.Batch(cmd, m.refresh())
		}
		if closed {
			m.form = nil
		}
		return m, cmd
	}
	if m.cardForm != nil {
		card, closed, cmd := m.cardForm.Handle(msg)
		if card != nil {
			m.store.AddCreditCard(*card)
			cmd = tea.Batch(cmd, m.refresh())
		}
		if closed {
			m.cardForm = nil
		}
		return m, cmd
	}
	if m.memberForm != nil {
		member, closed, cmd := m.memberForm.Handle(msg)
		if member != nil {
			m.store.AddFamilyMember(*member)
		}
		if closed {
			m.memberForm = nil
		}
		return m, cmd
	}
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Reset()
			m.store.SetSearchText("")
			return m, m.refresh()
		case "enter":
			m.searching = false
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.store.SetSearchText(m.search.Value())
		return m, tea.Batch(cmd, m.refresh())
	}
	// The profile tab's avatar input also captures keys.
	if m.tab == tabProfile && m.profile.avatarTarget != "" {
		return m, m.profile.handleKey(msg, m.store, m.cfg.Data.ExportDir)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Period):
		p := newPeriodPicker(m.now)
		m.picker = &p
		return m, nil
	case key.Matches(msg, m.keys.TypeCycle):
		m.store.SetTypeFilter(nextTypeFilter(m.store.Filter().Type))
		return m, m.refresh()
	case key.Matches(msg, m.keys.Member):
		m.store.SetSelectedMember(nextMember(m.store))
		return m, m.refresh()
	case key.Matches(msg, m.keys.Add):
		// "Add" is contextual: card on the cards tab, member on profile,
		// transaction everywhere else.
		switch m.tab {
		case tabCards:
			f := newCardForm(m.store)
			m.cardForm = &f
		case tabProfile:
			f := newMemberForm()
			m.memberForm = &f
		default:
			f := newTxForm(m.store, m.now)
			m.form = &f
		}
		return m, textinput.Blink
	}

	switch m.tab {
	case tabDashboard:
		cmd := m.dash.handleKey(msg, m.store)
		if cmd != nil {
			m.txs.refresh(m.store, m.fm)
		}
		return m, cmd
	case tabTransactions:
		return m, m.txs.handleKey(msg, m.store, m.fm)
	case tabCards:
		m.cards.handleKey(msg, m.store)
		return m, nil
	case tabProfile:
		if msg.String() == "f" {
			return m.toggleDateFormat()
		}
		return m, m.profile.handleKey(msg, m.store, m.cfg.Data.ExportDir)
	}
	return m, nil
}

// toggleDateFormat flips between Brazilian and ISO date display and persists
// the preference.
func (m Model) toggleDateFormat() (tea.Model, tea.Cmd) {
	if m.profile.confirmClear {
		m.profile.confirmClear = false
		m.profile.status = "limpeza cancelada"
	}
	if m.cfg.UI.DateFormat == "02/01/2006" {
		m.cfg.UI.DateFormat = "2006-01-02"
	} else {
		m.cfg.UI.DateFormat = "02/01/2006"
	}
	m.fm = format.New(m.cfg.UI.Locale, m.cfg.UI.CurrencySymbol, m.cfg.UI.DateFormat)
	m.txs.refresh(m.store, m.fm)
	return m, saveConfigCmd(m.cfg)
}

// refresh re-derives everything that caches store state.
func (m *Model) refresh() tea.Cmd {
	m.txs.refresh(m.store, m.fm)
	return m.dash.retarget(m.store)
}

func nextTypeFilter(f finance.TypeFilter) finance.TypeFilter {
	switch f {
	case finance.FilterAll:
		return finance.FilterIncome
	case finance.FilterIncome:
		return finance.FilterExpense
	default:
		return finance.FilterAll
	}
}

// nextMember cycles filter selection through "all members" and each member.
func nextMember(s *finance.Store) string {
	members := s.FamilyMembers()
	if len(members) == 0 {
		return ""
	}
	current := s.Filter().MemberID
	if current == "" {
		return members[0].ID
	}
	for i, m := range members {
		if m.ID == current {
			if i+1 < len(members) {
				return members[i+1].ID
			}
			return ""
		}
	}
	return ""
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}

	var body string
	switch m.tab {
	case tabDashboard:
		body = m.dash.view(m.store, m.fm, width)
	case tabTransactions:
		body = m.txs.view(width)
	case tabCards:
		body = m.cards.view(m.store, m.fm, width)
	case tabProfile:
		body = m.profile.view(m.store, m.fm, width)
	}

	if m.picker != nil {
		body = m.picker.View()
	}
	if m.form != nil {
		body = m.form.View()
	}
	if m.cardForm != nil {
		body = m.cardForm.View()
	}
	if m.memberForm != nil {
		body = m.memberForm.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(), m.filterView(), body, m.footerView(width))
}

func (m Model) headerView() string {
	parts := make([]string, 0, tabCount+1)
	parts = append(parts, titleStyle.Render(" "+appName+" "))
	for i, name := range tabNames {
		if i == m.tab {
			parts = append(parts, tabActiveStyle.Render(name))
		} else {
			parts = append(parts, tabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// filterView summarizes the active filter state under the tab bar.
func (m Model) filterView() string {
	f := m.store.Filter()
	parts := []string{format.PeriodLabel(f.Range.Start, f.Range.End)}

	switch f.Type {
	case finance.FilterIncome:
		parts = append(parts, "só receitas")
	case finance.FilterExpense:
		parts = append(parts, "só despesas")
	}
	if f.MemberID != "" {
		if member, ok := m.store.MemberByID(f.MemberID); ok {
			parts = append(parts, member.Name)
		}
	}

	line := labelStyle.Render(strings.Join(parts, "  ·  "))
	if m.searching {
		line += "  " + m.search.View()
	} else if f.Search != "" {
		line += "  " + mutedStyle.Render("busca: "+f.Search)
	}
	return line
}

func (m Model) footerView(width int) string {
	help := "tab alterna abas  /  busca  p período  t tipo  m membro  a nova transação  q sai"
	return footerStyle.Width(width).Render(help)
}
