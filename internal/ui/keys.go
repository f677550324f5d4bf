package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings matched in the root Update loop. Keys
// that only mean something inside one tab or modal ("d" delete, "x" pay,
// "e" export, "c" clear, "v" photo, "f" date format) are matched locally
// by that tab and stay out of the global map so they never shadow it.
type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Search    key.Binding
	Period    key.Binding
	Member    key.Binding
	TypeCycle key.Binding
	Add       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próxima aba")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "aba anterior")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		Period:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "período")),
		Member:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "membro")),
		TypeCycle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tipo")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar")),
	}
}
