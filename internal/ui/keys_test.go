package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func globalBindings(km keyMap) map[string]key.Binding {
	return map[string]key.Binding{
		"quit":       km.Quit,
		"next tab":   km.NextTab,
		"prev tab":   km.PrevTab,
		"search":     km.Search,
		"period":     km.Period,
		"member":     km.Member,
		"type cycle": km.TypeCycle,
		"add":        km.Add,
	}
}

func TestKeyMapNoDuplicateKeys(t *testing.T) {
	seen := make(map[string]string)
	for name, b := range globalBindings(newKeyMap()) {
		for _, k := range b.Keys() {
			if other, dup := seen[k]; dup {
				t.Fatalf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}

// Global bindings are matched before the active tab sees the key, so they
// must never claim a key a tab handles locally.
func TestKeyMapDoesNotShadowTabKeys(t *testing.T) {
	tabLocal := map[string]string{
		"d": "delete row/card",
		"x": "mark bill paid",
		"e": "export",
		"c": "clear all",
		"v": "member photo",
		"f": "date format",
		"j": "move down",
		"k": "move up",
	}
	for name, b := range globalBindings(newKeyMap()) {
		for _, k := range b.Keys() {
			if use, clash := tabLocal[k]; clash {
				t.Fatalf("global binding %s claims %q, which tabs use for %s", name, k, use)
			}
		}
	}
}
