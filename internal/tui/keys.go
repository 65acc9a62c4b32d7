package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Makepad-fr/cards/internal/config"
)

type keyMap struct {
	PrevCard, NextCard     key.Binding
	PrevOption, NextOption key.Binding
	Toggle                 key.Binding
	Add, Remove            key.Binding
	Reverse, Reset         key.Binding
	Details                key.Binding
	Help, Quit             key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevCard:   bind("prev card", km.PrevCard, "left", "shift+tab"),
		NextCard:   bind("next card", km.NextCard, "right", "tab"),
		PrevOption: bind("prev option", km.PrevOption, "up"),
		NextOption: bind("next option", km.NextOption, "down"),
		Toggle:     bind("toggle", km.Toggle),
		Add:        bind("add", km.AddItem),
		Remove:     bind("remove last", km.Remove),
		Reverse:    bind("reverse", km.Reverse),
		Reset:      bind("reset", km.Reset),
		Details:    bind("details", km.Details),
		Help:       bind("help", km.ShowHelp),
		Quit:       bind("quit", km.Quit, "ctrl+c"),
	}
}

// bind puts the configured key first so help shows it.
func bind(desc, primary string, extra ...string) key.Binding {
	keys := append([]string{primary}, extra...)
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpName(primary), desc))
}

func helpName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Remove, k.Reverse, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCard, k.NextCard, k.PrevOption, k.NextOption},
		{k.Toggle, k.Details},
		{k.Add, k.Remove, k.Reverse, k.Reset},
		{k.Help, k.Quit},
	}
}
