package config

// KeyMappings defines the configurable TUI key bindings
type KeyMappings struct {
	// Cursor
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`
	PrevOption string `yaml:"prev_option"`
	NextOption string `yaml:"next_option"`

	// Actions
	Toggle  string `yaml:"toggle"`
	AddItem string `yaml:"add_item"`
	Remove  string `yaml:"remove_item"`
	Reverse string `yaml:"reverse"`
	Reset   string `yaml:"reset"`
	Details string `yaml:"details"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevCard:   "h",
		NextCard:   "l",
		PrevOption: "k",
		NextOption: "j",
		Toggle:     " ",
		AddItem:    "a",
		Remove:     "d",
		Reverse:    "r",
		Reset:      "R",
		Details:    "enter",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&k.PrevCard, d.PrevCard)
	fill(&k.NextCard, d.NextCard)
	fill(&k.PrevOption, d.PrevOption)
	fill(&k.NextOption, d.NextOption)
	fill(&k.Toggle, d.Toggle)
	fill(&k.AddItem, d.AddItem)
	fill(&k.Remove, d.Remove)
	fill(&k.Reverse, d.Reverse)
	fill(&k.Reset, d.Reset)
	fill(&k.Details, d.Details)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
