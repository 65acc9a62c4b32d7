package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID identifies an item. Once assigned it never changes.
type ID string

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts both `"7"` and `7`, seed files use either.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: want string or number, got %s", b)
	}
	*id = ID(n.String())
	return nil
}

// Item is the record behind one card.
// Values are treated as immutable: use the With* helpers to derive a changed copy.
type Item struct {
	ID          ID      `json:"id" yaml:"id"`
	Label       string  `json:"label" yaml:"label"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Options     Options `json:"options" yaml:"options"`
}

// WithOptions returns a copy of the item carrying opts.
func (it Item) WithOptions(opts Options) Item {
	it.Options = opts
	return it
}

// Title is the label, falling back to the id.
func (it Item) Title() string {
	if it.Label != "" {
		return it.Label
	}
	return "#" + string(it.ID)
}
