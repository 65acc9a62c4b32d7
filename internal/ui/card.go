package ui

import (
	"fmt"

	"github.com/Makepad-fr/cards/internal/model"
)

// CardLines renders one item for plain output: a numbered title line and one line per option.
func CardLines(pos int, it model.Item, width int) []string {
	t := Current()
	set := it.Options.CountSet()
	sym, color := t.SymUnset, t.Muted
	if set > 0 {
		sym, color = t.SymSet, t.Success
	}
	title := Truncate(it.Title(), max(width-12, 8))
	out := []string{fmt.Sprintf("%s %s %s %s",
		C(t.Muted, fmt.Sprintf("%2d.", pos)),
		C(color, sym),
		B(title),
		C(t.Muted, "#"+it.ID.String()),
	)}
	for k, v := range it.Options.All() {
		box, c := t.BoxUnchecked, t.Muted
		if v {
			box, c = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("     %s %s", C(c, box), k))
	}
	return out
}
