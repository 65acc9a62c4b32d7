package ui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

var (
	mdMu sync.Mutex
	// Keyed by style + wrap width. A fixed standard style avoids the terminal background
	// query WithAutoStyle makes, which can block inside the TUI.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// Markdown renders md for the terminal. On any renderer error the source is returned as is.
func Markdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	style := styles.DarkStyle
	if !ColorEnabled() {
		style = styles.NoTTYStyle
	}

	key := style + ":" + strconv.Itoa(width)
	mdMu.Lock()
	defer mdMu.Unlock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
