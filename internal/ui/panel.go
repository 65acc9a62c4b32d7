package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// ProgressBar renders a Unicode progress bar with a done/total count.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vw := ansi.StringWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	border := func(s string) string { return C(t.Border, s) }

	fmt.Fprintln(w, border(t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR))
	for _, ln := range lines {
		fmt.Fprintln(w, border(t.V)+" "+pad(ln)+" "+border(t.V))
	}
	fmt.Fprintln(w, border(t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR))
}

// Wrap breaks s at word boundaries to fit width columns.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Truncate cuts s to width columns, marking the cut with "…".
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
