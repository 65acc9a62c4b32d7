package ui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var (
	symCheck = "✔"
	symCross = "✖"
)

// detected is the terminal's own profile. termenv.EnvColorProfile honors NO_COLOR and
// CLICOLOR_FORCE and falls back to Ascii when stdout is not a terminal.
var detected = termenv.EnvColorProfile()

// profile is what C renders with.
var profile = detected

// SetColorForcing overrides terminal detection. disable wins over force; neither restores
// the detected profile.
func SetColorForcing(force, disable bool) {
	profile = detected
	switch {
	case disable:
		profile = termenv.Ascii
	case force && detected == termenv.Ascii:
		profile = termenv.ANSI256
	}
}

// ColorEnabled reports whether C emits escape codes.
func ColorEnabled() bool { return profile != termenv.Ascii }

// C paints s with a color spec ("12", "#ff00ff"). Empty color or no color support returns s.
func C(color, s string) string {
	if color == "" || !ColorEnabled() {
		return s
	}
	return termenv.String(s).Foreground(profile.Color(color)).String()
}

// B is bold text, when colors are on.
func B(s string) string {
	if !ColorEnabled() {
		return s
	}
	return termenv.String(s).Bold().String()
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(Current().Success, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(Current().Error, symCross+" "+msg)) }
