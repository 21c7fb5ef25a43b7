package layout

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-course-roadmap/internal/util"
	"golang.org/x/term"
)

const (
	DefaultWidth = 80
	MinWidth     = 40
	MaxWidth     = 120
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

type Sizer struct{}

// DisplayWidth returns the number of terminal cells s occupies
func (Sizer) DisplayWidth(s string) int {
	return util.GetDisplayWidth(s)
}

// PadString pads s with spaces to width cells
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actual := i.DisplayWidth(s)
	if actual >= width {
		return s
	}
	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Fit truncates s to width cells, marking the cut with an ellipsis
func (Sizer) Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// WidthFor returns the usable width for output written to w. Terminals
// report their size; anything else gets DefaultWidth.
func (i Sizer) WidthFor(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	termWidth, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth
	}
	width := ClampWidth(termWidth - 2)
	util.LogDebugf("Terminal width %d, rendering at %d", termWidth, width)
	return width
}

// ClampWidth bounds a width to [MinWidth, MaxWidth]
func ClampWidth(width int) int {
	if width < MinWidth {
		return MinWidth
	}
	if width > MaxWidth {
		return MaxWidth
	}
	return width
}
