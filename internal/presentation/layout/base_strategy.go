package layout

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/penwyp/go-course-roadmap/internal/util"
)

const marker = "●"

// BaseStrategy provides common functionality for all timeline strategies
type BaseStrategy struct{}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// Header renders the title line with the current mode
func (b *BaseStrategy) Header(view RoadmapView, width int) string {
	badge := "[" + view.Mode.String() + "]"
	if view.Saving {
		badge = "[saving…]"
	}
	title := b.GetSizer().Fit(view.Title, width-b.GetSizer().DisplayWidth(badge)-1)
	if title == "" {
		title = "(untitled)"
	}
	return util.FormatHeaderTitle(title) + " " + badge
}

// Column maps a position percentage onto a cell index in [0, width-1]
func (b *BaseStrategy) Column(percent float64, width int) int {
	if width <= 1 {
		return 0
	}
	col := int(math.Round(percent / 100 * float64(width-1)))
	if col < 0 {
		return 0
	}
	if col > width-1 {
		return width - 1
	}
	return col
}

// When formats a milestone's month and year
func (b *BaseStrategy) When(item model.RoadmapItem) string {
	return strings.TrimSpace(item.Month + " " + item.Year)
}

const emptyMessage = "No milestones yet. Add one to start your roadmap."

// EmptyMessage is printed, centered, when there is nothing to lay out
func (b *BaseStrategy) EmptyMessage(w io.Writer, width int) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(util.CenterText(emptyMessage, width), " "))
	return err
}

// lineWriter keeps the first write error
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) println(s string) {
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintln(l.w, s)
}
