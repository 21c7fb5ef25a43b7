package layout

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HorizontalStrategy draws milestones as markers on one axis, numbered,
// followed by a legend
type HorizontalStrategy struct {
	BaseStrategy
}

func (h *HorizontalStrategy) GetName() string {
	return StrategyHorizontal
}

func (h *HorizontalStrategy) Render(w io.Writer, view RoadmapView, width int) error {
	width = ClampWidth(width)
	lw := &lineWriter{w: w}
	lw.println(h.Header(view, width))
	if len(view.Placements) == 0 {
		if lw.err != nil {
			return lw.err
		}
		return h.EmptyMessage(w, width)
	}

	axis := []rune(strings.Repeat("─", width))
	labels := []rune(strings.Repeat(" ", width))
	nextFree := 0
	for i, p := range view.Placements {
		col := h.Column(p.PositionPercent, width)
		axis[col] = []rune(marker)[0]

		num := []rune(strconv.Itoa(i + 1))
		start := col
		if start+len(num) > width {
			start = width - len(num)
		}
		if start < nextFree {
			continue
		}
		copy(labels[start:], num)
		nextFree = start + len(num) + 1
	}
	lw.println(string(axis))
	lw.println(strings.TrimRight(string(labels), " "))
	lw.println("")

	for i, p := range view.Placements {
		prefix := fmt.Sprintf("%2d. ", i+1)
		line := prefix + p.Item.Title
		if when := h.When(p.Item); when != "" {
			line += " (" + when + ")"
		}
		lw.println(h.GetSizer().Fit(line, width))
		if p.Item.Description != "" {
			lw.println(h.GetSizer().Fit(strings.Repeat(" ", len(prefix))+p.Item.Description, width))
		}
	}
	return lw.err
}
