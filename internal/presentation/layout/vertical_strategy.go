package layout

import (
	"fmt"
	"io"
)

// VerticalStrategy lists milestones top to bottom with their offsets, for
// narrow terminals or long roadmaps
type VerticalStrategy struct {
	BaseStrategy
}

func (v *VerticalStrategy) GetName() string {
	return StrategyVertical
}

func (v *VerticalStrategy) Render(w io.Writer, view RoadmapView, width int) error {
	width = ClampWidth(width)
	lw := &lineWriter{w: w}
	lw.println(v.Header(view, width))
	if len(view.Placements) == 0 {
		if lw.err != nil {
			return lw.err
		}
		return v.EmptyMessage(w, width)
	}

	sizer := v.GetSizer()
	for i, p := range view.Placements {
		head := fmt.Sprintf("%s %s ", marker, sizer.PadString(fmt.Sprintf("%.0f%%", p.PositionPercent), 4, false))
		line := head + p.Item.Title
		if when := v.When(p.Item); when != "" {
			line += " · " + when
		}
		lw.println(sizer.Fit(line, width))

		rail := "│"
		if i == len(view.Placements)-1 {
			rail = " "
		}
		if p.Item.Description != "" {
			lw.println(sizer.Fit(rail+"      "+p.Item.Description, width))
		} else if rail != " " {
			lw.println(rail)
		}
	}
	return lw.err
}
