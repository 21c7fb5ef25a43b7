package layout

import (
	"io"
	"strings"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/penwyp/go-course-roadmap/internal/core/timeline"
)

// RoadmapView is what a timeline strategy draws
type RoadmapView struct {
	Title      string
	Mode       model.Mode
	Saving     bool
	Placements []timeline.Placement
}

// NewRoadmapView lays out the milestones of state
func NewRoadmapView(state model.RoadmapState) RoadmapView {
	return RoadmapView{
		Title:      state.Title,
		Mode:       state.Mode,
		Saving:     state.Saving,
		Placements: timeline.Layout(state.Items),
	}
}

// TimelineStrategy defines the interface for different timeline renderings
type TimelineStrategy interface {
	Render(w io.Writer, view RoadmapView, width int) error
	GetName() string
}

// Strategy names
const (
	StrategyAuto       = "auto"
	StrategyHorizontal = "horizontal"
	StrategyVertical   = "vertical"
)

// cells each milestone needs on a horizontal axis to stay readable
const minCellsPerMilestone = 4

// GetTimelineStrategy picks a strategy by name. "auto" (or anything
// unknown) draws horizontally when every milestone gets enough room.
func GetTimelineStrategy(name string, view RoadmapView, width int) TimelineStrategy {
	switch strings.ToLower(name) {
	case StrategyHorizontal:
		return &HorizontalStrategy{}
	case StrategyVertical:
		return &VerticalStrategy{}
	}

	if n := len(view.Placements); n > 0 && n*minCellsPerMilestone <= width {
		return &HorizontalStrategy{}
	}
	return &VerticalStrategy{}
}
