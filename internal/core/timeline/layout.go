package timeline

import (
	"github.com/penwyp/go-course-roadmap/internal/core/model"
)

// SingleItemPosition is where a lone milestone sits on the line
const SingleItemPosition = 50.0

// Placement is a milestone and its offset along the timeline, in [0, 100]
type Placement struct {
	Item            model.RoadmapItem
	PositionPercent float64
}

// Layout spreads items evenly along the timeline by their order: the first
// at 0, the last at 100. Dates play no part. A single item is centred.
func Layout(items []model.RoadmapItem) []Placement {
	n := len(items)
	placements := make([]Placement, n)
	if n == 0 {
		return placements
	}
	if n == 1 {
		placements[0] = Placement{Item: items[0], PositionPercent: SingleItemPosition}
		return placements
	}

	last := float64(n - 1)
	for i, item := range items {
		placements[i] = Placement{
			Item:            item,
			PositionPercent: float64(i) / last * 100,
		}
	}
	return placements
}

// Positions returns only the offsets from Layout
func Positions(items []model.RoadmapItem) []float64 {
	placements := Layout(items)
	out := make([]float64, len(placements))
	for i, p := range placements {
		out[i] = p.PositionPercent
	}
	return out
}
