package timeline

import (
	"fmt"
	"testing"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []model.RoadmapItem {
	items := make([]model.RoadmapItem, n)
	for i := range items {
		items[i] = model.RoadmapItem{ID: fmt.Sprintf("id-%d", i), Title: fmt.Sprintf("item %d", i)}
	}
	return items
}

func TestLayoutPositions(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []float64
	}{
		{name: "empty", n: 0, expected: []float64{}},
		{name: "single item is centred", n: 1, expected: []float64{50}},
		{name: "two items", n: 2, expected: []float64{0, 100}},
		{name: "three items", n: 3, expected: []float64{0, 50, 100}},
		{name: "five items", n: 5, expected: []float64{0, 25, 50, 75, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Positions(makeItems(tt.n))
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], got[i], 1e-9)
			}
		})
	}
}

func TestLayoutNilInput(t *testing.T) {
	got := Layout(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLayoutKeepsItemOrder(t *testing.T) {
	items := []model.RoadmapItem{
		{ID: "c", ISODate: "2025-03-01"},
		{ID: "a", ISODate: "2024-01-01"},
		{ID: "b", ISODate: "2026-12-31"},
	}

	placements := Layout(items)

	require.Len(t, placements, 3)
	for i := range items {
		assert.Equal(t, items[i], placements[i].Item)
	}
	assert.Equal(t, 0.0, placements[0].PositionPercent)
	assert.Equal(t, 100.0, placements[2].PositionPercent)
}

func TestLayoutBoundsAndMonotonic(t *testing.T) {
	for n := 2; n <= 40; n++ {
		positions := Positions(makeItems(n))
		assert.Equal(t, 0.0, positions[0])
		assert.InDelta(t, 100.0, positions[n-1], 1e-9)
		for i := 1; i < n; i++ {
			assert.Greater(t, positions[i], positions[i-1])
			assert.LessOrEqual(t, positions[i], 100.0+1e-9)
		}
	}
}

func TestLayoutDeterministic(t *testing.T) {
	items := makeItems(7)
	assert.Equal(t, Layout(items), Layout(items))
}
