package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFullResponse(t *testing.T) {
	body := `{
		"udemy": [
			{"title": "Go Basics", "course_url": "https://udemy.com/go", "avg_rating": 4.5},
			{"title": "Go Advanced", "course_url": "https://udemy.com/go-adv"}
		],
		"coursera": [
			{"title": "Systems", "course_url": "https://coursera.org/sys", "avg_rating": null}
		],
		"youtube": {
			"title": {"12": "Video A", "3": "Video B"},
			"url": {"12": "https://youtu.be/a", "3": "https://youtu.be/b"},
			"platform": {"12": "YouTube", "3": "YouTube"}
		}
	}`

	resp, err := Decode([]byte(body))
	require.NoError(t, err)

	require.Len(t, resp.Udemy, 2)
	assert.Equal(t, "Go Basics", resp.Udemy[0].Title)
	assert.Equal(t, Rating(4.5), resp.Udemy[0].AvgRating)
	assert.Equal(t, Rating(0), resp.Udemy[1].AvgRating)

	require.Len(t, resp.Coursera, 1)
	assert.Equal(t, Rating(0), resp.Coursera[0].AvgRating)

	rows := resp.YouTube.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "3", rows[0].Index)
	assert.Equal(t, "Video B", rows[0].Title)
	assert.Equal(t, "https://youtu.be/b", rows[0].URL)
	assert.Equal(t, "12", rows[1].Index)
	assert.Equal(t, "Video A", rows[1].Title)
}

func TestDecodeMissingSections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "null sections", body: `{"udemy": null, "coursera": null, "youtube": null}`},
		{name: "empty columns", body: `{"udemy": [], "coursera": [], "youtube": {"title": {}, "url": {}, "platform": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Decode([]byte(tt.body))
			require.NoError(t, err)
			assert.Empty(t, resp.Udemy)
			assert.Empty(t, resp.Coursera)
			assert.Empty(t, resp.YouTube.Rows())
		})
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`<html>bad gateway</html>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse recommendation response")
}

func TestRatingShapes(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Rating
	}{
		{name: "number", json: `{"avg_rating": 3.7}`, expected: 3.7},
		{name: "integer", json: `{"avg_rating": 5}`, expected: 5},
		{name: "null", json: `{"avg_rating": null}`, expected: 0},
		{name: "missing", json: `{}`, expected: 0},
		{name: "numeric string", json: `{"avg_rating": "4.25"}`, expected: 4.25},
		{name: "garbage string", json: `{"avg_rating": "n/a"}`, expected: 0},
		{name: "NaN string", json: `{"avg_rating": "NaN"}`, expected: 0},
		{name: "boolean", json: `{"avg_rating": true}`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Decode([]byte(`{"udemy": [` + tt.json + `]}`))
			require.NoError(t, err)
			require.Len(t, resp.Udemy, 1)
			assert.InDelta(t, float64(tt.expected), float64(resp.Udemy[0].AvgRating), 1e-9)
		})
	}
}

func TestYouTubeRowsFollowTitleIndices(t *testing.T) {
	body := `{"youtube": {
		"title": {"0": "First", "1": "Second", "2": "Third"},
		"url": {"0": "u0", "2": "u2"},
		"platform": {"1": "YouTube"}
	}}`

	resp, err := Decode([]byte(body))
	require.NoError(t, err)

	rows := resp.YouTube.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, YouTubeRow{Index: "0", Title: "First", URL: "u0"}, rows[0])
	assert.Equal(t, YouTubeRow{Index: "1", Title: "Second", Platform: "YouTube"}, rows[1])
	assert.Equal(t, YouTubeRow{Index: "2", Title: "Third", URL: "u2"}, rows[2])
}

func TestYouTubeColumnAsArray(t *testing.T) {
	body := `{"youtube": {"title": ["A", "B"], "url": ["ua", "ub"]}}`

	resp, err := Decode([]byte(body))
	require.NoError(t, err)

	rows := resp.YouTube.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Title)
	assert.Equal(t, "ub", rows[1].URL)
}

func TestOrderedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "numeric keys sort ascending",
			input:    []string{"12", "3", "7"},
			expected: []string{"3", "7", "12"},
		},
		{
			name:     "non numeric keys keep document order after numeric ones",
			input:    []string{"b", "10", "a", "2"},
			expected: []string{"2", "10", "b", "a"},
		},
		{
			name:     "leading zero is not an index",
			input:    []string{"07", "5"},
			expected: []string{"5", "07"},
		},
		{
			name:     "empty",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OrderedKeys(tt.input))
		})
	}
}

func TestNewColumn(t *testing.T) {
	c := NewColumn("1", "a", "0", "b", "1", "c")

	assert.Equal(t, 2, c.Len())
	v, ok := c.Get("1")
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}
