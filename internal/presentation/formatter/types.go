package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
)

// CourseRow is one recommendation as printed, ranked within its source
type CourseRow struct {
	Source   model.SourceName `json:"source"`
	Rank     int              `json:"rank"`
	Title    string           `json:"title"`
	URL      string           `json:"url"`
	Rating   float64          `json:"rating"`
	Platform string           `json:"platform"`
}

// Options selects what part of a result gets printed. An empty Sources list
// means every source; Limit <= 0 means no limit.
type Options struct {
	Sources []model.SourceName
	Limit   int
}

// Formatter writes recommendation rows
type Formatter interface {
	Format(w io.Writer, rows []CourseRow) error
}

// Output format names
const (
	OutputTable   = "table"
	OutputJSON    = "json"
	OutputCSV     = "csv"
	OutputSummary = "summary"
)

// New returns the formatter for an output name
func New(output string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", OutputTable:
		return NewTableFormatter(), nil
	case OutputJSON:
		return NewJSONFormatter(), nil
	case OutputCSV:
		return NewCSVFormatter(), nil
	case OutputSummary:
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json, csv or summary)", output)
	}
}

// Rows flattens a result into printable rows, sources in display order and
// each source keeping the order the result holds
func Rows(result *model.NormalizedResult, opts Options) []CourseRow {
	sources := opts.Sources
	if len(sources) == 0 {
		sources = model.Sources
	}

	rows := make([]CourseRow, 0, result.Total())
	for _, source := range sources {
		courses := result.Courses(source)
		if opts.Limit > 0 && len(courses) > opts.Limit {
			courses = courses[:opts.Limit]
		}
		for i, c := range courses {
			rows = append(rows, CourseRow{
				Source:   source,
				Rank:     i + 1,
				Title:    c.Title,
				URL:      c.URL,
				Rating:   c.Rating,
				Platform: c.Platform,
			})
		}
	}
	return rows
}

func formatRating(source model.SourceName, rating float64) string {
	if source == model.SourceYouTube {
		return "-"
	}
	return fmt.Sprintf("%.1f", rating)
}
