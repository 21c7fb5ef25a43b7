package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/penwyp/go-course-roadmap/internal/util"
)

// SummaryFormatter prints one line per source with its count and best pick
type SummaryFormatter struct{}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(w io.Writer, rows []CourseRow) error {
	type sourceStats struct {
		count int
		sum   float64
		top   CourseRow
		seen  bool
	}
	stats := make(map[model.SourceName]*sourceStats, len(model.Sources))
	for _, row := range rows {
		st, ok := stats[row.Source]
		if !ok {
			st = &sourceStats{}
			stats[row.Source] = st
		}
		st.count++
		st.sum += row.Rating
		if !st.seen {
			st.top = row
			st.seen = true
		}
	}

	if _, err := fmt.Fprintf(w, "%s recommendations\n", util.FormatNumber(len(rows))); err != nil {
		return err
	}
	for _, source := range model.Sources {
		st, ok := stats[source]
		if !ok {
			if _, err := fmt.Fprintf(w, "  %-9s none\n", source.Label()); err != nil {
				return err
			}
			continue
		}

		line := fmt.Sprintf("  %-9s %s, first: %s", source.Label(), util.Pluralize(st.count, "course"), st.top.Title)
		if source != model.SourceYouTube {
			line += fmt.Sprintf(" (%.1f), avg %.2f", st.top.Rating, st.sum/float64(st.count))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
