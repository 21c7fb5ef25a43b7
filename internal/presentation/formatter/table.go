package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const defaultMaxTitleWidth = 48

type TableFormatter struct {
	headers       []string
	maxTitleWidth int
}

func NewTableFormatter() *TableFormatter {
	return NewTableFormatterWithWidth(defaultMaxTitleWidth)
}

// NewTableFormatterWithWidth caps the title column at maxTitleWidth cells
func NewTableFormatterWithWidth(maxTitleWidth int) *TableFormatter {
	if maxTitleWidth < 8 {
		maxTitleWidth = 8
	}
	return &TableFormatter{
		headers:       []string{"Source", "#", "Title", "Rating", "URL"},
		maxTitleWidth: maxTitleWidth,
	}
}

func (f *TableFormatter) Format(w io.Writer, rows []CourseRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No recommendations found.")
		return err
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{
			row.Platform,
			fmt.Sprintf("%d", row.Rank),
			runewidth.Truncate(row.Title, f.maxTitleWidth, "…"),
			formatRating(row.Source, row.Rating),
			row.URL,
		}
	}
	widths := f.calculateColumnWidths(cells)

	tw := &tableWriter{w: w}
	tw.border(widths, "top")
	tw.row(f.headers, widths)
	tw.border(widths, "middle")
	for i, c := range cells {
		if i > 0 && rows[i].Source != rows[i-1].Source {
			tw.border(widths, "middle")
		}
		tw.row(c, widths)
	}
	tw.border(widths, "bottom")
	return tw.err
}

func (f *TableFormatter) calculateColumnWidths(cells [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range cells {
		for i, value := range row {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// tableWriter keeps the first write error so rendering code stays linear
type tableWriter struct {
	w   io.Writer
	err error
}

func (t *tableWriter) print(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.w, s)
}

func (t *tableWriter) border(widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	default:
		left, middle, right = "└", "┴", "┘"
	}

	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
	t.print(sb.String())
}

// row left-aligns text columns and right-aligns the rank and rating
func (t *tableWriter) row(values []string, widths []int) {
	var sb strings.Builder
	sb.WriteString("│")
	for i, value := range values {
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(value))
		if i == 1 || i == 3 {
			sb.WriteString(" " + pad + value + " │")
		} else {
			sb.WriteString(" " + value + pad + " │")
		}
	}
	sb.WriteString("\n")
	t.print(sb.String())
}
