package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, rows []CourseRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"source", "rank", "title", "url", "rating", "platform"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			string(row.Source),
			fmt.Sprintf("%d", row.Rank),
			row.Title,
			row.URL,
			fmt.Sprintf("%.2f", row.Rating),
			row.Platform,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
