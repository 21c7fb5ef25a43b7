package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-course-roadmap/internal/application/query"
	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/penwyp/go-course-roadmap/internal/data/fetcher"
	"github.com/penwyp/go-course-roadmap/internal/presentation/formatter"
	"github.com/penwyp/go-course-roadmap/internal/presentation/layout"
	"github.com/penwyp/go-course-roadmap/internal/util"
	"github.com/spf13/cobra"
)

type recommendOptions struct {
	output  string
	sources []string
	limit   int
}

func newRecommendCmd(a *app) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend <query...>",
		Short: "Search course recommendations across Udemy, Coursera and YouTube",
		Long: `Sends one search to the recommendation service and prints the results per source.
Udemy and Coursera courses are ordered by rating, highest first; YouTube videos
keep the order the service returned.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRecommend(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", formatter.OutputTable,
		"Output format (table, json, csv, summary)")
	cmd.Flags().StringSliceVar(&opts.sources, "source", nil,
		"Only show these sources (udemy, coursera, youtube)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0,
		"Maximum courses per source (0 = unlimited)")

	return cmd
}

func (a *app) runRecommend(ctx context.Context, out, errOut io.Writer, text string, opts *recommendOptions) error {
	sources, err := parseSources(opts.sources)
	if err != nil {
		return err
	}
	if opts.limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	f, err := newRecommendFormatter(opts.output, out)
	if err != nil {
		return err
	}

	ctrl := query.NewController(fetcher.NewClient(a.cfg.APIURL, a.cfg.Timeout))
	if err := ctrl.Submit(ctx, text); err != nil {
		var fetchErr *query.FetchError
		if errors.As(err, &fetchErr) {
			util.LogError("Recommendation query failed", util.F("error", err.Error()))
			return errors.New(ctrl.State().Error)
		}
		return err
	}

	state := ctrl.State()
	if state.Query == "" {
		_, err := fmt.Fprintln(errOut, "Please enter a search query.")
		return err
	}

	rows := formatter.Rows(state.Result, formatter.Options{Sources: sources, Limit: opts.limit})
	return f.Format(out, rows)
}

func parseSources(names []string) ([]model.SourceName, error) {
	var sources []model.SourceName
	seen := make(map[model.SourceName]bool)
	for _, name := range names {
		source, ok := model.ParseSourceName(name)
		if !ok {
			return nil, fmt.Errorf("unknown source %q (want udemy, coursera or youtube)", name)
		}
		if !seen[source] {
			seen[source] = true
			sources = append(sources, source)
		}
	}
	return sources, nil
}

// newRecommendFormatter sizes the table's title column to the terminal
func newRecommendFormatter(output string, out io.Writer) (formatter.Formatter, error) {
	f, err := formatter.New(output)
	if err != nil {
		return nil, err
	}
	if _, ok := f.(*formatter.TableFormatter); ok {
		width := layout.Sizer{}.WidthFor(out)
		return formatter.NewTableFormatterWithWidth(width / 2), nil
	}
	return f, nil
}
