package query

import (
	"context"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/penwyp/go-course-roadmap/internal/data/parser"
)

// Fetcher performs the single external call behind a query
type Fetcher interface {
	Fetch(ctx context.Context, query string) (*parser.RawQueryResponse, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, query string) (*parser.RawQueryResponse, error)

func (f FetcherFunc) Fetch(ctx context.Context, query string) (*parser.RawQueryResponse, error) {
	return f(ctx, query)
}

// Aggregator turns a raw response into the normalized result set
type Aggregator interface {
	Aggregate(raw *parser.RawQueryResponse) *model.NormalizedResult
}
