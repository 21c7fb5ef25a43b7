package query

import (
	"context"
	"errors"
	"strings"

	"github.com/penwyp/go-course-roadmap/internal/data/aggregator"
	"github.com/penwyp/go-course-roadmap/internal/util"
)

// Controller runs recommendation queries: one fetch per submitted query,
// aggregated into the stored result. Submit may be called concurrently; a
// response only lands if no newer query was issued in the meantime.
type Controller struct {
	fetcher    Fetcher
	aggregator Aggregator
	state      *StateManager
}

// NewController creates a Controller backed by fetcher
func NewController(fetcher Fetcher) *Controller {
	return NewControllerWithAggregator(fetcher, aggregator.NewAggregator())
}

// NewControllerWithAggregator creates a Controller with a custom aggregator
func NewControllerWithAggregator(fetcher Fetcher, agg Aggregator) *Controller {
	return &Controller{
		fetcher:    fetcher,
		aggregator: agg,
		state:      NewStateManager(),
	}
}

// State returns a snapshot of the controller state
func (c *Controller) State() State {
	return c.state.Snapshot()
}

// Submit issues a query. Blank input is ignored and returns nil.
//
// On a fetch failure the returned error is a *FetchError and the state keeps
// the previous result. When a newer Submit supersedes this one, the in-flight
// request is cancelled, nothing is written and ErrStaleResponse is returned.
func (c *Controller) Submit(ctx context.Context, text string) error {
	q := strings.TrimSpace(text)
	if q == "" {
		return nil
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen := c.state.begin(q, cancel)
	util.LogDebugf("Query #%d submitted: %q", gen, q)

	raw, err := c.fetcher.Fetch(fetchCtx, q)
	if err != nil {
		fetchErr := &FetchError{Query: q, Err: err}
		if !c.state.fail(gen, fetchErr.UserMessage()) {
			util.LogDebugf("Query #%d superseded, dropping error: %v", gen, err)
			return ErrStaleResponse
		}
		if errors.Is(err, context.Canceled) {
			util.LogInfof("Query #%d cancelled", gen)
		} else {
			util.LogWarn("Query failed", util.F("gen", gen), util.F("query", q), util.F("error", err.Error()))
		}
		return fetchErr
	}

	result := c.aggregator.Aggregate(raw)
	if !c.state.commit(gen, result) {
		util.LogDebugf("Query #%d superseded, dropping %d results", gen, result.Total())
		return ErrStaleResponse
	}

	util.LogInfo("Query completed", util.F("gen", gen), util.F("query", q), util.F("count", result.Total()))
	return nil
}
