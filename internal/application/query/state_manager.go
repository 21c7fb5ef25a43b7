package query

import (
	"context"
	"sync"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
)

// State is a snapshot of the query controller
type State struct {
	Query   string
	Loading bool
	Error   string
	Result  *model.NormalizedResult
}

// StateManager holds query state behind a RWMutex. Every request is tagged
// with a generation; only the latest generation may write its outcome.
type StateManager struct {
	mu sync.RWMutex

	query   string
	loading bool
	errMsg  string
	result  *model.NormalizedResult

	generation uint64
	cancel     context.CancelFunc
}

// NewStateManager creates a StateManager with an empty result set
func NewStateManager() *StateManager {
	return &StateManager{
		result: model.NewNormalizedResult(),
	}
}

// Snapshot returns a copy of the current state (thread-safe)
func (sm *StateManager) Snapshot() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return State{
		Query:   sm.query,
		Loading: sm.loading,
		Error:   sm.errMsg,
		Result:  sm.result.Clone(),
	}
}

// Generation returns the id of the most recently issued request
func (sm *StateManager) Generation() uint64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.generation
}

// begin records a new request, cancels the one it supersedes and returns the
// new generation
func (sm *StateManager) begin(query string, cancel context.CancelFunc) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.cancel != nil {
		sm.cancel()
	}
	sm.generation++
	sm.cancel = cancel
	sm.query = query
	sm.loading = true
	sm.errMsg = ""
	return sm.generation
}

// commit stores result if gen is still current
func (sm *StateManager) commit(gen uint64, result *model.NormalizedResult) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if gen != sm.generation {
		return false
	}
	sm.result = result
	sm.finish()
	return true
}

// fail records a user-facing error if gen is still current. The previous
// result is kept.
func (sm *StateManager) fail(gen uint64, msg string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if gen != sm.generation {
		return false
	}
	sm.errMsg = msg
	sm.finish()
	return true
}

// caller holds mu
func (sm *StateManager) finish() {
	sm.loading = false
	sm.cancel = nil
}
