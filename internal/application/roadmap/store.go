package roadmap

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/penwyp/go-course-roadmap/internal/util"
)

const isoDateLayout = "2006-01-02"

// Store owns the roadmap: its title, the ordered milestones and the
// Edit/View lifecycle. All methods are safe for concurrent use; Save runs the
// persister without holding the lock.
type Store struct {
	mu sync.RWMutex

	title  string
	items  []model.RoadmapItem
	mode   model.Mode
	saving bool

	persister Persister
	notifier  Notifier
	validate  *validator.Validate
	now       func() time.Time
	newID     func() string
}

// Option configures a Store
type Option func(*Store)

// WithPersister sets the save backend
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithNotifier sets the notice sink
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithClock sets the clock used for a new milestone's date
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the milestone id source
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithInitialState replaces the seeded title and milestones
func WithInitialState(title string, items []model.RoadmapItem) Option {
	return func(s *Store) {
		s.title = title
		s.items = append([]model.RoadmapItem(nil), items...)
	}
}

// NewStore creates a store in Edit mode with the default title and seeded
// milestones
func NewStore(opts ...Option) *Store {
	s := &Store{
		title:     model.DefaultRoadmapTitle,
		items:     DefaultItems(),
		mode:      model.ModeEdit,
		persister: NewSimulatedPersister(DefaultSaveDelay),
		notifier:  discardNotifier{},
		validate:  validator.New(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.items == nil {
		s.items = make([]model.RoadmapItem, 0)
	}
	return s
}

// State returns a copy of the roadmap (thread-safe)
func (s *Store) State() model.RoadmapState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Mode returns the current lifecycle mode
func (s *Store) Mode() model.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Item looks up a milestone by id
func (s *Store) Item(id string) (model.RoadmapItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.items[i], true
	}
	return model.RoadmapItem{}, false
}

// SetTitle replaces the roadmap title. An empty title is accepted here and
// rejected by Save.
func (s *Store) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = strings.TrimSpace(title)
}

// AddItem appends a milestone. Title is required; month and year default to
// January 2024 when blank. The new milestone is dated today.
func (s *Store) AddItem(title, description, month, year string) (model.RoadmapItem, error) {
	return s.Add(AddItemRequest{Title: title, Description: description, Month: month, Year: year})
}

// Add is AddItem taking a request struct
func (s *Store) Add(req AddItemRequest) (model.RoadmapItem, error) {
	req = req.normalized()
	if err := s.validate.Struct(req); err != nil {
		return model.RoadmapItem{}, toValidationError("add milestone", "A milestone needs a title.", err)
	}

	s.mu.Lock()
	item := model.RoadmapItem{
		ID:          s.newID(),
		Title:       req.Title,
		Description: req.Description,
		ISODate:     s.now().UTC().Format(isoDateLayout),
		Month:       req.Month,
		Year:        req.Year,
	}
	s.items = append(s.items, item)
	count := len(s.items)
	s.mu.Unlock()

	util.LogDebugf("Milestone added: id=%s title=%q (%d total)", item.ID, item.Title, count)
	s.notifier.Notify(noticeAdded)
	return item, nil
}

// RemoveItem deletes the milestone with the given id. It reports whether one
// was removed; an unknown id changes nothing.
func (s *Store) RemoveItem(id string) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		util.LogDebugf("Milestone %s not found, nothing removed", id)
		return false
	}
	items := make([]model.RoadmapItem, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	s.items = items
	s.mu.Unlock()

	util.LogDebugf("Milestone removed: id=%s", id)
	s.notifier.Notify(noticeRemoved)
	return true
}

// SetMode switches the lifecycle mode. Returning to Edit is always allowed;
// View is only reached through a successful Save.
func (s *Store) SetMode(mode model.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case mode == model.ModeEdit:
		s.mode = model.ModeEdit
		return nil
	case mode == s.mode:
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.mode, mode)
	}
}

// Save validates the roadmap and persists a snapshot of it. On success the
// store moves to View mode. A validation or persistence failure leaves the
// mode untouched and Saving false.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return ErrSaveInProgress
	}
	req := saveRequest{Title: strings.TrimSpace(s.title), Items: s.items}
	if err := s.validate.Struct(req); err != nil {
		s.mu.Unlock()
		verr := toValidationError("save roadmap", SaveValidationMessage, err)
		s.notifier.Notify(cannotSave(SaveValidationMessage))
		return verr
	}
	s.saving = true
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	util.LogInfof("Saving roadmap %q with %d milestones", snapshot.Title, len(snapshot.Items))
	start := time.Now()
	err := s.persister.Persist(ctx, snapshot)

	s.mu.Lock()
	s.saving = false
	if err == nil {
		s.mode = model.ModeView
	}
	s.mu.Unlock()

	if err != nil {
		util.LogWarnf("Roadmap save failed after %s: %v", util.FormatDuration(time.Since(start)), err)
		s.notifier.Notify(cannotSave(err.Error()))
		return fmt.Errorf("save roadmap: %w", err)
	}

	util.LogInfof("Roadmap saved in %s", util.FormatDuration(time.Since(start)))
	s.notifier.Notify(noticeSaved)
	return nil
}

// caller holds mu
func (s *Store) snapshotLocked() model.RoadmapState {
	return model.RoadmapState{
		Title:  s.title,
		Items:  s.items,
		Mode:   s.mode,
		Saving: s.saving,
	}.Clone()
}

// caller holds mu
func (s *Store) indexLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
