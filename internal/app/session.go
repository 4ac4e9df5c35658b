// Package app owns the running session: the object store, the loaded
// catalog, the transient filter state, and the focus slot, all behind a
// single mutex. Commands validate, mutate, and report which derived views
// went stale so a presentation layer re-queries only what changed.
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mpelle/corekeep/internal/domain/catalog"
	"github.com/mpelle/corekeep/internal/domain/focus"
	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/store"
	"github.com/mpelle/corekeep/internal/domain/view"
	"github.com/mpelle/corekeep/internal/storage"
)

// View names a derived projection a command may invalidate.
type View string

const (
	ViewInbox     View = "inbox"
	ViewOrganized View = "organized"
	ViewArchived  View = "archived"
	ViewReview    View = "review"
	ViewEngage    View = "engage"
)

func allViews() []View {
	return []View{ViewInbox, ViewOrganized, ViewArchived, ViewReview, ViewEngage}
}

// Result is the outcome of a mutating command.
type Result struct {
	Object  *object.Object `json:"object,omitempty"`
	Warning string         `json:"warning,omitempty"`
	Stale   []View         `json:"stale"`
}

// Session binds the engine together for one running instance. All commands
// and queries serialize behind one mutex; the engine itself is synchronous,
// so call order is the only ordering there is.
type Session struct {
	mu      sync.Mutex
	store   *store.Store
	catalog catalog.Catalog
	views   *view.Engine
	focus   *focus.Controller
	logger  *slog.Logger
	now     func() time.Time
	filters view.Filters
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source for the session and everything under it.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession wires a session over the given adapter and catalog. Call Load
// once before accepting commands.
func NewSession(adapter storage.Adapter, cat catalog.Catalog, logger *slog.Logger, opts ...Option) *Session {
	s := &Session{
		catalog: cat,
		logger:  logger,
		now:     time.Now,
		filters: view.Filters{Type: "all", Sort: view.SortCreated},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.store = store.New(adapter, logger, store.WithClock(s.now))
	s.views = view.New(s.store, &s.catalog, view.WithClock(s.now))
	s.focus = focus.New(s.store, s.views, logger, focus.WithClock(s.now))
	return s
}

// Load reads persisted state. Failures fall back to defaults and are logged;
// the session always comes up usable.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Load(ctx)
}

// Catalog returns the session's immutable PARA metadata.
func (s *Session) Catalog() catalog.Catalog {
	return s.catalog
}

// InboxView returns objects awaiting triage, newest first.
func (s *Session) InboxView() []object.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views.Inbox()
}

// OrganizedView returns non-inbox objects under the session's current
// filter, search, and sort state.
func (s *Session) OrganizedView() []object.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views.Organized(s.filters)
}

// ArchivedView returns soft-deleted objects.
func (s *Session) ArchivedView() []object.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views.Archived()
}

// ReviewDigest bundles both ritual digests.
type ReviewDigest struct {
	Daily  view.DailyDigest  `json:"daily"`
	Weekly view.WeeklyDigest `json:"weekly"`
}

// ReviewView builds the daily and weekly digests.
func (s *Session) ReviewView() ReviewDigest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ReviewDigest{
		Daily:  s.views.DailyDigest(),
		Weekly: s.views.WeeklyDigest(),
	}
}

// EngageSnapshot is the engage panel projection: the focus slot, the next
// actions, and what got finished today.
type EngageSnapshot struct {
	Focus          *object.Object  `json:"focus,omitempty"`
	UpNext         []object.Object `json:"upNext"`
	CompletedToday []object.Object `json:"completedToday"`
}

// EngageView builds the engage projection.
func (s *Session) EngageView() EngageSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := EngageSnapshot{
		UpNext:         s.views.UpNext(),
		CompletedToday: s.views.CompletedToday(),
	}
	if current, ok := s.focus.Current(); ok {
		snap.Focus = &current
	}
	return snap
}

// ProjectCounts returns the PARA tree projection with open counts.
func (s *Session) ProjectCounts() []view.ProjectCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views.ProjectOpenCounts()
}

// Filters returns the session's current transient filter state.
func (s *Session) Filters() view.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters replaces the transient filter state.
func (s *Session) SetFilters(f view.Filters) []View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Type == "" {
		f.Type = "all"
	}
	if f.Sort == "" {
		f.Sort = view.SortCreated
	}
	s.filters = f
	return []View{ViewOrganized}
}

// Search sets the free-text query, keeping all other filters.
func (s *Session) Search(query string) []View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Search = query
	return []View{ViewOrganized}
}

func warningText(warn *store.PersistenceWarning) string {
	if warn == nil {
		return ""
	}
	return warn.Error()
}
