// Package view derives filtered, sorted, and searched projections from store
// and catalog state. Nothing here mutates; each call re-derives from the
// current collection so callers can re-query after any command.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/mpelle/corekeep/internal/domain/catalog"
	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/store"
)

// SortKey selects the ordering of the organized view.
type SortKey string

const (
	SortCreated  SortKey = "created"  // capture time, newest first (default)
	SortDue      SortKey = "due"      // due date ascending, undated last
	SortPriority SortKey = "priority" // priority score descending
	SortTitle    SortKey = "title"    // title lexicographic
)

// Filters is the transient filter state applied to the organized view. All
// set filters compose with logical AND; search applies independently of the
// explicit filters.
type Filters struct {
	Type      string // "all" or an exact object type
	Search    string // case-insensitive substring over title, body, tags
	AreaID    string
	ProjectID string
	Energy    string
	Tag       string // exact tag match
	Sort      SortKey
}

// Engine derives views over a store and catalog.
type Engine struct {
	store   *store.Store
	catalog *catalog.Catalog
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates a view engine. The catalog is read-only reference data.
func New(st *store.Store, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{store: st, catalog: cat, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Inbox returns objects awaiting triage, in store order (newest first).
func (e *Engine) Inbox() []object.Object {
	return e.store.Inbox()
}

// Archived returns soft-deleted objects. The only actions available on them
// are restore and permanent delete.
func (e *Engine) Archived() []object.Object {
	var out []object.Object
	for _, obj := range e.store.Objects() {
		if obj.Status == object.StatusArchived {
			out = append(out, obj)
		}
	}
	return out
}

// Organized returns all non-inbox objects after applying f.
func (e *Engine) Organized(f Filters) []object.Object {
	list := e.store.Active(f.Type)

	query := strings.ToLower(strings.TrimSpace(f.Search))
	filtered := list[:0:0]
	for _, obj := range list {
		if query != "" && !matchesSearch(obj, query) {
			continue
		}
		if f.AreaID != "" && (obj.AreaID == nil || *obj.AreaID != f.AreaID) {
			continue
		}
		if f.ProjectID != "" && (obj.ProjectID == nil || *obj.ProjectID != f.ProjectID) {
			continue
		}
		if f.Energy != "" && string(obj.EnergyLevel) != f.Energy {
			continue
		}
		if f.Tag != "" && !hasTag(obj, f.Tag) {
			continue
		}
		filtered = append(filtered, obj)
	}

	sortObjects(filtered, f.Sort)
	return filtered
}

func matchesSearch(obj object.Object, query string) bool {
	if strings.Contains(strings.ToLower(obj.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(obj.Body), query) {
		return true
	}
	for _, tag := range obj.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func hasTag(obj object.Object, tag string) bool {
	for _, t := range obj.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// sortObjects orders a view slice in place. Sorting is stable so objects
// that compare equal keep store order, which makes view ordering a fixed
// contract rather than an implementation accident.
func sortObjects(list []object.Object, key SortKey) {
	switch key {
	case SortDue:
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i].DueAt, list[j].DueAt
			switch {
			case a == nil && b == nil:
				return false
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortPriority:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PriorityScore > list[j].PriorityScore
		})
	case SortTitle:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Title < list[j].Title
		})
	default: // SortCreated
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CapturedAt.After(list[j].CapturedAt)
		})
	}
}

// ProjectCount pairs a catalog project with its open-object count, for the
// PARA tree projection.
type ProjectCount struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	Open      int    `json:"open"`
}

// ProjectOpenCounts returns, per catalog project, the number of assigned
// objects that are not done.
func (e *Engine) ProjectOpenCounts() []ProjectCount {
	objects := e.store.Objects()
	var out []ProjectCount
	for _, proj := range e.catalog.Projects() {
		count := 0
		for _, obj := range objects {
			if obj.ProjectID != nil && *obj.ProjectID == proj.ID && obj.Status != object.StatusDone {
				count++
			}
		}
		out = append(out, ProjectCount{ProjectID: proj.ID, Name: proj.Name, Open: count})
	}
	return out
}
