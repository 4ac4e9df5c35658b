package view

import (
	"sort"

	"github.com/mpelle/corekeep/internal/domain/object"
)

const upNextSize = 5

// TodaySet returns every object due today or earlier that is still
// actionable: not done, not archived, and carrying a due date. The
// comparison is date-only; time of day never matters. Ordered by priority
// descending, store order breaking ties.
func (e *Engine) TodaySet() []object.Object {
	today := object.DateOnly(e.now())

	var out []object.Object
	for _, obj := range e.store.Objects() {
		if obj.Status == object.StatusDone || obj.Status == object.StatusArchived {
			continue
		}
		if obj.DueAt == nil {
			continue
		}
		if object.DateOnly(*obj.DueAt).After(today) {
			continue
		}
		out = append(out, obj)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PriorityScore > out[j].PriorityScore
	})
	return out
}

// UpNext returns the top slice of the today-set.
func (e *Engine) UpNext() []object.Object {
	set := e.TodaySet()
	if len(set) > upNextSize {
		set = set[:upNextSize]
	}
	return set
}

// CompletedToday returns done objects finished on the current calendar
// date. Objects missing a completion stamp fall back to their capture time.
func (e *Engine) CompletedToday() []object.Object {
	today := object.DateOnly(e.now())

	var out []object.Object
	for _, obj := range e.store.Objects() {
		if obj.Status != object.StatusDone {
			continue
		}
		when := obj.CapturedAt
		if obj.CompletedAt != nil {
			when = *obj.CompletedAt
		}
		if object.DateOnly(when).Equal(today) {
			out = append(out, obj)
		}
	}
	return out
}
