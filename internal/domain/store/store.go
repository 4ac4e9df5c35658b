// Package store owns the authoritative collection of information objects and
// the review-completion log. Every mutation persists through the storage
// adapter; a failed write is surfaced as a warning but never rolls back the
// in-memory state, which is the source of truth for the running session.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/storage"
)

// ReviewKind names one of the two review rituals.
type ReviewKind string

const (
	ReviewDaily  ReviewKind = "daily"
	ReviewWeekly ReviewKind = "weekly"
)

// ReviewLog records the last completion of each ritual. Persisted separately
// from the object collection.
type ReviewLog struct {
	Daily  *time.Time `json:"daily"`
	Weekly *time.Time `json:"weekly"`
}

// PersistenceWarning reports a failed write. The mutation it accompanies has
// already been applied in memory; only durability is at risk.
type PersistenceWarning struct {
	Key string
	Err error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", w.Key, w.Err)
}

func (w *PersistenceWarning) Unwrap() error { return w.Err }

// Store holds the object collection (newest first) and the review log.
type Store struct {
	adapter   storage.Adapter
	logger    *slog.Logger
	now       func() time.Time
	objects   []object.Object
	reviewLog ReviewLog
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for date-sensitive tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store over the given adapter. Call Load before first use.
func New(adapter storage.Adapter, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		adapter: adapter,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads persisted objects and the review log. Missing or malformed data
// falls back to the built-in seed set (objects) or an empty log; the failure
// is logged and never propagated.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.adapter.Get(ctx, storage.KeyObjects)
	switch {
	case err == nil:
		var objects []object.Object
		if jsonErr := json.Unmarshal(raw, &objects); jsonErr != nil {
			s.logger.Warn("stored objects are malformed, using seed data", "error", jsonErr)
			s.objects = SeedObjects(s.now())
		} else {
			s.objects = objects
		}
	case err == storage.ErrNotFound:
		s.objects = SeedObjects(s.now())
	default:
		s.logger.Warn("failed to load objects, using seed data", "error", err)
		s.objects = SeedObjects(s.now())
	}

	raw, err = s.adapter.Get(ctx, storage.KeyReviewLog)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.Warn("failed to load review log", "error", err)
		}
		s.reviewLog = ReviewLog{}
		return
	}
	var log ReviewLog
	if jsonErr := json.Unmarshal(raw, &log); jsonErr != nil {
		s.logger.Warn("stored review log is malformed", "error", jsonErr)
		s.reviewLog = ReviewLog{}
		return
	}
	s.reviewLog = log
}

// Add prepends an object, keeping newest-first order, and persists.
func (s *Store) Add(ctx context.Context, obj object.Object) *PersistenceWarning {
	s.objects = append([]object.Object{obj}, s.objects...)
	return s.persistObjects(ctx)
}

// Update applies a patch to the object with the given id and persists. It
// reports false without touching anything when the id is absent. The
// priority score is recomputed only when the patch changes due date or
// effort, so unrelated edits do not re-rank the item.
func (s *Store) Update(ctx context.Context, id string, patch object.Patch) (bool, *PersistenceWarning) {
	for i := range s.objects {
		if s.objects[i].ID != id {
			continue
		}
		patch.Apply(&s.objects[i])
		if patch.TouchesPriorityInputs() {
			obj := &s.objects[i]
			obj.PriorityScore = object.Score(obj.DueAt, obj.EstimatedEffortMins, obj.Type, s.now())
		}
		return true, s.persistObjects(ctx)
	}
	return false, nil
}

// Delete removes the object with the given id permanently and persists.
func (s *Store) Delete(ctx context.Context, id string) (bool, *PersistenceWarning) {
	for i := range s.objects {
		if s.objects[i].ID == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true, s.persistObjects(ctx)
		}
	}
	return false, nil
}

// ReplaceAll substitutes the whole collection (import) and persists.
func (s *Store) ReplaceAll(ctx context.Context, objects []object.Object) *PersistenceWarning {
	s.objects = objects
	return s.persistObjects(ctx)
}

// MarkReview stamps the ritual with the current time and persists the review
// log independently of the object collection.
func (s *Store) MarkReview(ctx context.Context, kind ReviewKind) *PersistenceWarning {
	now := s.now()
	switch kind {
	case ReviewDaily:
		s.reviewLog.Daily = &now
	case ReviewWeekly:
		s.reviewLog.Weekly = &now
	}
	return s.persistReviewLog(ctx)
}

// SetReviewLog substitutes the review log (import) and persists it.
func (s *Store) SetReviewLog(ctx context.Context, log ReviewLog) *PersistenceWarning {
	s.reviewLog = log
	return s.persistReviewLog(ctx)
}

// Objects returns a copy of the collection in store order (newest first).
func (s *Store) Objects() []object.Object {
	out := make([]object.Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Get returns the object with the given id.
func (s *Store) Get(id string) (object.Object, bool) {
	for _, obj := range s.objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return object.Object{}, false
}

// Inbox returns all objects with inbox status, in store order.
func (s *Store) Inbox() []object.Object {
	var out []object.Object
	for _, obj := range s.objects {
		if obj.Status == object.StatusInbox {
			out = append(out, obj)
		}
	}
	return out
}

// Active returns non-inbox objects, optionally restricted to one type.
// Pass "all" (or "") for no type restriction.
func (s *Store) Active(typeFilter string) []object.Object {
	var out []object.Object
	for _, obj := range s.objects {
		if obj.Status == object.StatusInbox {
			continue
		}
		if typeFilter != "" && typeFilter != "all" && string(obj.Type) != typeFilter {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// ByType returns all objects of the given type, in store order.
func (s *Store) ByType(t object.Type) []object.Object {
	var out []object.Object
	for _, obj := range s.objects {
		if obj.Type == t {
			out = append(out, obj)
		}
	}
	return out
}

// ReviewLog returns the current review log.
func (s *Store) ReviewLog() ReviewLog {
	return s.reviewLog
}

// Len returns the object count.
func (s *Store) Len() int {
	return len(s.objects)
}

func (s *Store) persistObjects(ctx context.Context) *PersistenceWarning {
	data, err := json.Marshal(s.objects)
	if err == nil {
		err = s.adapter.Set(ctx, storage.KeyObjects, data)
	}
	if err != nil {
		warn := &PersistenceWarning{Key: storage.KeyObjects, Err: err}
		s.logger.Warn("persist failed", "key", warn.Key, "error", err)
		return warn
	}
	return nil
}

func (s *Store) persistReviewLog(ctx context.Context) *PersistenceWarning {
	data, err := json.Marshal(s.reviewLog)
	if err == nil {
		err = s.adapter.Set(ctx, storage.KeyReviewLog, data)
	}
	if err != nil {
		warn := &PersistenceWarning{Key: storage.KeyReviewLog, Err: err}
		s.logger.Warn("persist failed", "key", warn.Key, "error", err)
		return warn
	}
	return nil
}
