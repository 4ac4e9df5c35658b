// Package focus holds the single-slot "current focus" selection. The slot is
// scoped to the running session and never persisted.
package focus

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/store"
	"github.com/mpelle/corekeep/internal/domain/view"
)

var (
	// ErrNothingDue indicates the engage today-set is empty.
	ErrNothingDue = errors.New("no objects due today to focus on")
	// ErrNotFound indicates the requested focus id does not resolve.
	ErrNotFound = errors.New("focus target not found")
	// ErrNoFocus indicates no object currently holds the slot.
	ErrNoFocus = errors.New("no current focus")
)

// Controller moves between two states: Empty and Focused(id). Pick and Set
// enter Focused; Complete and Clear return to Empty.
type Controller struct {
	store  *store.Store
	views  *view.Engine
	logger *slog.Logger
	now    func() time.Time

	currentID string
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a focus controller over the store and view engine.
func New(st *store.Store, views *view.Engine, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{store: st, views: views, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pick selects the highest-priority object from the engage today-set.
func (c *Controller) Pick() (object.Object, error) {
	set := c.views.TodaySet()
	if len(set) == 0 {
		return object.Object{}, ErrNothingDue
	}
	c.currentID = set[0].ID
	return set[0], nil
}

// Set focuses a specific object by id.
func (c *Controller) Set(id string) (object.Object, error) {
	obj, ok := c.store.Get(id)
	if !ok {
		return object.Object{}, ErrNotFound
	}
	c.currentID = obj.ID
	return obj, nil
}

// Current returns the focused object, if any.
func (c *Controller) Current() (object.Object, bool) {
	if c.currentID == "" {
		return object.Object{}, false
	}
	obj, ok := c.store.Get(c.currentID)
	if !ok {
		// The focused object was deleted out from under the slot.
		c.currentID = ""
		return object.Object{}, false
	}
	return obj, true
}

// Complete marks the focused object done, stamps its completion time, and
// empties the slot. The persistence warning, if any, follows store
// semantics: the in-memory completion stands.
func (c *Controller) Complete(ctx context.Context) (object.Object, *store.PersistenceWarning, error) {
	obj, ok := c.Current()
	if !ok {
		return object.Object{}, nil, ErrNoFocus
	}

	now := c.now()
	completedAt := &now
	status := object.StatusDone
	_, warn := c.store.Update(ctx, obj.ID, object.Patch{
		Status:      &status,
		CompletedAt: &completedAt,
	})
	c.currentID = ""

	done, _ := c.store.Get(obj.ID)
	return done, warn, nil
}

// Clear unconditionally empties the slot.
func (c *Controller) Clear() {
	c.currentID = ""
}
