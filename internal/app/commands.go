package app

import (
	"context"
	"strings"
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/store"
	"github.com/google/uuid"
)

// CaptureRequest describes a capture command. Only Title and Type are
// required; everything else defaults.
type CaptureRequest struct {
	Title      string
	Type       object.Type
	Body       string
	AreaID     *string
	ProjectID  *string
	Due        *time.Time
	EffortMins *int
	Energy     object.Energy
	Tags       []string
	NextAction string
}

// Capture validates the request and adds a new object in inbox status.
// Validation failures leave the store untouched.
func (s *Session) Capture(ctx context.Context, req CaptureRequest) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := object.ValidateType(req.Type); err != nil {
		return Result{}, err
	}
	if err := object.ValidateTitle(req.Title); err != nil {
		return Result{}, err
	}
	if err := object.ValidateEffort(req.EffortMins); err != nil {
		return Result{}, err
	}
	if err := object.ValidateDue(req.Due, s.now()); err != nil {
		return Result{}, err
	}
	energy := req.Energy
	if energy == "" {
		energy = object.EnergyMedium
	}
	if err := object.ValidateEnergy(energy); err != nil {
		return Result{}, err
	}
	if err := s.checkCatalogRefs(req.AreaID, req.ProjectID); err != nil {
		return Result{}, err
	}

	now := s.now()
	// Tags may arrive comma-joined from loose clients; normalize either way.
	tags := object.SplitTags(strings.Join(req.Tags, ","))
	obj := object.Object{
		ID:                  uuid.NewString(),
		Type:                req.Type,
		Title:               req.Title,
		Body:                req.Body,
		AreaID:              req.AreaID,
		ProjectID:           req.ProjectID,
		Status:              object.StatusInbox,
		PriorityScore:       object.Score(req.Due, req.EffortMins, req.Type, now),
		EnergyLevel:         energy,
		EstimatedEffortMins: req.EffortMins,
		DueAt:               req.Due,
		CapturedAt:          now,
		Tags:                tags,
		NextAction:          req.NextAction,
		ReviewCadence:       object.DefaultCadence(req.Type),
	}

	warn := s.store.Add(ctx, obj)
	s.PushRemote(obj)
	return Result{
		Object:  &obj,
		Warning: warningText(warn),
		Stale:   []View{ViewInbox, ViewReview, ViewEngage},
	}, nil
}

// EditRequest enumerates the editable fields of an object. Nil fields stay
// untouched; double pointers distinguish "leave alone" from "set to null".
type EditRequest struct {
	Title      *string
	Body       *string
	AreaID     **string
	ProjectID  **string
	Energy     *object.Energy
	EffortMins **int
	Due        **time.Time
	Tags       *[]string
	NextAction *string
}

// Edit applies a validated partial update. The priority score is only
// recomputed when the edit touches due date or effort.
func (s *Session) Edit(ctx context.Context, id string, req EditRequest) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(id); !ok {
		return Result{}, ErrObjectNotFound
	}
	if req.Title != nil {
		if err := object.ValidateTitle(*req.Title); err != nil {
			return Result{}, err
		}
	}
	if req.EffortMins != nil {
		if err := object.ValidateEffort(*req.EffortMins); err != nil {
			return Result{}, err
		}
	}
	if req.Due != nil {
		if err := object.ValidateDue(*req.Due, s.now()); err != nil {
			return Result{}, err
		}
	}
	if req.Energy != nil {
		if err := object.ValidateEnergy(*req.Energy); err != nil {
			return Result{}, err
		}
	}
	var areaID, projectID *string
	if req.AreaID != nil {
		areaID = *req.AreaID
	}
	if req.ProjectID != nil {
		projectID = *req.ProjectID
	}
	if err := s.checkCatalogRefs(areaID, projectID); err != nil {
		return Result{}, err
	}

	patch := object.Patch{
		Title:               req.Title,
		Body:                req.Body,
		AreaID:              req.AreaID,
		ProjectID:           req.ProjectID,
		EnergyLevel:         req.Energy,
		EstimatedEffortMins: req.EffortMins,
		DueAt:               req.Due,
		Tags:                req.Tags,
		NextAction:          req.NextAction,
	}
	_, warn := s.store.Update(ctx, id, patch)
	updated, _ := s.store.Get(id)
	return Result{Object: &updated, Warning: warningText(warn), Stale: allViews()}, nil
}

// Assign moves an object into a catalog project, deriving its area and
// activating it.
func (s *Session) Assign(ctx context.Context, id, projectID string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(id); !ok {
		return Result{}, ErrObjectNotFound
	}
	area := s.catalog.AreaForProject(projectID)
	if area == nil {
		return Result{}, ErrUnknownProject
	}

	pid := projectID
	aid := area.ID
	pidPtr, aidPtr := &pid, &aid
	status := object.StatusActive
	_, warn := s.store.Update(ctx, id, object.Patch{
		ProjectID: &pidPtr,
		AreaID:    &aidPtr,
		Status:    &status,
	})
	updated, _ := s.store.Get(id)
	return Result{Object: &updated, Warning: warningText(warn), Stale: allViews()}, nil
}

// Snooze parks an object until a date, moving it to waiting status.
func (s *Session) Snooze(ctx context.Context, id, date string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(id); !ok {
		return Result{}, ErrObjectNotFound
	}
	parsed, err := time.ParseInLocation("2006-01-02", date, s.now().Location())
	if err != nil {
		return Result{}, ErrBadSnoozeDate
	}
	if parsed.Before(object.DateOnly(s.now())) {
		return Result{}, ErrSnoozeInPast
	}

	status := object.StatusWaiting
	snooze := date
	_, warn := s.store.Update(ctx, id, object.Patch{
		Status:      &status,
		SnoozeUntil: &snooze,
	})
	updated, _ := s.store.Get(id)
	return Result{Object: &updated, Warning: warningText(warn), Stale: allViews()}, nil
}

// MarkComplete marks an object done and stamps its completion time.
func (s *Session) MarkComplete(ctx context.Context, id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeLocked(ctx, id)
}

func (s *Session) completeLocked(ctx context.Context, id string) (Result, error) {
	if _, ok := s.store.Get(id); !ok {
		return Result{}, ErrObjectNotFound
	}
	now := s.now()
	completedAt := &now
	status := object.StatusDone
	_, warn := s.store.Update(ctx, id, object.Patch{
		Status:      &status,
		CompletedAt: &completedAt,
	})
	updated, _ := s.store.Get(id)
	s.PushRemote(updated)
	return Result{Object: &updated, Warning: warningText(warn), Stale: allViews()}, nil
}

// UpdateStatus transitions an object to any valid status.
func (s *Session) UpdateStatus(ctx context.Context, id string, status object.Status) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := object.ValidateStatus(status); err != nil {
		return Result{}, err
	}
	if _, ok := s.store.Get(id); !ok {
		return Result{}, ErrObjectNotFound
	}

	patch := object.Patch{Status: &status}
	if status == object.StatusDone {
		now := s.now()
		completedAt := &now
		patch.CompletedAt = &completedAt
	}
	_, warn := s.store.Update(ctx, id, patch)
	updated, _ := s.store.Get(id)
	return Result{Object: &updated, Warning: warningText(warn), Stale: allViews()}, nil
}

// Archive soft-deletes an object.
func (s *Session) Archive(ctx context.Context, id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(id); !ok {
		return Result{}, ErrObjectNotFound
	}
	status := object.StatusArchived
	_, warn := s.store.Update(ctx, id, object.Patch{Status: &status})
	updated, _ := s.store.Get(id)
	return Result{Object: &updated, Warning: warningText(warn), Stale: allViews()}, nil
}

// Restore returns an archived object to the inbox for re-triage.
func (s *Session) Restore(ctx context.Context, id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.store.Get(id)
	if !ok {
		return Result{}, ErrObjectNotFound
	}
	if obj.Status != object.StatusArchived {
		return Result{}, ErrNotArchived
	}
	status := object.StatusInbox
	_, warn := s.store.Update(ctx, id, object.Patch{Status: &status})
	updated, _ := s.store.Get(id)
	return Result{Object: &updated, Warning: warningText(warn), Stale: allViews()}, nil
}

// PermanentDelete removes an archived object for good. Only reachable from
// archived status, which keeps deletion a two-step act.
func (s *Session) PermanentDelete(ctx context.Context, id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.store.Get(id)
	if !ok {
		return Result{}, ErrObjectNotFound
	}
	if obj.Status != object.StatusArchived {
		return Result{}, ErrNotArchived
	}
	_, warn := s.store.Delete(ctx, id)
	return Result{Warning: warningText(warn), Stale: []View{ViewArchived}}, nil
}

// MarkReview stamps a ritual as completed now.
func (s *Session) MarkReview(ctx context.Context, kind string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rk := store.ReviewKind(kind)
	if rk != store.ReviewDaily && rk != store.ReviewWeekly {
		return Result{}, ErrBadReviewKind
	}
	warn := s.store.MarkReview(ctx, rk)
	return Result{Warning: warningText(warn), Stale: []View{ViewReview}}, nil
}

// PickFocus selects the top of the engage today-set as the current focus.
func (s *Session) PickFocus() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	picked, err := s.focus.Pick()
	if err != nil {
		return Result{}, err
	}
	return Result{Object: &picked, Stale: []View{ViewEngage}}, nil
}

// SetFocus focuses a specific object.
func (s *Session) SetFocus(id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, err := s.focus.Set(id)
	if err != nil {
		return Result{}, err
	}
	return Result{Object: &obj, Stale: []View{ViewEngage}}, nil
}

// CompleteFocus completes the focused object and empties the slot.
func (s *Session) CompleteFocus(ctx context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	done, warn, err := s.focus.Complete(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Object: &done, Warning: warningText(warn), Stale: allViews()}, nil
}

// ClearFocus unconditionally empties the focus slot.
func (s *Session) ClearFocus() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.focus.Clear()
	return Result{Stale: []View{ViewEngage}}
}

// PushRemote is the network-sync placeholder. It logs and returns; real
// sync is out of scope.
func (s *Session) PushRemote(obj object.Object) {
	s.logger.Debug("sync placeholder", "id", obj.ID)
}

func (s *Session) checkCatalogRefs(areaID, projectID *string) error {
	if areaID != nil && s.catalog.AreaName(*areaID) == "" {
		return ErrUnknownArea
	}
	if projectID != nil && s.catalog.FindProject(*projectID) == nil {
		return ErrUnknownProject
	}
	return nil
}
