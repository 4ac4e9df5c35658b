package object

import "time"

// Type classifies an information object.
type Type string

const (
	TypeTask  Type = "task"
	TypeNote  Type = "note"
	TypeIdea  Type = "idea"
	TypeMedia Type = "media"
)

// Status drives which view an object surfaces in.
type Status string

const (
	StatusInbox    Status = "inbox"
	StatusNext     Status = "next"
	StatusActive   Status = "active"
	StatusWaiting  Status = "waiting"
	StatusDone     Status = "done"
	StatusArchived Status = "archived"
)

// Energy is the energy level needed to engage with an object.
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

// Cadence is the review rhythm for an object.
type Cadence string

const (
	CadenceDaily  Cadence = "daily"
	CadenceWeekly Cadence = "weekly"
)

// Object is the sole entity of the engine: a captured task, note, idea,
// or media reference. JSON field names and null-vs-absent semantics match
// the exported data format and must not change.
type Object struct {
	ID                  string     `json:"id"`
	Type                Type       `json:"type"`
	Title               string     `json:"title"`
	Body                string     `json:"body"`
	AreaID              *string    `json:"areaId"`
	ProjectID           *string    `json:"projectId"`
	Status              Status     `json:"status"`
	PriorityScore       int        `json:"priorityScore"`
	EnergyLevel         Energy     `json:"energyLevel"`
	EstimatedEffortMins *int       `json:"estimatedEffortMins"`
	DueAt               *time.Time `json:"dueAt"`
	CapturedAt          time.Time  `json:"capturedAt"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	SnoozeUntil         string     `json:"snoozeUntil,omitempty"`
	Tags                []string   `json:"tags"`
	NextAction          string     `json:"nextAction"`
	ReviewCadence       Cadence    `json:"reviewCadence"`
}

// DefaultCadence returns the review cadence implied by an object type.
func DefaultCadence(t Type) Cadence {
	if t == TypeTask {
		return CadenceDaily
	}
	return CadenceWeekly
}

// Patch enumerates the mutable fields of an object. Nil fields are left
// untouched; Type is deliberately absent so it cannot change after capture.
type Patch struct {
	Title               *string
	Body                *string
	AreaID              **string
	ProjectID           **string
	Status              *Status
	EnergyLevel         *Energy
	EstimatedEffortMins **int
	DueAt               **time.Time
	CompletedAt         **time.Time
	SnoozeUntil         *string
	Tags                *[]string
	NextAction          *string
}

// TouchesPriorityInputs reports whether applying the patch changes a field
// the priority score is derived from.
func (p Patch) TouchesPriorityInputs() bool {
	return p.DueAt != nil || p.EstimatedEffortMins != nil
}

// Apply merges the patch into obj.
func (p Patch) Apply(obj *Object) {
	if p.Title != nil {
		obj.Title = *p.Title
	}
	if p.Body != nil {
		obj.Body = *p.Body
	}
	if p.AreaID != nil {
		obj.AreaID = *p.AreaID
	}
	if p.ProjectID != nil {
		obj.ProjectID = *p.ProjectID
	}
	if p.Status != nil {
		obj.Status = *p.Status
	}
	if p.EnergyLevel != nil {
		obj.EnergyLevel = *p.EnergyLevel
	}
	if p.EstimatedEffortMins != nil {
		obj.EstimatedEffortMins = *p.EstimatedEffortMins
	}
	if p.DueAt != nil {
		obj.DueAt = *p.DueAt
	}
	if p.CompletedAt != nil {
		obj.CompletedAt = *p.CompletedAt
	}
	if p.SnoozeUntil != nil {
		obj.SnoozeUntil = *p.SnoozeUntil
	}
	if p.Tags != nil {
		obj.Tags = *p.Tags
	}
	if p.NextAction != nil {
		obj.NextAction = *p.NextAction
	}
}

// ValidTypes lists the accepted object types.
func ValidTypes() []Type {
	return []Type{TypeTask, TypeNote, TypeIdea, TypeMedia}
}

// ValidStatuses lists the accepted statuses.
func ValidStatuses() []Status {
	return []Status{StatusInbox, StatusNext, StatusActive, StatusWaiting, StatusDone, StatusArchived}
}
