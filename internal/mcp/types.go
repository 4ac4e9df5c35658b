package mcp

import (
	"github.com/mpelle/corekeep/internal/app"
	"github.com/mpelle/corekeep/internal/domain/catalog"
	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/view"
)

type CaptureParams struct {
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	Body       string   `json:"body,omitempty"`
	AreaID     string   `json:"area_id,omitempty"`
	ProjectID  string   `json:"project_id,omitempty"`
	Due        string   `json:"due,omitempty"`
	EffortMins *int     `json:"effort_mins,omitempty"`
	Energy     string   `json:"energy,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	NextAction string   `json:"next_action,omitempty"`
}

// EditObjectParams carries a partial update. Omitted fields stay untouched;
// the clear_* flags null out the optional fields, and an empty area_id or
// project_id clears the assignment.
type EditObjectParams struct {
	ID          string    `json:"id"`
	Title       *string   `json:"title,omitempty"`
	Body        *string   `json:"body,omitempty"`
	AreaID      *string   `json:"area_id,omitempty"`
	ProjectID   *string   `json:"project_id,omitempty"`
	Energy      *string   `json:"energy,omitempty"`
	EffortMins  *int      `json:"effort_mins,omitempty"`
	Due         *string   `json:"due,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	NextAction  *string   `json:"next_action,omitempty"`
	ClearDue    bool      `json:"clear_due,omitempty"`
	ClearEffort bool      `json:"clear_effort,omitempty"`
}

type AssignProjectParams struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
}

type SnoozeParams struct {
	ID    string `json:"id"`
	Until string `json:"until"`
}

type ObjectIDParams struct {
	ID string `json:"id"`
}

type UpdateStatusParams struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetFilterParams struct {
	Type      string `json:"type,omitempty"`
	Search    string `json:"search,omitempty"`
	AreaID    string `json:"area_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	Energy    string `json:"energy,omitempty"`
	Tag       string `json:"tag,omitempty"`
	Sort      string `json:"sort,omitempty"`
}

type SearchParams struct {
	Query string `json:"query"`
}

type MarkReviewParams struct {
	Kind string `json:"kind"`
}

type ImportDataParams struct {
	// Data is the JSON export envelope produced by export_data.
	Data string `json:"data"`
}

type EmptyParams struct{}

// ObjectListResult wraps a view projection.
type ObjectListResult struct {
	Objects []object.Object `json:"objects"`
}

// OrganizedResult is the filtered organize view plus the PARA tree counts.
type OrganizedResult struct {
	Objects  []object.Object     `json:"objects"`
	Filters  view.Filters        `json:"filters"`
	Projects []view.ProjectCount `json:"projects"`
}

type FilterResult struct {
	Filters view.Filters `json:"filters"`
}

type CatalogResult struct {
	Catalog catalog.Catalog `json:"catalog"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Warning  string     `json:"warning,omitempty"`
	Stale    []app.View `json:"stale"`
}
