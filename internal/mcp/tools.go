package mcp

import (
	"context"
	"time"

	"github.com/mpelle/corekeep/internal/app"
	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/view"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools wires every tool onto the server. Input schemas are derived
// from the typed params structs.
func registerTools(server *sdkmcp.Server, svc SessionService) {
	// Capture
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "capture",
		Description: "Capture a new information object into the inbox. Type is one of task, note, idea, media.",
	}, captureTool(svc))

	// Organize
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "edit_object",
		Description: "Partially update an object. Omitted fields are left alone; clear_due and clear_effort null the optional fields.",
	}, editTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "assign_project",
		Description: "Assign an object to a catalog project, deriving its area and activating it.",
	}, assignTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "snooze",
		Description: "Park an object until a date (YYYY-MM-DD), moving it to waiting status.",
	}, snoozeTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_complete",
		Description: "Mark an object done and stamp its completion time.",
	}, markCompleteTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_status",
		Description: "Move an object to a status: inbox, next, active, waiting, done, archived.",
	}, updateStatusTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "archive",
		Description: "Soft-delete an object into the archive.",
	}, archiveTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "restore",
		Description: "Return an archived object to the inbox for re-triage.",
	}, restoreTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "permanent_delete",
		Description: "Permanently remove an archived object. Fails unless the object is archived.",
	}, permanentDeleteTool(svc))

	// Views
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_inbox",
		Description: "List objects awaiting triage, newest first.",
	}, inboxTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_organized",
		Description: "List organized (non-inbox) objects under the current filters, plus per-project open counts.",
	}, organizedTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_archived",
		Description: "List archived objects.",
	}, archivedTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_filter",
		Description: "Replace the organize view filters. Sort is one of created, due, priority, title.",
	}, setFilterTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search",
		Description: "Set the free-text query over title, body, and tags, keeping other filters.",
	}, searchTool(svc))

	// Review
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_review_digest",
		Description: "Build the daily and weekly review digests.",
	}, reviewDigestTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_review",
		Description: "Record completion of a review ritual. Kind is daily or weekly.",
	}, markReviewTool(svc))

	// Engage
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_engage",
		Description: "Get the engage panel: current focus, up-next actions, and objects completed today.",
	}, engageTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "pick_focus",
		Description: "Focus the highest-priority object due today.",
	}, pickFocusTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_focus",
		Description: "Focus a specific object by id.",
	}, setFocusTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "complete_focus",
		Description: "Complete the focused object and empty the focus slot.",
	}, completeFocusTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_focus",
		Description: "Empty the focus slot without completing anything.",
	}, clearFocusTool(svc))

	// Data
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_data",
		Description: "Export all objects and the review log as a JSON envelope.",
	}, exportTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_data",
		Description: "Replace all data from a JSON envelope produced by export_data. Invalid payloads change nothing.",
	}, importTool(svc))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_catalog",
		Description: "Get the PARA catalog: areas, projects, and resources.",
	}, catalogTool(svc))
}

func captureTool(svc SessionService) sdkmcp.ToolHandlerFor[CaptureParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in CaptureParams) (*sdkmcp.CallToolResult, app.Result, error) {
		due, err := parseDue(in.Due)
		if err != nil {
			return nil, app.Result{}, err
		}
		res, err := svc.Capture(ctx, app.CaptureRequest{
			Title:      in.Title,
			Type:       object.Type(in.Type),
			Body:       in.Body,
			AreaID:     optional(in.AreaID),
			ProjectID:  optional(in.ProjectID),
			Due:        due,
			EffortMins: in.EffortMins,
			Energy:     object.Energy(in.Energy),
			Tags:       in.Tags,
			NextAction: in.NextAction,
		})
		return nil, res, mapError(err)
	}
}

func editTool(svc SessionService) sdkmcp.ToolHandlerFor[EditObjectParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in EditObjectParams) (*sdkmcp.CallToolResult, app.Result, error) {
		req := app.EditRequest{
			Title:      in.Title,
			Body:       in.Body,
			Tags:       in.Tags,
			NextAction: in.NextAction,
		}
		if in.Energy != nil {
			energy := object.Energy(*in.Energy)
			req.Energy = &energy
		}
		if in.AreaID != nil {
			req.AreaID = clearable(*in.AreaID)
		}
		if in.ProjectID != nil {
			req.ProjectID = clearable(*in.ProjectID)
		}
		switch {
		case in.ClearDue:
			req.Due = new(*time.Time)
		case in.Due != nil:
			due, err := parseDue(*in.Due)
			if err != nil {
				return nil, app.Result{}, err
			}
			req.Due = &due
		}
		switch {
		case in.ClearEffort:
			req.EffortMins = new(*int)
		case in.EffortMins != nil:
			effort := *in.EffortMins
			effortPtr := &effort
			req.EffortMins = &effortPtr
		}
		res, err := svc.Edit(ctx, in.ID, req)
		return nil, res, mapError(err)
	}
}

func assignTool(svc SessionService) sdkmcp.ToolHandlerFor[AssignProjectParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in AssignProjectParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.Assign(ctx, in.ID, in.ProjectID)
		return nil, res, mapError(err)
	}
}

func snoozeTool(svc SessionService) sdkmcp.ToolHandlerFor[SnoozeParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SnoozeParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.Snooze(ctx, in.ID, in.Until)
		return nil, res, mapError(err)
	}
}

func markCompleteTool(svc SessionService) sdkmcp.ToolHandlerFor[ObjectIDParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ObjectIDParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.MarkComplete(ctx, in.ID)
		return nil, res, mapError(err)
	}
}

func updateStatusTool(svc SessionService) sdkmcp.ToolHandlerFor[UpdateStatusParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateStatusParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.UpdateStatus(ctx, in.ID, object.Status(in.Status))
		return nil, res, mapError(err)
	}
}

func archiveTool(svc SessionService) sdkmcp.ToolHandlerFor[ObjectIDParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ObjectIDParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.Archive(ctx, in.ID)
		return nil, res, mapError(err)
	}
}

func restoreTool(svc SessionService) sdkmcp.ToolHandlerFor[ObjectIDParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ObjectIDParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.Restore(ctx, in.ID)
		return nil, res, mapError(err)
	}
}

func permanentDeleteTool(svc SessionService) sdkmcp.ToolHandlerFor[ObjectIDParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ObjectIDParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.PermanentDelete(ctx, in.ID)
		return nil, res, mapError(err)
	}
}

func inboxTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, ObjectListResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ObjectListResult, error) {
		return nil, ObjectListResult{Objects: svc.InboxView()}, nil
	}
}

func organizedTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, OrganizedResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, OrganizedResult, error) {
		return nil, OrganizedResult{
			Objects:  svc.OrganizedView(),
			Filters:  svc.Filters(),
			Projects: svc.ProjectCounts(),
		}, nil
	}
}

func archivedTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, ObjectListResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ObjectListResult, error) {
		return nil, ObjectListResult{Objects: svc.ArchivedView()}, nil
	}
}

func setFilterTool(svc SessionService) sdkmcp.ToolHandlerFor[SetFilterParams, FilterResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in SetFilterParams) (*sdkmcp.CallToolResult, FilterResult, error) {
		svc.SetFilters(view.Filters{
			Type:      in.Type,
			Search:    in.Search,
			AreaID:    in.AreaID,
			ProjectID: in.ProjectID,
			Energy:    in.Energy,
			Tag:       in.Tag,
			Sort:      view.SortKey(in.Sort),
		})
		return nil, FilterResult{Filters: svc.Filters()}, nil
	}
}

func searchTool(svc SessionService) sdkmcp.ToolHandlerFor[SearchParams, OrganizedResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in SearchParams) (*sdkmcp.CallToolResult, OrganizedResult, error) {
		svc.Search(in.Query)
		return nil, OrganizedResult{
			Objects:  svc.OrganizedView(),
			Filters:  svc.Filters(),
			Projects: svc.ProjectCounts(),
		}, nil
	}
}

func reviewDigestTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, app.ReviewDigest] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, app.ReviewDigest, error) {
		return nil, svc.ReviewView(), nil
	}
}

func markReviewTool(svc SessionService) sdkmcp.ToolHandlerFor[MarkReviewParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in MarkReviewParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.MarkReview(ctx, in.Kind)
		return nil, res, mapError(err)
	}
}

func engageTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, app.EngageSnapshot] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, app.EngageSnapshot, error) {
		return nil, svc.EngageView(), nil
	}
}

func pickFocusTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, app.Result] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.PickFocus()
		return nil, res, mapError(err)
	}
}

func setFocusTool(svc SessionService) sdkmcp.ToolHandlerFor[ObjectIDParams, app.Result] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in ObjectIDParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.SetFocus(in.ID)
		return nil, res, mapError(err)
	}
}

func completeFocusTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, app.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, app.Result, error) {
		res, err := svc.CompleteFocus(ctx)
		return nil, res, mapError(err)
	}
}

func clearFocusTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, app.Result] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, app.Result, error) {
		return nil, svc.ClearFocus(), nil
	}
}

func exportTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, app.ExportPayload] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, app.ExportPayload, error) {
		return nil, svc.Export(), nil
	}
}

func importTool(svc SessionService) sdkmcp.ToolHandlerFor[ImportDataParams, ImportResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ImportDataParams) (*sdkmcp.CallToolResult, ImportResult, error) {
		res, err := svc.Import(ctx, []byte(in.Data))
		if err != nil {
			return nil, ImportResult{}, mapError(err)
		}
		return nil, ImportResult{
			Imported: len(svc.Export().Objects),
			Warning:  res.Warning,
			Stale:    res.Stale,
		}, nil
	}
}

func catalogTool(svc SessionService) sdkmcp.ToolHandlerFor[EmptyParams, CatalogResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, CatalogResult, error) {
		return nil, CatalogResult{Catalog: svc.Catalog()}, nil
	}
}

// parseDue accepts RFC 3339 timestamps or bare dates.
func parseDue(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, &APIError{
			Code:         "VALIDATION_ERROR",
			Message:      "due must be RFC 3339 or YYYY-MM-DD",
			RecoveryHint: "Example: 2025-04-01 or 2025-04-01T09:00:00Z",
		}
	}
	return &t, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// clearable maps a tool-level string to a double-pointer patch field where
// empty means "set to null".
func clearable(s string) **string {
	if s == "" {
		return new(*string)
	}
	inner := &s
	return &inner
}
