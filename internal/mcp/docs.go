package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `corekeep is a personal productivity tracker built around a capture → organize → review → engage loop over "information objects" (tasks, notes, ideas, media).

Core concepts:
- Object: one captured item. It carries a status (inbox, next, active, waiting, done, archived), an automatic priority score, and optional due date, effort estimate, and energy level.
- Catalog: the PARA metadata (areas, projects, resources). Objects are organized by assigning them to catalog projects.
- Focus slot: at most one object held as "what I am doing right now".
- Review rituals: a daily and a weekly digest, each with its own last-completed stamp.

Rules of engagement (default workflow):
1) Capture fast: call capture with just a title and type; refine later.
2) Organize: triage the inbox with assign_project, edit_object, snooze, or archive.
3) Browse: get_organized honors the filter state set via set_filter and search.
4) Review: get_review_digest surfaces top focus, quick wins, overdue items, and inbox triage; mark_review stamps the ritual done.
5) Engage: pick_focus grabs the highest-priority object due today; complete_focus finishes it.
6) Deletion is two-step: archive first, then permanent_delete.

Notes:
- Priority scores are computed, not set. Edit the due date or effort to influence them.
- Mutating tools report which views went stale so you only re-query what changed.
- export_data / import_data round-trip the full dataset as one JSON envelope.

Docs (progressive disclosure):
- corekeep://docs/index (what to read when)
- corekeep://docs/priority (how scores are computed)
- corekeep://docs/workflows/weekly-review (the review ritual playbook)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "corekeep://docs/index",
		Name:        "docs_index",
		Title:       "corekeep docs index",
		Description: "Entry point for agent-facing docs: what exists and what to read when.",
		Content: `# corekeep: Agent Docs Index

Keep your baseline context small and load deeper docs only when needed.

## Quick start (no deep docs)

1. ` + "`get_inbox`" + ` to see what needs triage.
2. ` + "`capture`" + ` anything new with just a title and type.
3. ` + "`assign_project`" + ` / ` + "`edit_object`" + ` / ` + "`snooze`" + ` to organize.
4. ` + "`get_review_digest`" + ` + ` + "`mark_review`" + ` for the daily or weekly ritual.
5. ` + "`pick_focus`" + ` → ` + "`complete_focus`" + ` to work the engage loop.

## Docs (read on demand)

- ` + "`corekeep://docs/priority`" + ` — how the automatic priority score works.
- ` + "`corekeep://docs/workflows/weekly-review`" + ` — the review ritual playbook.

## Capabilities & intentional limitations

- Single user, single session: commands run strictly in call order.
- Priority scores cannot be set directly; adjust due date or effort instead.
- ` + "`permanent_delete`" + ` only works on archived objects.
`,
	},
	{
		URI:         "corekeep://docs/priority",
		Name:        "docs_priority",
		Title:       "Priority scoring",
		Description: "How the automatic priority score is computed and how to influence it.",
		Content: `# Priority scoring

Every object carries a computed score between 20 and 100. Higher means more urgent.

## Inputs

- Due date: the closer (or more overdue) the due date, the larger the bonus. The bonus saturates for overdue items.
- Effort: estimates of 5 minutes or less get a quick-win bonus.
- Type: tasks score slightly above notes, ideas, and media.

## When it recomputes

The score refreshes whenever the due date or effort estimate changes. Status changes, retitling, and reassignment leave it alone.

## Influencing it

- Give real deadlines; undated objects sit near the baseline.
- Estimate effort honestly; tiny estimates surface items as quick wins in the daily digest.
`,
	},
	{
		URI:         "corekeep://docs/workflows/weekly-review",
		Name:        "docs_weekly_review",
		Title:       "Weekly review playbook",
		Description: "Step-by-step loop for the weekly review ritual.",
		Content: `# Weekly review playbook

1. ` + "`get_review_digest`" + ` — the weekly section lists inbox items needing triage and per-project completion percentages.
2. Empty the inbox: ` + "`assign_project`" + ` what belongs somewhere, ` + "`snooze`" + ` what can wait, ` + "`archive`" + ` what is noise.
3. Scan project progress: anything stalled at a low percentage deserves a next action (` + "`edit_object`" + ` with next_action).
4. Check overdue items in the daily section; reschedule or complete them.
5. ` + "`mark_review`" + ` with kind "weekly" to stamp the ritual done.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
