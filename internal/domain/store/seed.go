package store

import (
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
)

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

// SeedObjects returns the starter collection used when no persisted data
// exists or the stored blob cannot be read.
func SeedObjects(now time.Time) []object.Object {
	tomorrow := now.Add(24 * time.Hour)
	return []object.Object{
		{
			ID:                  "seed-task-1",
			Type:                object.TypeTask,
			Title:               "Draft automation brief",
			Body:                "Outline triggers for capture, organize, and review flows.",
			AreaID:              strptr("work"),
			ProjectID:           strptr("core-workflow"),
			Status:              object.StatusNext,
			PriorityScore:       82,
			EnergyLevel:         object.EnergyMedium,
			EstimatedEffortMins: intptr(45),
			DueAt:               &tomorrow,
			CapturedAt:          now,
			Tags:                []string{"automation", "design"},
			NextAction:          "Draft blueprint doc",
			ReviewCadence:       object.CadenceDaily,
		},
		{
			ID:                  "seed-note-1",
			Type:                object.TypeNote,
			Title:               "Weekly sync highlights",
			Body:                "Focus on the MVP and the sync connector.",
			AreaID:              strptr("work"),
			ProjectID:           strptr("core-workflow"),
			Status:              object.StatusActive,
			PriorityScore:       55,
			EnergyLevel:         object.EnergyLow,
			EstimatedEffortMins: intptr(15),
			CapturedAt:          now,
			Tags:                []string{"meeting"},
			NextAction:          "Link to tasks",
			ReviewCadence:       object.CadenceWeekly,
		},
		{
			ID:                  "seed-idea-1",
			Type:                object.TypeIdea,
			Title:               "Meeting brief templates",
			Body:                "Auto-generate meeting briefs from captured notes.",
			AreaID:              strptr("work"),
			ProjectID:           strptr("thought-leadership"),
			Status:              object.StatusInbox,
			PriorityScore:       40,
			EnergyLevel:         object.EnergyLow,
			EstimatedEffortMins: intptr(20),
			CapturedAt:          now,
			Tags:                []string{"ai", "template"},
			NextAction:          "Brainstorm outline",
			ReviewCadence:       object.CadenceWeekly,
		},
	}
}
