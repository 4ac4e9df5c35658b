package view

import (
	"math"
	"sort"
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
)

// DailyDigest is the ritual summary for a single day: what to do first,
// what can be knocked out quickly, and what slipped.
type DailyDigest struct {
	TopFocus    []object.Object `json:"topFocus"`
	QuickWins   []object.Object `json:"quickWins"`
	Overdue     []object.Object `json:"overdue"`
	CompletedAt *time.Time      `json:"completedAt"`
}

// WeeklyDigest is the triage backlog plus per-project completion.
type WeeklyDigest struct {
	InboxTriage     []object.Object   `json:"inboxTriage"`
	ProjectProgress []ProjectProgress `json:"projectProgress"`
	CompletedAt     *time.Time        `json:"completedAt"`
}

// ProjectProgress reports a project's task completion percentage.
type ProjectProgress struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	Pct       int    `json:"pct"`
}

const topFocusSize = 3

// DailyDigest builds the daily review digest over the task collection.
func (e *Engine) DailyDigest() DailyDigest {
	tasks := e.store.ByType(object.TypeTask)
	today := object.DateOnly(e.now())

	var focus []object.Object
	for _, task := range tasks {
		switch task.Status {
		case object.StatusInbox, object.StatusNext, object.StatusActive:
			focus = append(focus, task)
		}
	}
	// Soonest due first, dated before undated, no-date ties by priority.
	sort.SliceStable(focus, func(i, j int) bool {
		a, b := focus[i].DueAt, focus[j].DueAt
		switch {
		case a != nil && b != nil:
			return a.Before(*b)
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return focus[i].PriorityScore > focus[j].PriorityScore
		}
	})
	if len(focus) > topFocusSize {
		focus = focus[:topFocusSize]
	}

	var quickWins []object.Object
	for _, task := range tasks {
		if task.EstimatedEffortMins != nil && *task.EstimatedEffortMins <= object.QuickWinEffortMins {
			quickWins = append(quickWins, task)
		}
	}

	var overdue []object.Object
	for _, task := range tasks {
		if task.DueAt == nil || task.Status == object.StatusDone {
			continue
		}
		if object.DateOnly(*task.DueAt).Before(today) {
			overdue = append(overdue, task)
		}
	}

	return DailyDigest{
		TopFocus:    focus,
		QuickWins:   quickWins,
		Overdue:     overdue,
		CompletedAt: e.store.ReviewLog().Daily,
	}
}

// WeeklyDigest builds the weekly review digest: everything still in the
// inbox, plus completion percentage per catalog project. A project with no
// tasks reports 0% (the divisor is floored at 1).
func (e *Engine) WeeklyDigest() WeeklyDigest {
	tasks := e.store.ByType(object.TypeTask)

	var progress []ProjectProgress
	for _, proj := range e.catalog.Projects() {
		done, total := 0, 0
		for _, task := range tasks {
			if task.ProjectID == nil || *task.ProjectID != proj.ID {
				continue
			}
			total++
			if task.Status == object.StatusDone {
				done++
			}
		}
		if total == 0 {
			total = 1
		}
		pct := int(math.Round(float64(done) / float64(total) * 100))
		progress = append(progress, ProjectProgress{ProjectID: proj.ID, Name: proj.Name, Pct: pct})
	}

	return WeeklyDigest{
		InboxTriage:     e.store.Inbox(),
		ProjectProgress: progress,
		CompletedAt:     e.store.ReviewLog().Weekly,
	}
}
