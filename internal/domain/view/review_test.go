package view_test

import (
	"context"
	"testing"
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/store"
	"github.com/stretchr/testify/require"
)

func TestDailyDigest_TopFocusOrderingAndCap(t *testing.T) {
	// Dated tasks sort by soonest due; undated ones follow, by priority.
	late := dueOn(obj("late", object.TypeTask, object.StatusNext), "2025-01-20")
	soon := dueOn(obj("soon", object.TypeTask, object.StatusActive), "2025-01-11")
	undatedHigh := obj("undated-high", object.TypeTask, object.StatusInbox)
	undatedHigh.PriorityScore = 90
	undatedLow := obj("undated-low", object.TypeTask, object.StatusNext)
	undatedLow.PriorityScore = 40
	doneTask := dueOn(obj("done", object.TypeTask, object.StatusDone), "2025-01-09")
	note := obj("note", object.TypeNote, object.StatusActive)

	eng, _ := newEngine(t, []object.Object{late, soon, undatedHigh, undatedLow, doneTask, note})
	digest := eng.DailyDigest()

	require.Equal(t, []string{"soon", "late", "undated-high"}, ids(digest.TopFocus))
}

func TestDailyDigest_QuickWins(t *testing.T) {
	quick := obj("quick", object.TypeTask, object.StatusNext)
	quick.EstimatedEffortMins = intptr(5)
	slow := obj("slow", object.TypeTask, object.StatusNext)
	slow.EstimatedEffortMins = intptr(30)
	unestimated := obj("unestimated", object.TypeTask, object.StatusNext)

	eng, _ := newEngine(t, []object.Object{quick, slow, unestimated})
	digest := eng.DailyDigest()

	require.Equal(t, []string{"quick"}, ids(digest.QuickWins))
}

func TestDailyDigest_OverdueIsDateOnlyAndSkipsDone(t *testing.T) {
	yesterday := dueOn(obj("yesterday", object.TypeTask, object.StatusNext), "2025-01-09")
	// Due earlier today: not overdue under date-only comparison.
	earlierToday := obj("today", object.TypeTask, object.StatusNext)
	morning := time.Date(2025, 1, 10, 6, 0, 0, 0, time.UTC)
	earlierToday.DueAt = &morning
	doneLate := dueOn(obj("done-late", object.TypeTask, object.StatusDone), "2025-01-02")

	eng, _ := newEngine(t, []object.Object{yesterday, earlierToday, doneLate})
	digest := eng.DailyDigest()

	require.Equal(t, []string{"yesterday"}, ids(digest.Overdue))
}

func TestDailyDigest_CarriesRitualStamp(t *testing.T) {
	eng, st := newEngine(t, nil)
	require.Nil(t, st.MarkReview(context.Background(), store.ReviewDaily))

	digest := eng.DailyDigest()
	require.NotNil(t, digest.CompletedAt)
	require.True(t, digest.CompletedAt.Equal(testNow))
}

func TestWeeklyDigest_InboxTriage(t *testing.T) {
	eng, _ := newEngine(t, []object.Object{
		obj("triage-me", object.TypeIdea, object.StatusInbox),
		obj("sorted", object.TypeTask, object.StatusNext),
	})

	digest := eng.WeeklyDigest()
	require.Equal(t, []string{"triage-me"}, ids(digest.InboxTriage))
}

func TestWeeklyDigest_ProjectProgress(t *testing.T) {
	mk := func(id string, status object.Status) object.Object {
		o := obj(id, object.TypeTask, status)
		o.ProjectID = strptr("core-workflow")
		return o
	}
	eng, _ := newEngine(t, []object.Object{
		mk("t1", object.StatusDone),
		mk("t2", object.StatusDone),
		mk("t3", object.StatusNext),
	})

	digest := eng.WeeklyDigest()
	byID := map[string]int{}
	for _, p := range digest.ProjectProgress {
		byID[p.ProjectID] = p.Pct
	}
	// 2/3 done rounds to 67; projects without tasks report 0, not NaN.
	require.Equal(t, 67, byID["core-workflow"])
	require.Equal(t, 0, byID["habit-tune-up"])
	require.Equal(t, 0, byID["thought-leadership"])
}

func TestWeeklyDigest_IgnoresNonTaskObjects(t *testing.T) {
	note := obj("n", object.TypeNote, object.StatusDone)
	note.ProjectID = strptr("core-workflow")

	eng, _ := newEngine(t, []object.Object{note})
	digest := eng.WeeklyDigest()
	for _, p := range digest.ProjectProgress {
		require.Equal(t, 0, p.Pct)
	}
}
