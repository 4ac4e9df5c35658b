package view_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/stretchr/testify/require"
)

func TestTodaySet_ExclusionsAndOrdering(t *testing.T) {
	dueToday := dueOn(obj("due-today", object.TypeTask, object.StatusNext), "2025-01-10")
	dueToday.PriorityScore = 60
	overdue := dueOn(obj("overdue", object.TypeTask, object.StatusActive), "2025-01-05")
	overdue.PriorityScore = 80
	tomorrow := dueOn(obj("tomorrow", object.TypeTask, object.StatusNext), "2025-01-11")
	undated := obj("undated", object.TypeTask, object.StatusNext)
	doneID := dueOn(obj("done", object.TypeTask, object.StatusDone), "2025-01-05")
	archived := dueOn(obj("archived", object.TypeTask, object.StatusArchived), "2025-01-05")

	eng, _ := newEngine(t, []object.Object{dueToday, overdue, tomorrow, undated, doneID, archived})

	require.Equal(t, []string{"overdue", "due-today"}, ids(eng.TodaySet()))
}

func TestTodaySet_DateOnlyComparison(t *testing.T) {
	// Due late tonight still counts as today.
	tonight := obj("tonight", object.TypeTask, object.StatusNext)
	lateDue := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
	tonight.DueAt = &lateDue

	eng, _ := newEngine(t, []object.Object{tonight})
	require.Equal(t, []string{"tonight"}, ids(eng.TodaySet()))
}

func TestUpNext_CapsAtFive(t *testing.T) {
	var objects []object.Object
	for i := 0; i < 8; i++ {
		o := dueOn(obj(fmt.Sprintf("t%d", i), object.TypeTask, object.StatusNext), "2025-01-10")
		o.PriorityScore = 100 - i
		objects = append(objects, o)
	}

	eng, _ := newEngine(t, objects)
	next := eng.UpNext()
	require.Len(t, next, 5)
	require.Equal(t, []string{"t0", "t1", "t2", "t3", "t4"}, ids(next))
}

func TestCompletedToday(t *testing.T) {
	todayStamp := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	yesterdayStamp := time.Date(2025, 1, 9, 22, 0, 0, 0, time.UTC)

	doneToday := obj("done-today", object.TypeTask, object.StatusDone)
	doneToday.CompletedAt = &todayStamp
	doneYesterday := obj("done-yesterday", object.TypeTask, object.StatusDone)
	doneYesterday.CompletedAt = &yesterdayStamp
	// No completion stamp: falls back to capture date, which is today.
	unstamped := obj("unstamped", object.TypeNote, object.StatusDone)
	open := obj("open", object.TypeTask, object.StatusNext)

	eng, _ := newEngine(t, []object.Object{doneToday, doneYesterday, unstamped, open})

	require.ElementsMatch(t, []string{"done-today", "unstamped"}, ids(eng.CompletedToday()))
}
