package object_test

import (
	"testing"
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	require.NoError(t, object.ValidateTitle("Draft brief"))
	require.ErrorIs(t, object.ValidateTitle(""), object.ErrMissingTitle)
	require.ErrorIs(t, object.ValidateTitle("   "), object.ErrMissingTitle)
}

func TestValidateEffort(t *testing.T) {
	for _, tc := range []struct {
		effort int
		err    error
	}{
		{1, nil},
		{480, nil},
		{0, object.ErrEffortOutOfRange},
		{481, object.ErrEffortOutOfRange},
		{-5, object.ErrEffortOutOfRange},
	} {
		e := tc.effort
		require.ErrorIs(t, object.ValidateEffort(&e), tc.err, "effort %d", tc.effort)
	}
	require.NoError(t, object.ValidateEffort(nil))
}

func TestValidateDue(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	yesterday := now.Add(-24 * time.Hour)
	require.ErrorIs(t, object.ValidateDue(&yesterday, now), object.ErrDueInPast)

	// Earlier today is still "today" under date-only comparison.
	earlierToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, object.ValidateDue(&earlierToday, now))

	tomorrow := now.Add(24 * time.Hour)
	require.NoError(t, object.ValidateDue(&tomorrow, now))
	require.NoError(t, object.ValidateDue(nil, now))
}

func TestPatchApply(t *testing.T) {
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	obj := object.Object{Title: "before", Status: object.StatusInbox, DueAt: &due}

	title := "after"
	status := object.StatusNext
	var clearedDue *time.Time
	patch := object.Patch{
		Title:  &title,
		Status: &status,
		DueAt:  &clearedDue,
	}
	require.True(t, patch.TouchesPriorityInputs())

	patch.Apply(&obj)
	require.Equal(t, "after", obj.Title)
	require.Equal(t, object.StatusNext, obj.Status)
	require.Nil(t, obj.DueAt)
}

func TestPatch_TouchesPriorityInputs(t *testing.T) {
	body := "notes"
	require.False(t, object.Patch{Body: &body}.TouchesPriorityInputs())

	effort := 10
	e := &effort
	require.True(t, object.Patch{EstimatedEffortMins: &e}.TouchesPriorityInputs())
}

func TestSplitTags(t *testing.T) {
	require.Equal(t, []string{"ai", "template"}, object.SplitTags(" ai, template ,"))
	require.Empty(t, object.SplitTags("  "))
}

func TestDefaultCadence(t *testing.T) {
	require.Equal(t, object.CadenceDaily, object.DefaultCadence(object.TypeTask))
	require.Equal(t, object.CadenceWeekly, object.DefaultCadence(object.TypeNote))
	require.Equal(t, object.CadenceWeekly, object.DefaultCadence(object.TypeMedia))
}
