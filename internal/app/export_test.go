package app_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mpelle/corekeep/internal/app"
	"github.com/stretchr/testify/require"
)

func TestExportImport_RoundTrip(t *testing.T) {
	src, _ := newSession(t)
	captureTask(t, src, "survives the trip")
	_, err := src.MarkReview(context.Background(), "weekly")
	require.NoError(t, err)

	payload := src.Export()
	require.Equal(t, testNow, payload.GeneratedAt)
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	dst, _ := newSession(t)
	res, err := dst.Import(context.Background(), data)
	require.NoError(t, err)
	require.Len(t, res.Stale, 5)

	require.Equal(t, payload.Objects, dst.Export().Objects)
	require.Equal(t, payload.ReviewLog, dst.Export().ReviewLog)
}

func TestImport_RejectsWithoutMutation(t *testing.T) {
	s, _ := newSession(t)
	before := s.Export()

	cases := []string{
		`not json`,
		`{"reviewLog":{}}`,
		`{"objects":[{"id":"x","type":"journal","title":"bad type"}]}`,
		`{"objects":[{"id":"x","type":"task","title":"","status":"inbox"}]}`,
		`{"objects":[{"type":"task","title":"no id","status":"inbox"}]}`,
		`{"objects":[{"id":"x","type":"task","title":"bad score","status":"inbox","energyLevel":"medium","reviewCadence":"daily","priorityScore":5}]}`,
	}
	for _, raw := range cases {
		_, err := s.Import(context.Background(), []byte(raw))
		require.ErrorIs(t, err, app.ErrBadImport, raw)
	}
	require.Equal(t, before.Objects, s.Export().Objects)
	require.Equal(t, before.ReviewLog, s.Export().ReviewLog)
}

func TestImport_EmptyObjectsArrayIsValid(t *testing.T) {
	s, _ := newSession(t)

	res, err := s.Import(context.Background(), []byte(`{"objects":[]}`))
	require.NoError(t, err)
	require.Empty(t, res.Warning)
	require.Empty(t, s.Export().Objects)
	require.Empty(t, s.InboxView())
}

func TestImport_MissingReviewLogKeepsExisting(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.MarkReview(context.Background(), "daily")
	require.NoError(t, err)

	_, err = s.Import(context.Background(), []byte(`{"objects":[]}`))
	require.NoError(t, err)
	require.NotNil(t, s.Export().ReviewLog.Daily)
}
