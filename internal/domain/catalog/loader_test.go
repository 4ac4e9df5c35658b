package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mpelle/corekeep/internal/domain/catalog"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
  "areas": [
    {
      "id": "work",
      "name": "Work and Career",
      "cadence": "weekly",
      "keywords": ["clients"],
      "projects": [
        {"id": "core-workflow", "name": "C.O.R.E. System Build", "goal": "Ship MVP", "deadline": "2024-12-31"}
      ],
      "resources": [{"id": "templates", "name": "Templates"}]
    }
  ]
}`

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "para.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	res := catalog.Load(context.Background(), catalog.FileSource{Path: path})
	require.False(t, res.Fallback)
	require.NoError(t, res.Err)
	require.Len(t, res.Catalog.Areas, 1)
	require.Equal(t, "Work and Career", res.Catalog.AreaName("work"))
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	res := catalog.Load(context.Background(), catalog.FileSource{Path: "/nonexistent/para.json"})
	require.True(t, res.Fallback)
	require.Error(t, res.Err)
	require.Len(t, res.Catalog.Areas, 2)
	require.Equal(t, "Personal Optimization", res.Catalog.Areas[0].Name)
	require.Equal(t, "Work and Career", res.Catalog.Areas[1].Name)
}

func TestLoad_MalformedPayloadFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "para.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	res := catalog.Load(context.Background(), catalog.FileSource{Path: path})
	require.True(t, res.Fallback)
	require.Error(t, res.Err)
	require.NotEmpty(t, res.Catalog.Areas)
}

func TestLoad_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	res := catalog.Load(context.Background(), catalog.HTTPSource{URL: srv.URL, Client: srv.Client()})
	require.False(t, res.Fallback)
	require.Equal(t, "core-workflow", res.Catalog.Projects()[0].ID)
}

func TestLoad_HTTPErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res := catalog.Load(context.Background(), catalog.HTTPSource{URL: srv.URL, Client: srv.Client()})
	require.True(t, res.Fallback)
	require.Error(t, res.Err)
}

type failingSource struct{}

func (failingSource) Fetch(context.Context) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestLoad_NilAndFailingSources(t *testing.T) {
	res := catalog.Load(context.Background(), nil)
	require.True(t, res.Fallback)
	require.NoError(t, res.Err)

	res = catalog.Load(context.Background(), failingSource{})
	require.True(t, res.Fallback)
	require.Error(t, res.Err)
}

func TestCatalogLookups(t *testing.T) {
	cat := catalog.Fallback()

	require.Equal(t, "C.O.R.E. System Build", cat.ProjectName("core-workflow"))
	require.Empty(t, cat.ProjectName("nope"))

	proj := cat.FindProject("habit-tune-up")
	require.NotNil(t, proj)
	require.Equal(t, "Habit Tune-Up", proj.Name)
	require.Nil(t, cat.FindProject("nope"))

	area := cat.AreaForProject("thought-leadership")
	require.NotNil(t, area)
	require.Equal(t, "work", area.ID)
	require.Nil(t, cat.AreaForProject("nope"))

	require.Len(t, cat.Projects(), 3)
}
