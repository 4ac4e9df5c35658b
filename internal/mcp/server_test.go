package mcp_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mpelle/corekeep/internal/app"
	"github.com/mpelle/corekeep/internal/domain/catalog"
	"github.com/mpelle/corekeep/internal/mcp"
	"github.com/mpelle/corekeep/internal/storage"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)

func newClientSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	session := app.NewSession(storage.NewMemory(), catalog.Fallback(), logger,
		app.WithClock(func() time.Time { return testNow }))
	session.Load(ctx)

	server := mcp.NewServer(mcp.Config{Session: session, Logger: logger})

	serverSide, clientSide := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverSide, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	clientSession, err := client.Connect(ctx, clientSide, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientSession.Close() })
	return clientSession
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	return result
}

func resultText(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()
	for _, content := range result.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}

func TestListTools(t *testing.T) {
	session := newClientSession(t)

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, name := range []string{
		"capture", "edit_object", "assign_project", "snooze",
		"mark_complete", "update_status", "archive", "restore", "permanent_delete",
		"get_inbox", "get_organized", "get_archived", "set_filter", "search",
		"get_review_digest", "mark_review",
		"get_engage", "pick_focus", "set_focus", "complete_focus", "clear_focus",
		"export_data", "import_data", "get_catalog",
	} {
		require.True(t, names[name], "missing tool %s", name)
	}
}

func TestCaptureAndInboxRoundTrip(t *testing.T) {
	session := newClientSession(t)

	result := callTool(t, session, "capture", map[string]any{
		"title": "Ping the accountant",
		"type":  "task",
		"tags":  []string{"email"},
	})
	require.False(t, result.IsError, "capture failed: %s", resultText(t, result))

	var captured struct {
		Object struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"object"`
		Stale []string `json:"stale"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &captured))
	require.NotEmpty(t, captured.Object.ID)
	require.Equal(t, "inbox", captured.Object.Status)
	require.Contains(t, captured.Stale, "inbox")

	inbox := callTool(t, session, "get_inbox", nil)
	require.False(t, inbox.IsError)
	require.Contains(t, resultText(t, inbox), captured.Object.ID)
}

func TestCaptureValidationSurfacesToolError(t *testing.T) {
	session := newClientSession(t)

	result := callTool(t, session, "capture", map[string]any{
		"title": "   ",
		"type":  "task",
	})
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "title")
}

func TestAssignUnknownProjectCode(t *testing.T) {
	session := newClientSession(t)

	result := callTool(t, session, "assign_project", map[string]any{
		"id":         "seed-idea-1",
		"project_id": "no-such-project",
	})
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "UNKNOWN_PROJECT")
}

func TestPermanentDeleteRequiresArchive(t *testing.T) {
	session := newClientSession(t)

	result := callTool(t, session, "permanent_delete", map[string]any{"id": "seed-idea-1"})
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "NOT_ARCHIVED")

	result = callTool(t, session, "archive", map[string]any{"id": "seed-idea-1"})
	require.False(t, result.IsError, resultText(t, result))
	result = callTool(t, session, "permanent_delete", map[string]any{"id": "seed-idea-1"})
	require.False(t, result.IsError, resultText(t, result))

	archived := callTool(t, session, "get_archived", nil)
	require.NotContains(t, resultText(t, archived), "seed-idea-1")
}

func TestReviewAndEngageFlow(t *testing.T) {
	session := newClientSession(t)

	digest := callTool(t, session, "get_review_digest", nil)
	require.False(t, digest.IsError)
	require.Contains(t, resultText(t, digest), "topFocus")

	marked := callTool(t, session, "mark_review", map[string]any{"kind": "daily"})
	require.False(t, marked.IsError)

	bad := callTool(t, session, "mark_review", map[string]any{"kind": "monthly"})
	require.True(t, bad.IsError)
	require.Contains(t, resultText(t, bad), "VALIDATION_ERROR")

	// The seed task is due tomorrow, so the today set starts empty.
	pick := callTool(t, session, "pick_focus", nil)
	require.True(t, pick.IsError)
	require.Contains(t, resultText(t, pick), "NOTHING_DUE")

	set := callTool(t, session, "set_focus", map[string]any{"id": "seed-task-1"})
	require.False(t, set.IsError, resultText(t, set))

	done := callTool(t, session, "complete_focus", nil)
	require.False(t, done.IsError, resultText(t, done))
	require.Contains(t, resultText(t, done), `"status":"done"`)
}

func TestExportImportTools(t *testing.T) {
	session := newClientSession(t)

	exported := callTool(t, session, "export_data", nil)
	require.False(t, exported.IsError)
	envelope := resultText(t, exported)
	require.Contains(t, envelope, "generatedAt")

	imported := callTool(t, session, "import_data", map[string]any{"data": envelope})
	require.False(t, imported.IsError, resultText(t, imported))
	require.Contains(t, resultText(t, imported), `"imported":3`)

	bad := callTool(t, session, "import_data", map[string]any{"data": `{"reviewLog":{}}`})
	require.True(t, bad.IsError)
	require.Contains(t, resultText(t, bad), "BAD_IMPORT")
}

func TestDocResourcesReadable(t *testing.T) {
	session := newClientSession(t)

	resources, err := session.ListResources(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, resources.Resources)

	doc, err := session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{
		URI: "corekeep://docs/priority",
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc.Contents)
	require.Contains(t, doc.Contents[0].Text, "Priority scoring")
}
