package mcp

import (
	"context"
	"log/slog"

	"github.com/mpelle/corekeep/internal/app"
	"github.com/mpelle/corekeep/internal/domain/catalog"
	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/view"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SessionService is the slice of the application session the tool layer
// depends on.
type SessionService interface {
	Capture(ctx context.Context, req app.CaptureRequest) (app.Result, error)
	Edit(ctx context.Context, id string, req app.EditRequest) (app.Result, error)
	Assign(ctx context.Context, id, projectID string) (app.Result, error)
	Snooze(ctx context.Context, id, date string) (app.Result, error)
	MarkComplete(ctx context.Context, id string) (app.Result, error)
	UpdateStatus(ctx context.Context, id string, status object.Status) (app.Result, error)
	Archive(ctx context.Context, id string) (app.Result, error)
	Restore(ctx context.Context, id string) (app.Result, error)
	PermanentDelete(ctx context.Context, id string) (app.Result, error)
	MarkReview(ctx context.Context, kind string) (app.Result, error)

	PickFocus() (app.Result, error)
	SetFocus(id string) (app.Result, error)
	CompleteFocus(ctx context.Context) (app.Result, error)
	ClearFocus() app.Result

	InboxView() []object.Object
	OrganizedView() []object.Object
	ArchivedView() []object.Object
	ReviewView() app.ReviewDigest
	EngageView() app.EngageSnapshot
	ProjectCounts() []view.ProjectCount

	Filters() view.Filters
	SetFilters(f view.Filters) []app.View
	Search(query string) []app.View

	Export() app.ExportPayload
	Import(ctx context.Context, data []byte) (app.Result, error)
	Catalog() catalog.Catalog
}

// Config contains server configuration.
type Config struct {
	Session SessionService
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools, docs, and
// middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "corekeep",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Session)

	return server
}
