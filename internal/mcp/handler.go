package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/briefing"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/config"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/store"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler registers the watchlist and briefing tools on an MCP server.
func NewHandler(logger *common.Logger, service *briefing.Service, watchlist *store.WatchlistStore, credentials *store.CredentialStore) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"stock-news-analyst",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(VersionTool(), VersionToolHandler())
	mcpSrv.AddTool(WatchlistTool(), WatchlistToolHandler(watchlist))
	mcpSrv.AddTool(AddTickerTool(), AddTickerToolHandler(watchlist))
	mcpSrv.AddTool(RemoveTickerTool(), RemoveTickerToolHandler(watchlist))
	mcpSrv.AddTool(BriefingTool(), BriefingToolHandler(service, watchlist, credentials))

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		logger:     logger,
	}
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
