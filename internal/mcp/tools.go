package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/briefing"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/config"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/store"
)

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func textResult(v interface{}) *mcp.CallToolResult {
	out, err := json.Marshal(v)
	if err != nil {
		return errorResult("failed to marshal result")
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
	}
}

func watchlistState(watchlist *store.WatchlistStore) map[string]interface{} {
	return map[string]interface{}{
		"tickers":  watchlist.Tickers(),
		"selected": watchlist.Selected(),
	}
}

// VersionTool returns the tool definition for get_version.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the analyst server version. Use this to verify connectivity."),
	)
}

func VersionToolHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(map[string]string{
			"version": config.GetVersion(),
			"build":   config.GetBuild(),
			"commit":  config.GetGitCommit(),
		}), nil
	}
}

// WatchlistTool returns the tool definition for get_watchlist.
func WatchlistTool() mcp.Tool {
	return mcp.NewTool("get_watchlist",
		mcp.WithDescription("List the tracked tickers and which of them are selected for briefings."),
	)
}

func WatchlistToolHandler(watchlist *store.WatchlistStore) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(watchlistState(watchlist)), nil
	}
}

// AddTickerTool returns the tool definition for add_ticker.
func AddTickerTool() mcp.Tool {
	return mcp.NewTool("add_ticker",
		mcp.WithDescription("Add a stock ticker to the watchlist."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Ticker symbol, e.g. NVDA"),
		),
	)
}

func AddTickerToolHandler(watchlist *store.WatchlistStore) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol := r.GetString("symbol", "")
		if symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}
		if !watchlist.Add(ctx, symbol) {
			return errorResult(fmt.Sprintf("Error: %s is invalid or already on the watchlist", symbol)), nil
		}
		return textResult(watchlistState(watchlist)), nil
	}
}

// RemoveTickerTool returns the tool definition for remove_ticker.
func RemoveTickerTool() mcp.Tool {
	return mcp.NewTool("remove_ticker",
		mcp.WithDescription("Remove a stock ticker from the watchlist."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Ticker symbol, e.g. NVDA"),
		),
	)
}

func RemoveTickerToolHandler(watchlist *store.WatchlistStore) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol := r.GetString("symbol", "")
		if symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}
		if !watchlist.Remove(ctx, symbol) {
			return errorResult(fmt.Sprintf("Error: %s is not on the watchlist", symbol)), nil
		}
		return textResult(watchlistState(watchlist)), nil
	}
}

// BriefingTool returns the tool definition for generate_briefing.
func BriefingTool() mcp.Tool {
	return mcp.NewTool("generate_briefing",
		mcp.WithDescription("Generate market briefings for the selected watchlist tickers."),
		mcp.WithString("language",
			mcp.Description("Report language: zh (Traditional Chinese, default) or en"),
		),
	)
}

func BriefingToolHandler(service *briefing.Service, watchlist *store.WatchlistStore, credentials *store.CredentialStore) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lang := models.ParseLanguage(r.GetString("language", ""))
		creds := credentials.Get(ctx)

		reports, err := service.Generate(ctx, watchlist.Selected(), lang, creds)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(reports), nil
	}
}
