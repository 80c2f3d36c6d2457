package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// UI page routes (HTML templates)
	mux.Handle("/", s.app.DashboardHandler)
	mux.Handle("/portfolio", s.app.PortfolioPageHandler)
	mux.HandleFunc("GET /settings", s.app.SettingsHandler.HandleSettings)
	mux.HandleFunc("POST /settings", s.app.SettingsHandler.HandleSaveSettings)

	// MCP endpoint (JSON-RPC over HTTP)
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	// API routes
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)

	mux.HandleFunc("/api/watchlist", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, s.app.WatchlistHandler.HandleList, s.app.WatchlistHandler.HandleAdd)
	})
	mux.HandleFunc("/api/watchlist/{ticker}", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceItem(w, r, nil, nil, s.app.WatchlistHandler.HandleRemove)
	})
	mux.HandleFunc("/api/watchlist/{ticker}/toggle", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"POST": s.app.WatchlistHandler.HandleToggle})
	})

	mux.Handle("/api/briefings", s.app.BriefingHandler)
	mux.Handle("/api/portfolio/analyze", s.app.PortfolioHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
