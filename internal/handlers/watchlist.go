package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/store"
)

// WatchlistHandler exposes the watchlist as a JSON API.
type WatchlistHandler struct {
	logger    *common.Logger
	watchlist *store.WatchlistStore
}

// NewWatchlistHandler creates a new watchlist handler.
func NewWatchlistHandler(logger *common.Logger, watchlist *store.WatchlistStore) *WatchlistHandler {
	return &WatchlistHandler{logger: logger, watchlist: watchlist}
}

func (h *WatchlistHandler) writeState(w http.ResponseWriter, statusCode int) {
	WriteJSON(w, statusCode, map[string]interface{}{
		"tickers":  h.watchlist.Tickers(),
		"selected": h.watchlist.Selected(),
	})
}

// HandleList handles GET /api/watchlist.
func (h *WatchlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, http.StatusOK)
}

// HandleAdd handles POST /api/watchlist.
func (h *WatchlistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Ticker string `json:"ticker"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !h.watchlist.Add(r.Context(), req.Ticker) {
		WriteError(w, http.StatusBadRequest, "ticker is invalid or already on the watchlist")
		return
	}

	h.writeState(w, http.StatusOK)
}

// HandleRemove handles DELETE /api/watchlist/{ticker}.
func (h *WatchlistHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if !h.watchlist.Remove(r.Context(), r.PathValue("ticker")) {
		WriteError(w, http.StatusNotFound, "ticker not on the watchlist")
		return
	}

	h.writeState(w, http.StatusOK)
}

// HandleToggle handles POST /api/watchlist/{ticker}/toggle.
func (h *WatchlistHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	if !h.watchlist.ToggleSelection(r.Context(), r.PathValue("ticker")) {
		WriteError(w, http.StatusNotFound, "ticker not on the watchlist")
		return
	}

	h.writeState(w, http.StatusOK)
}
