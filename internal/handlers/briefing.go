package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/briefing"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/store"
)

// BriefingHandler generates market briefings for the selected tickers.
type BriefingHandler struct {
	logger      *common.Logger
	service     *briefing.Service
	watchlist   *store.WatchlistStore
	credentials *store.CredentialStore
	busy        atomic.Bool
}

// NewBriefingHandler creates a new briefing handler.
func NewBriefingHandler(logger *common.Logger, service *briefing.Service, watchlist *store.WatchlistStore, credentials *store.CredentialStore) *BriefingHandler {
	return &BriefingHandler{
		logger:      logger,
		service:     service,
		watchlist:   watchlist,
		credentials: credentials,
	}
}

// ServeHTTP handles POST /api/briefings. Only one generation runs at a
// time; overlapping requests are rejected rather than queued.
func (h *BriefingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	if !h.busy.CompareAndSwap(false, true) {
		WriteError(w, http.StatusConflict, "a briefing generation is already running")
		return
	}
	defer h.busy.Store(false)

	var req struct {
		Language string   `json:"language"`
		Tickers  []string `json:"tickers"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	tickers := req.Tickers
	if len(tickers) == 0 {
		tickers = h.watchlist.Selected()
	}
	lang := models.ParseLanguage(req.Language)
	creds := h.credentials.Get(r.Context())

	reports, err := h.service.Generate(r.Context(), tickers, lang, creds)
	if err != nil {
		if errors.Is(err, briefing.ErrValidation) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Str("error", err.Error()).Msg("Briefing generation failed")
		WriteError(w, http.StatusBadGateway, "briefing generation failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"language": string(lang),
		"reports":  reports,
	})
}
