package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/interfaces"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
)

const (
	watchlistName = "pplx_watchlist"
	selectionName = "pplx_selection"
)

// DefaultTickers seeds the watchlist when storage is empty or corrupt.
var DefaultTickers = []string{"NVDA", "TSLA", "PLTR", "AMD", "ORCL", "AVGO", "PYPL", "SPY"}

// DefaultSelection is the initial selection set.
var DefaultSelection = []string{"NVDA"}

// WatchlistStore is the ordered watchlist plus its selection set.
// Invariant: the selection set is always a subset of the watchlist.
// Every mutation is persisted as JSON; persistence failures are logged
// and swallowed so a broken disk never blocks the UI.
type WatchlistStore struct {
	mu       sync.Mutex
	kv       interfaces.KeyValueStorage
	logger   *common.Logger
	tickers  []string
	selected map[string]bool
}

// NewWatchlistStore loads the watchlist and selection from storage,
// falling back to the defaults when stored JSON is missing or malformed.
func NewWatchlistStore(kv interfaces.KeyValueStorage, logger *common.Logger) *WatchlistStore {
	s := &WatchlistStore{
		kv:       kv,
		logger:   logger,
		selected: make(map[string]bool),
	}
	s.load(context.Background())
	return s
}

func (s *WatchlistStore) load(ctx context.Context) {
	s.tickers = append([]string(nil), DefaultTickers...)
	if raw, err := s.kv.Get(ctx, watchlistName); err == nil {
		var stored []string
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			s.logger.Warn().Str("error", err.Error()).Msg("stored watchlist is malformed, using defaults")
		} else if len(stored) > 0 {
			s.tickers = stored
		}
	}

	selection := DefaultSelection
	if raw, err := s.kv.Get(ctx, selectionName); err == nil {
		var stored []string
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			s.logger.Warn().Str("error", err.Error()).Msg("stored selection is malformed, using defaults")
		} else {
			selection = stored
		}
	}

	// Keep the subset invariant against whatever was loaded.
	s.selected = make(map[string]bool)
	for _, t := range selection {
		if s.contains(t) {
			s.selected[t] = true
		}
	}
}

// Tickers returns the watchlist in display order.
func (s *WatchlistStore) Tickers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tickers...)
}

// Selected returns the selected tickers in watchlist order.
func (s *WatchlistStore) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *WatchlistStore) selectedLocked() []string {
	out := make([]string, 0, len(s.selected))
	for _, t := range s.tickers {
		if s.selected[t] {
			out = append(out, t)
		}
	}
	return out
}

// Add appends a normalized ticker to the end of the watchlist.
// Empty, invalid, or already-present symbols are a no-op.
func (s *WatchlistStore) Add(ctx context.Context, ticker string) bool {
	t := models.NormalizeTicker(ticker)
	if !models.ValidTicker(t) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(t) {
		return false
	}
	s.tickers = append(s.tickers, t)
	s.persist(ctx)
	return true
}

// Remove drops a ticker from the watchlist and the selection set in
// one logical update.
func (s *WatchlistStore) Remove(ctx context.Context, ticker string) bool {
	t := models.NormalizeTicker(ticker)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.tickers {
		if existing == t {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	s.tickers = append(s.tickers[:idx], s.tickers[idx+1:]...)
	delete(s.selected, t)
	s.persist(ctx)
	return true
}

// ToggleSelection flips a ticker's membership in the selection set.
// Tickers not on the watchlist cannot be selected; toggling one
// returns false and changes nothing.
func (s *WatchlistStore) ToggleSelection(ctx context.Context, ticker string) bool {
	t := models.NormalizeTicker(ticker)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.contains(t) {
		return false
	}
	if s.selected[t] {
		delete(s.selected, t)
	} else {
		s.selected[t] = true
	}
	s.persist(ctx)
	return true
}

func (s *WatchlistStore) contains(t string) bool {
	for _, existing := range s.tickers {
		if existing == t {
			return true
		}
	}
	return false
}

// persist writes both lists, best-effort. Callers hold the lock.
func (s *WatchlistStore) persist(ctx context.Context) {
	if data, err := json.Marshal(s.tickers); err == nil {
		if err := s.kv.Set(ctx, watchlistName, string(data)); err != nil {
			s.logger.Warn().Str("error", err.Error()).Msg("failed to persist watchlist")
		}
	}
	if data, err := json.Marshal(s.selectedLocked()); err == nil {
		if err := s.kv.Set(ctx, selectionName, string(data)); err != nil {
			s.logger.Warn().Str("error", err.Error()).Msg("failed to persist selection")
		}
	}
}
