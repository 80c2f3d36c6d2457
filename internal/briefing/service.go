// Package briefing turns the selected watchlist tickers into
// AI-generated market reports, one chat-completion call per ticker.
package briefing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/ai"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
)

// ErrValidation marks precondition failures surfaced before any
// network call is made.
var ErrValidation = errors.New("validation failed")

// briefingTemperature nudges the model to write more while staying
// grounded.
const briefingTemperature = 0.3

// Service generates briefings via a chat-completion client.
type Service struct {
	chat   ai.ChatClient
	logger *common.Logger
	now    func() time.Time
}

// NewService creates a briefing service.
func NewService(chat ai.ChatClient, logger *common.Logger) *Service {
	return &Service{
		chat:   chat,
		logger: logger,
		now:    time.Now,
	}
}

// Generate produces one report per ticker, fan-out/fan-in: every
// ticker is requested concurrently and independently, and the result
// map is returned only after all calls settle. A failed ticker yields
// an error placeholder report and never affects its siblings. There is
// no defined completion order. The map is keyed by the requested
// ticker, so callers always find every ticker they asked for.
func (s *Service) Generate(ctx context.Context, tickers []string, lang models.Language, creds models.Credentials) (map[string]models.BriefingReport, error) {
	if creds.ChatAPIKey == "" {
		return nil, fmt.Errorf("%w: chat API key is not configured", ErrValidation)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("%w: no tickers selected", ErrValidation)
	}

	estNow := easternTime(s.now())
	system := systemPrompt(lang, estNow)

	reports := make([]models.BriefingReport, len(tickers))
	var wg sync.WaitGroup
	for i, ticker := range tickers {
		wg.Add(1)
		go func(i int, ticker string) {
			defer wg.Done()
			reports[i] = s.briefOne(ctx, ticker, system, lang, estNow, creds)
		}(i, ticker)
	}
	wg.Wait()

	out := make(map[string]models.BriefingReport, len(tickers))
	for i, ticker := range tickers {
		out[ticker] = reports[i]
	}
	return out, nil
}

// briefOne issues one chat-completion call and parses the response.
// HTTP failure and parse failure are treated identically: a per-ticker
// error report, never an aborted run.
func (s *Service) briefOne(ctx context.Context, ticker, system string, lang models.Language, estNow string, creds models.Credentials) models.BriefingReport {
	content, err := s.chat.Complete(ctx, ai.ChatRequest{
		APIKey:      creds.ChatAPIKey,
		System:      system,
		User:        userPrompt(lang, ticker, estNow),
		Temperature: briefingTemperature,
	})
	if err != nil {
		s.logger.Warn().Str("ticker", ticker).Str("error", err.Error()).Msg("briefing call failed")
		return errorReport(ticker, lang)
	}

	var report models.BriefingReport
	if err := json.Unmarshal([]byte(ai.StripFences(content)), &report); err != nil {
		s.logger.Warn().Str("ticker", ticker).Str("error", err.Error()).Msg("briefing response is not valid JSON")
		return errorReport(ticker, lang)
	}

	if report.Symbol == "" {
		report.Symbol = ticker
	}
	return report
}

func errorReport(ticker string, lang models.Language) models.BriefingReport {
	return models.BriefingReport{
		Symbol: ticker,
		Error:  tickerErrorMessage(lang),
	}
}
