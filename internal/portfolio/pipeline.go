package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/ai"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
)

var (
	// ErrValidation marks requests rejected before any upstream call.
	ErrValidation = errors.New("validation failed")
	// ErrNoHoldings is returned when extraction finds no positions at all.
	ErrNoHoldings = errors.New("no holdings recognized in the uploaded images")
)

const auditTemperature = 0.1

// tickerFallback pulls bare uppercase tokens out of unparseable OCR text.
var tickerFallback = regexp.MustCompile(`\b[A-Z]{2,5}\b`)

// Result is the outcome of a full two-stage analysis run.
type Result struct {
	Positions []models.Position `json:"positions"`
	Degraded  bool              `json:"degraded"`
	Report    string            `json:"report"`
}

// Pipeline runs screenshot extraction followed by a holdings audit.
type Pipeline struct {
	vision ai.VisionClient
	chat   ai.ChatClient
	logger *common.Logger
	now    func() time.Time
}

func NewPipeline(vision ai.VisionClient, chat ai.ChatClient, logger *common.Logger) *Pipeline {
	return &Pipeline{
		vision: vision,
		chat:   chat,
		logger: logger,
		now:    time.Now,
	}
}

// Analyze extracts positions from the uploaded screenshots and audits them
// against live prices. Both stages must succeed; stage B is only attempted
// once at least one position has been recognized.
func (p *Pipeline) Analyze(ctx context.Context, images []ai.InlineImage, creds models.Credentials) (*Result, error) {
	if creds.VisionAPIKey == "" || creds.ChatAPIKey == "" {
		return nil, fmt.Errorf("%w: both API keys are required", ErrValidation)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", ErrValidation)
	}

	raw, err := p.vision.Extract(ctx, ai.VisionRequest{
		APIKey: creds.VisionAPIKey,
		Prompt: extractionPrompt,
		Images: images,
	})
	if err != nil {
		p.logger.Warn().Str("error", err.Error()).Msg("Portfolio extraction failed")
		return nil, fmt.Errorf("extracting positions: %w", err)
	}

	positions, degraded := parsePositions(raw)
	if len(positions) == 0 {
		return nil, ErrNoHoldings
	}
	p.logger.Info().
		Int("positions", len(positions)).
		Str("degraded", strconv.FormatBool(degraded)).
		Msg("Recognized portfolio positions")

	report, err := p.chat.Complete(ctx, ai.ChatRequest{
		APIKey:      creds.ChatAPIKey,
		System:      auditSystemPrompt,
		User:        auditPrompt(positions, easternTime(p.now())),
		Temperature: auditTemperature,
	})
	if err != nil {
		p.logger.Warn().Str("error", err.Error()).Msg("Holdings audit failed")
		return nil, fmt.Errorf("auditing holdings: %w", err)
	}

	return &Result{Positions: positions, Degraded: degraded, Report: report}, nil
}

// parsePositions decodes the extraction output. When the structured JSON
// array cannot be recovered it falls back to scanning for bare tickers,
// reporting the result as degraded.
func parsePositions(raw string) ([]models.Position, bool) {
	text := ai.StripFences(raw)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end > start {
		var positions []models.Position
		if err := json.Unmarshal([]byte(text[start:end+1]), &positions); err == nil {
			kept := positions[:0]
			for _, p := range positions {
				if p.Symbol != "" {
					kept = append(kept, p)
				}
			}
			return kept, false
		}
	}

	seen := make(map[string]bool)
	var positions []models.Position
	for _, symbol := range tickerFallback.FindAllString(text, -1) {
		if seen[symbol] {
			continue
		}
		seen[symbol] = true
		positions = append(positions, models.Position{Symbol: symbol, GainPct: "?"})
	}
	return positions, len(positions) > 0
}
