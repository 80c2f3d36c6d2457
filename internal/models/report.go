package models

// BriefingReport is the structured market briefing for one ticker,
// parsed from the chat model's JSON response. When the call or the
// parse fails, Error carries a human-readable message and the other
// fields are zero.
type BriefingReport struct {
	Symbol               string `json:"symbol"`
	SentimentScore       int    `json:"sentiment_score,omitempty"`
	SupportLevelShort    string `json:"support_level_short,omitempty"`
	ResistanceLevelShort string `json:"resistance_level_short,omitempty"`
	MajorNews            string `json:"major_news,omitempty"`
	MarketFactors        string `json:"market_factors,omitempty"`
	TechnicalAnalysis    string `json:"technical_analysis_detailed,omitempty"`
	TomorrowForecast     string `json:"tomorrow_forecast,omitempty"`
	WeekAheadForecast    string `json:"week_ahead_forecast,omitempty"`
	FutureOutlook        string `json:"future_outlook,omitempty"`
	Conclusion           string `json:"conclusion,omitempty"`

	Error string `json:"error,omitempty"`
}

// Failed reports whether this report is an error placeholder.
func (r BriefingReport) Failed() bool {
	return r.Error != ""
}
