package briefing

import (
	"fmt"
	"time"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
)

// easternTime formats the current Wall Street time the prompts are
// grounded on. Falls back to UTC when tzdata is unavailable.
func easternTime(now time.Time) string {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return now.UTC().Format("01/02/2006, 15:04") + " UTC"
	}
	return now.In(loc).Format("01/02/2006, 15:04") + " EST"
}

// reportSchema is the JSON object the model must return. The field
// names are load-bearing: parsing in this package expects exactly these.
const reportSchema = `{
  "symbol": "STRING (Ticker)",
  "sentiment_score": NUMBER (1-10),
  "support_level_short": "STRING (Current levels based on latest price)",
  "resistance_level_short": "STRING",
  "major_news": "STRING (Bullet points. The most critical news from the last 24 hours)",
  "market_factors": "STRING (Detailed paragraph. Explain WHY the stock is moving NOW. Discuss valuation, sentiment, and specific catalysts. Do not summarize; analyze.)",
  "technical_analysis_detailed": "STRING (Detailed paragraph. Provide short-term support/resistance, moving averages status, volume structure, and specific candlestick patterns from today.)",
  "tomorrow_forecast": "STRING (Detailed paragraph. Predict the immediate next session's scenario with specific price ranges and drivers.)",
  "week_ahead_forecast": "STRING (Detailed paragraph. Outlook for the coming week, potential catalysts, and risk scenarios.)",
  "future_outlook": "STRING (Detailed paragraph. Mid-to-long term (3-12 mo) view, growth drivers, and structural changes.)",
  "conclusion": "STRING (Actionable summary)"
}`

// systemPrompt builds the language-specific analyst instructions
// demanding a single JSON object with the fixed report schema.
func systemPrompt(lang models.Language, estNow string) string {
	recency := fmt.Sprintf("CRITICAL: Analysis MUST be based on LATEST data (last 24 hours) relative to %s. Include pre-market/after-hours data.", estNow)

	langRule := "LANGUAGE: All text content MUST be in English."
	styleRule := "STYLE: Professional, analytical, detailed, and insightful. Avoid generic summaries."
	if lang == models.LanguageZH {
		langRule = "LANGUAGE: All text content MUST be in Traditional Chinese (繁體中文)."
		styleRule = "STYLE: Professional, analytical, detailed, and insightful. Avoid generic summaries. Use financial terminology (e.g., \"獲利回吐\", \"估值壓力\", \"震盪整理\")."
	}

	return fmt.Sprintf(`You are a professional Wall Street senior analyst creating a real-time, deep-dive briefing for sophisticated investors.

TIME CONTEXT:
Current Wall Street Time: %s.

STRICT INSTRUCTIONS:
1. %s
2. %s
3. %s
4. DEPTH: Do not be brief. Provide distinct reasons and logic for every section.
5. FORMAT: Return ONLY a valid JSON object. No markdown.

Expected JSON Structure:
%s`, estNow, recency, langRule, styleRule, reportSchema)
}

// userPrompt asks for one symbol, grounded on the reference time.
func userPrompt(lang models.Language, symbol, estNow string) string {
	if lang == models.LanguageZH {
		return fmt.Sprintf(`深度分析代號：%s。基準時間：%s。
請結合「最新即時數據（過去24小時）」與「深度邏輯推演」。
請勿簡略，需詳細說明市場情緒、技術型態、盤前/盤後動態對明日走勢的影響。
忽略過時新聞，專注於當下發生的事件。`, symbol, estNow)
	}
	return fmt.Sprintf(`Deep Dive Analysis for Symbol: %s. Reference Time: %s.
Combine "LATEST Real-time Data (Last 24h)" with "Comprehensive Reasoning".
Do NOT be brief. Explain market sentiment, technical patterns, and pre-market/after-hours impact on tomorrow's trend.
Ignore outdated news. Focus on what is happening NOW.`, symbol, estNow)
}

// tickerErrorMessage is the generic per-ticker failure text shown on a
// report card when the call or the parse fails.
func tickerErrorMessage(lang models.Language) string {
	if lang == models.LanguageZH {
		return "無法取得分析資料，請檢查 API Key 或稍後再試。"
	}
	return "Could not fetch analysis. Check the API key or try again later."
}
