package portfolio

import (
	"fmt"
	"strings"
	"time"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
)

const extractionPrompt = `You are a specialized Financial OCR Robot.
Your task is to extract portfolio data from the image.

Please extract a list of positions with the following fields:
1. **symbol**: The stock ticker (e.g., NVDA, AVGO).
2. **qty**: The Quantity/Shares held (clean number).
3. **cost**: The "Cost" or "Total Cost" column (clean number, remove currency symbols).
4. **gain_pct**: The "Total gain/loss %" (keep the +/- sign and %, e.g., "+51.95%").

Output strictly a JSON array of objects. No markdown.
Example Format:
[
  {"symbol": "AVGO", "qty": 12, "cost": 3621.02, "gain_pct": "+15.91%"},
  {"symbol": "SPY", "qty": 5, "cost": 3065.42, "gain_pct": "+6.79%"}
]

If some fields are missing or unreadable, put null.`

const auditSystemPrompt = "You are a hedge fund manager analyzing a client's specific entry points."

func easternTime(now time.Time) string {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return now.UTC().Format("01/02/2006, 15:04")
	}
	return now.In(loc).Format("01/02/2006, 15:04")
}

// positionContext renders extracted positions as the bullet list the audit
// prompt embeds, with per-position average cost where it can be derived.
func positionContext(positions []models.Position) string {
	lines := make([]string, 0, len(positions))
	for _, p := range positions {
		avg := "Unknown"
		if v, ok := p.AvgCost(); ok {
			avg = v.StringFixed(2)
		}
		lines = append(lines, fmt.Sprintf("- %s: 持有 %s 股, 總成本 $%s (平均成本約 $%s/股), 目前帳面損益 %s",
			p.Symbol, renderNumber(p.Qty), renderNumber(p.Cost), avg, renderGain(p.GainPct)))
	}
	return strings.Join(lines, "\n")
}

func renderNumber(v *float64) string {
	if v == nil {
		return "?"
	}
	s := fmt.Sprintf("%.2f", *v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func renderGain(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func auditPrompt(positions []models.Position, estNow string) string {
	return fmt.Sprintf(`Current EST Time: %s.

User's Actual Portfolio Positions (OCR Extracted):
%s

TASK: You are a Senior Portfolio Manager. Perform a "Real-Time Holdings Audit" for this user.

INSTRUCTIONS:
1. **Get Live Quotes**: Search for the EXACT price right now for each stock.
2. **Compare with User's Cost**:
   - Compare the LIVE PRICE with the user's **AVERAGE COST** (calculated above).
   - If Live Price >> Avg Cost: Suggest "Take Profit" levels or "Trailing Stop".
   - If Live Price approx Avg Cost: Analyze momentum.
   - If Live Price << Avg Cost: Analyze if it's a "Buy the Dip" or "Stop Loss".
3. **Validate User's Gain %%**: Check if the OCR's "gain_pct" makes sense with current price.

Output Format (Traditional Chinese):

## 📊 深度持倉診斷報告 (%s EST)

### [代碼] 公司名
* **即時報價**: **$PRICE** (今日漲跌) 🕒
* **你的持倉**: 均價 $AVG_COST | 帳面損益
* **操作建議**: **[加碼 / 減碼 / 續抱 / 止損]**
* **策略分析**:
  (這裡請具體寫：用戶成本在 $XXX，目前現價 $YYY。由於獲利已達 ZZ%%，建議... 或者因為跌破成本，建議...)
* **關鍵點位**:
  - 🔴 壓力/止盈: $Price
  - 🟢 支撐/補倉: $Price

---
(Next Stock)

### 總體建議
(針對這組持倉的風險集中度給一句話)`, estNow, positionContext(positions), estNow)
}
