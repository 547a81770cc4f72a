package telegram

import (
	"fmt"
	"strings"

	"golang-stock-trend/internal/predictor/dto"
)

// FormatPrediction formats a per-day prediction into a Markdown message for
// Telegram.
func FormatPrediction(ticker string, predictions []dto.DayPredictionView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 *Trend Prediction: %s*\n\n", ticker))

	for _, p := range predictions {
		var icon string
		switch strings.ToUpper(p.Trend) {
		case "UP":
			icon = "🟢"
		case "DOWN":
			icon = "🔴"
		default:
			icon = "🟡"
		}
		b.WriteString(fmt.Sprintf("%s *%s:* %s (confidence %d%%)\n", icon, p.Label, p.Trend, p.Confidence))
		for _, reason := range p.Reasoning {
			b.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}

	b.WriteString("\n_Educational use only. Not financial advice._")
	return b.String()
}
