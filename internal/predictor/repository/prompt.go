package repository

import (
	"fmt"
	"strings"
)

// BuildTrendPrompt renders the instruction prompt for a multi-day trend
// prediction. The OUTPUT FORMAT section is a contract with the response
// parser: day headers carry "Direction:" and "Confidence:" followed by
// dash bullets.
func BuildTrendPrompt(ticker, priceTable string, headlines []string, marketContext string, horizon int) string {
	var newsBuilder strings.Builder
	if len(headlines) == 0 {
		newsBuilder.WriteString("(No headlines available)")
	} else {
		for i, h := range headlines {
			newsBuilder.WriteString(fmt.Sprintf("%d. %s\n", i+1, h))
		}
	}

	promptTemplate := `You are a cautious financial market analyst.

%s

HISTORICAL PRICE DATA for %s:
%s

RECENT NEWS HEADLINES:
%s

INSTRUCTIONS:
- Give higher weight to today's market context
- If today's move contradicts historical trend, explain why
- If confidence is low, say "SIDEWAYS"
- Do NOT give financial advice
- Predict each of the next %d trading days

OUTPUT FORMAT (MANDATORY), one block per day:
Day 1: Direction: UP, Confidence: 75,
- Bullet 1
- Bullet 2
Day 2: Direction: SIDEWAYS, Confidence: 50,
- Bullet 1
...continue through Day %d.

RULES:
- Direction must be one of [UP, DOWN, SIDEWAYS]
- Confidence is an integer between 0 and 100
- NEVER output "None" or empty values
- If confidence < 60%%, Direction MUST be SIDEWAYS
- If information is conflicting, explain why in bullets
`

	return fmt.Sprintf(promptTemplate, marketContext, ticker, priceTable, newsBuilder.String(), horizon, horizon)
}
