package utils

// ChartRange maps a number of trading days to the smallest Yahoo Finance
// chart range parameter that covers it. One month holds roughly 21 trading
// sessions.
func ChartRange(days int) string {
	switch {
	case days <= 21:
		return "1mo"
	case days <= 63:
		return "3mo"
	case days <= 126:
		return "6mo"
	case days <= 252:
		return "1y"
	default:
		return "2y"
	}
}
