package common

const (
	TrendUp       = "UP"
	TrendDown     = "DOWN"
	TrendSideways = "SIDEWAYS"

	DefaultConfidence = 50
	DefaultReasoning  = "Market unclear"

	// DeadBand is the relative close-to-close move below which the realized
	// direction is classified as SIDEWAYS.
	DeadBand = 0.002
)
