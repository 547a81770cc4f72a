package service

import (
	"strconv"
	"strings"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/pkg/common"
	"golang-stock-trend/pkg/utils"
)

const (
	directionMarker  = "Direction:"
	confidenceMarker = "Confidence:"
)

// ParsePrediction extracts a per-day structured prediction from raw model
// text. It never fails: malformed input degrades to defaults, and after the
// completion pass every canonical day label from 1 to horizon is present.
//
// The scan is a two-state machine over non-blank lines. A line whose
// case-insensitive prefix is "DAY" commits any open day and opens a new one,
// keyed by the text before the first colon. A line starting with "-" appends
// a reasoning bullet to the open day. Everything else is ignored.
func ParsePrediction(text string, horizon int) entity.PredictionSet {
	set := entity.PredictionSet{}

	var currentLabel string
	var current *entity.DayPrediction
	commit := func() {
		if current != nil {
			set[currentLabel] = current
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(strings.ToUpper(line), "DAY"):
			commit()
			label := line
			if idx := strings.Index(line, ":"); idx >= 0 {
				label = line[:idx]
			}
			currentLabel = strings.TrimSpace(label)
			current = &entity.DayPrediction{
				Trend:      common.TrendSideways,
				Confidence: common.DefaultConfidence,
			}
			// Trend and confidence commit atomically: a failure in either
			// extraction leaves both at their defaults.
			if trend, confidence, ok := extractHeader(line); ok {
				current.Trend = trend
				current.Confidence = confidence
			}
		case strings.HasPrefix(line, "-"):
			if current != nil {
				bullet := strings.TrimSpace(strings.TrimPrefix(line, "-"))
				current.Reasoning = append(current.Reasoning, bullet)
			}
		}
	}
	commit()

	for i := 1; i <= horizon; i++ {
		key := entity.DayKey(i)
		if _, ok := set[key]; !ok {
			set[key] = &entity.DayPrediction{
				Trend:      common.TrendSideways,
				Confidence: common.DefaultConfidence,
				Reasoning:  []string{common.DefaultReasoning},
			}
		}
	}
	return set
}

// extractHeader pulls the trend and confidence from a day-header line
// containing both markers. The trend is the text between "Direction:" and
// the next comma; the confidence is the digits of the text between
// "Confidence:" and the next comma.
func extractHeader(line string) (string, int, bool) {
	dirIdx := strings.Index(line, directionMarker)
	confIdx := strings.Index(line, confidenceMarker)
	if dirIdx < 0 || confIdx < 0 {
		return "", 0, false
	}

	trendPart := line[dirIdx+len(directionMarker):]
	if comma := strings.Index(trendPart, ","); comma >= 0 {
		trendPart = trendPart[:comma]
	}
	trend := strings.TrimSpace(trendPart)
	if trend == "" {
		return "", 0, false
	}

	confPart := line[confIdx+len(confidenceMarker):]
	if comma := strings.Index(confPart, ","); comma >= 0 {
		confPart = confPart[:comma]
	}
	confidence, err := strconv.Atoi(utils.DigitsOnly(confPart))
	if err != nil {
		return "", 0, false
	}

	return trend, confidence, true
}
