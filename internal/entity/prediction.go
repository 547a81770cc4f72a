package entity

import (
	"fmt"
	"sort"
)

// DayPrediction is the structured trend prediction for a single future
// trading day.
type DayPrediction struct {
	Trend      string   `json:"trend"`
	Confidence int      `json:"confidence"`
	Reasoning  []string `json:"reasoning"`
}

// PredictionSet maps a day label, as emitted by the model ("Day 1", ...),
// to its prediction. After parsing, every canonical label from Day 1 to
// Day horizon is present.
type PredictionSet map[string]*DayPrediction

// DayKey returns the canonical label for the n-th prediction day.
func DayKey(n int) string {
	return fmt.Sprintf("Day %d", n)
}

// Day returns the prediction for the n-th canonical day, or nil if absent.
func (p PredictionSet) Day(n int) *DayPrediction {
	return p[DayKey(n)]
}

// Labels returns all labels in the set, canonical days first in numeric
// order, then any extra labels sorted lexically.
func (p PredictionSet) Labels(horizon int) []string {
	labels := make([]string, 0, len(p))
	seen := make(map[string]bool, horizon)
	for i := 1; i <= horizon; i++ {
		key := DayKey(i)
		if _, ok := p[key]; ok {
			labels = append(labels, key)
			seen[key] = true
		}
	}
	var extra []string
	for key := range p {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(labels, extra...)
}
