package service

import (
	"fmt"
	"strings"

	"golang-stock-trend/internal/entity"
)

// NormalizeWindow selects the trailing lookbackDays rows and derives the
// SMA7 column. The SMA is computed over the full input series before
// trimming, so a longer input improves the quality of the leading values.
func NormalizeWindow(rows []entity.PriceRow, lookbackDays int) (entity.PredictionWindow, error) {
	if len(rows) == 0 {
		return nil, entity.ErrDataUnavailable
	}

	window := make(entity.PredictionWindow, len(rows))
	copy(window, rows)

	var sum float64
	for i := range window {
		sum += window[i].Close
		if i >= 7 {
			sum -= window[i-7].Close
		}
		span := i + 1
		if span > 7 {
			span = 7
		}
		window[i].SMA7 = sum / float64(span)
	}

	if len(window) > lookbackDays {
		window = window[len(window)-lookbackDays:]
	}
	return window, nil
}

// FormatPriceTable renders the window as the whitespace-column text table
// embedded in the prompt. Column order and precision are part of the LLM
// contract.
func FormatPriceTable(window entity.PredictionWindow) string {
	var b strings.Builder
	b.WriteString("Date Open High Low Close Volume SMA7")
	for _, row := range window {
		b.WriteString(fmt.Sprintf("\n%s %.2f %.2f %.2f %.2f %d %.2f",
			row.Date.Format("2006-01-02"), row.Open, row.High, row.Low, row.Close, row.Volume, row.SMA7))
	}
	return b.String()
}
