package entity

import "time"

// PriceRow is one daily OHLCV bar, including the trailing 7-session simple
// moving average of the close once normalized.
type PriceRow struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
	SMA7   float64   `json:"sma7"`
}

// PredictionWindow is the chronological slice of rows used to build one
// prompt. It always contains at least one row.
type PredictionWindow []PriceRow

// LastClose returns the closing price of the most recent row.
func (w PredictionWindow) LastClose() float64 {
	return w[len(w)-1].Close
}
