package entity

import "time"

// BacktestTrial records one sliding-window trial: what the model predicted
// for the target day versus the direction the price actually moved.
type BacktestTrial struct {
	Date       time.Time `json:"date"`
	Predicted  string    `json:"predicted"`
	Confidence int       `json:"confidence"`
	Actual     string    `json:"actual"`
	Correct    bool      `json:"correct"`
}

// BacktestReport summarizes a backtest session.
type BacktestReport struct {
	Ticker   string          `json:"ticker"`
	Accuracy float64         `json:"accuracy"`
	Trials   int             `json:"trials"`
	Results  []BacktestTrial `json:"results"`
}
