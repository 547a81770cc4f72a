package dto

import "golang-stock-trend/internal/entity"

// PredictRequest are the parameters for a single prediction run.
type PredictRequest struct {
	Ticker        string `json:"ticker"`
	LookbackDays  int    `json:"lookback_days"`
	HeadlineCount int    `json:"headline_count"`
	Model         string `json:"model"`
	Horizon       int    `json:"horizon"`
	Notify        bool   `json:"notify"`
}

// DayPredictionView is one day's prediction in display order.
type DayPredictionView struct {
	Label      string   `json:"label"`
	Trend      string   `json:"trend"`
	Confidence int      `json:"confidence"`
	Reasoning  []string `json:"reasoning"`
}

// PredictResponse is the result of a prediction run. Prompt is truncated
// for transparency display, mirroring what was sent to the model.
type PredictResponse struct {
	Ticker      string              `json:"ticker"`
	PriceTable  string              `json:"price_table"`
	Headlines   []string            `json:"headlines"`
	Prompt      string              `json:"prompt"`
	Predictions []DayPredictionView `json:"predictions"`
}

// BacktestRequest are the parameters for a backtest session.
type BacktestRequest struct {
	Ticker            string `json:"ticker"`
	DaysForPrediction int    `json:"days_for_prediction"`
	TrialCount        int    `json:"trial_count"`
	Model             string `json:"model"`
}

// BacktestResponse wraps a backtest report.
type BacktestResponse struct {
	Report *entity.BacktestReport `json:"report"`
}

// NewDayPredictionViews flattens a prediction set into display order.
func NewDayPredictionViews(set entity.PredictionSet, horizon int) []DayPredictionView {
	labels := set.Labels(horizon)
	views := make([]DayPredictionView, 0, len(labels))
	for _, label := range labels {
		p := set[label]
		views = append(views, DayPredictionView{
			Label:      label,
			Trend:      p.Trend,
			Confidence: p.Confidence,
			Reasoning:  p.Reasoning,
		})
	}
	return views
}
