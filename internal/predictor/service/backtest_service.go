package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/internal/predictor/config"
	"golang-stock-trend/internal/predictor/dto"
	"golang-stock-trend/internal/predictor/repository"
	"golang-stock-trend/pkg/common"
	"golang-stock-trend/pkg/logger"
)

// BacktestService replays the prediction pipeline over historical sliding
// windows and measures direction accuracy.
type BacktestService interface {
	Run(ctx context.Context, req *dto.BacktestRequest) (*entity.BacktestReport, error)
}

type backtestService struct {
	cfg       *config.Config
	log       *logger.Logger
	priceRepo repository.PriceRepository
	aiRepo    repository.AIRepository
}

// NewBacktestService creates a BacktestService.
func NewBacktestService(cfg *config.Config, log *logger.Logger,
	priceRepo repository.PriceRepository,
	aiRepo repository.AIRepository) BacktestService {
	return &backtestService{
		cfg:       cfg,
		log:       log,
		priceRepo: priceRepo,
		aiRepo:    aiRepo,
	}
}

// Run executes one trial per sliding window, oldest first. Headlines and
// market context are omitted per trial to avoid lookahead bias and keep the
// call volume down. A trial failure aborts the whole run.
func (s *backtestService) Run(ctx context.Context, req *dto.BacktestRequest) (*entity.BacktestReport, error) {
	days := req.DaysForPrediction
	rows, err := s.priceRepo.GetDailyPrices(ctx, req.Ticker, req.TrialCount+days+5)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices for %s: %w", req.Ticker, err)
	}
	if len(rows) < days+2 {
		return nil, fmt.Errorf("%w: have %d rows, need at least %d", entity.ErrInsufficientData, len(rows), days+2)
	}

	trialCount := req.TrialCount
	if max := len(rows) - days - 1; trialCount > max {
		trialCount = max
	}

	results := make([]entity.BacktestTrial, 0, trialCount)
	correct := 0
	for i := trialCount; i >= 1; i-- {
		targetIdx := len(rows) - i
		window, err := NormalizeWindow(rows[targetIdx-days:targetIdx], days)
		if err != nil {
			return nil, err
		}
		target := rows[targetIdx]

		priceTable := FormatPriceTable(window)
		prompt := repository.BuildTrendPrompt(req.Ticker, priceTable, nil, "Market context unavailable.", 1)

		text, err := s.aiRepo.Complete(ctx, prompt, req.Model)
		if err != nil {
			return nil, fmt.Errorf("backtest trial for %s on %s failed: %w",
				req.Ticker, target.Date.Format("2006-01-02"), err)
		}

		day := ParsePrediction(text, 1).Day(1)
		predicted := strings.ToUpper(strings.TrimSpace(day.Trend))
		actual := classifyDirection(window.LastClose(), target.Close)

		trial := entity.BacktestTrial{
			Date:       target.Date,
			Predicted:  predicted,
			Confidence: day.Confidence,
			Actual:     actual,
			Correct:    predicted == actual,
		}
		if trial.Correct {
			correct++
		}
		results = append(results, trial)

		s.log.DebugContext(ctx, "Backtest trial done",
			logger.StringField("ticker", req.Ticker),
			logger.StringField("date", target.Date.Format("2006-01-02")),
			logger.StringField("predicted", predicted),
			logger.StringField("actual", actual))

		// Fixed pacing between trials to stay under the provider's rate
		// limits. Not a retry or backoff policy.
		if i > 1 && s.cfg.Predictor.TrialPause > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.cfg.Predictor.TrialPause):
			}
		}
	}

	accuracy := 0.0
	if len(results) > 0 {
		accuracy = float64(correct) / float64(len(results))
	}

	return &entity.BacktestReport{
		Ticker:   req.Ticker,
		Accuracy: accuracy,
		Trials:   len(results),
		Results:  results,
	}, nil
}

// classifyDirection labels the realized close-to-close move. Moves inside
// the dead-band are SIDEWAYS, matching the prediction vocabulary so the
// correctness comparison is meaningful.
func classifyDirection(prevClose, close float64) string {
	switch {
	case close > prevClose*(1+common.DeadBand):
		return common.TrendUp
	case close < prevClose*(1-common.DeadBand):
		return common.TrendDown
	default:
		return common.TrendSideways
	}
}
