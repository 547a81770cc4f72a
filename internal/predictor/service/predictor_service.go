package service

import (
	"context"
	"fmt"

	"golang-stock-trend/internal/predictor/config"
	"golang-stock-trend/internal/predictor/dto"
	"golang-stock-trend/internal/predictor/repository"
	"golang-stock-trend/pkg/logger"
	"golang-stock-trend/pkg/telegram"
	"golang-stock-trend/pkg/utils"
)

// Prompts echoed back to callers are cut at this length, like the source UI.
const promptDisplayLimit = 1500

// PredictorService runs the full prediction pipeline for one ticker.
type PredictorService interface {
	Predict(ctx context.Context, req *dto.PredictRequest) (*dto.PredictResponse, error)
}

type predictorService struct {
	cfg          *config.Config
	log          *logger.Logger
	priceRepo    repository.PriceRepository
	headlineRepo repository.HeadlineRepository
	aiRepo       repository.AIRepository
	notifier     telegram.Notifier
}

// NewPredictorService creates a PredictorService. The notifier may be nil
// when Telegram is not configured.
func NewPredictorService(cfg *config.Config, log *logger.Logger,
	priceRepo repository.PriceRepository,
	headlineRepo repository.HeadlineRepository,
	aiRepo repository.AIRepository,
	notifier telegram.Notifier) PredictorService {
	return &predictorService{
		cfg:          cfg,
		log:          log,
		priceRepo:    priceRepo,
		headlineRepo: headlineRepo,
		aiRepo:       aiRepo,
		notifier:     notifier,
	}
}

func (s *predictorService) Predict(ctx context.Context, req *dto.PredictRequest) (*dto.PredictResponse, error) {
	lookback := req.LookbackDays
	if lookback <= 0 {
		lookback = s.cfg.Predictor.LookbackDays
	}
	horizon := req.Horizon
	if horizon <= 0 {
		horizon = s.cfg.Predictor.Horizon
	}

	rows, err := s.priceRepo.GetDailyPrices(ctx, req.Ticker, lookback)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch prices", logger.ErrorField(err), logger.StringField("ticker", req.Ticker))
		return nil, fmt.Errorf("failed to fetch prices for %s: %w", req.Ticker, err)
	}

	window, err := NormalizeWindow(rows, lookback)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize prices for %s: %w", req.Ticker, err)
	}
	priceTable := FormatPriceTable(window)

	var headlines []string
	if req.HeadlineCount > 0 {
		headlines, err = s.headlineRepo.GetHeadlines(ctx, req.Ticker, req.HeadlineCount)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to fetch headlines", logger.ErrorField(err), logger.StringField("ticker", req.Ticker))
			return nil, fmt.Errorf("failed to fetch headlines for %s: %w", req.Ticker, err)
		}
	}

	marketContext, err := s.priceRepo.GetMarketContext(ctx, req.Ticker)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch market context", logger.ErrorField(err), logger.StringField("ticker", req.Ticker))
		return nil, fmt.Errorf("failed to fetch market context for %s: %w", req.Ticker, err)
	}

	prompt := repository.BuildTrendPrompt(req.Ticker, priceTable, headlines, marketContext, horizon)

	text, err := s.aiRepo.Complete(ctx, prompt, req.Model)
	if err != nil {
		s.log.ErrorContext(ctx, "Model call failed", logger.ErrorField(err), logger.StringField("ticker", req.Ticker))
		return nil, fmt.Errorf("prediction for %s failed: %w", req.Ticker, err)
	}

	set := ParsePrediction(text, horizon)
	views := dto.NewDayPredictionViews(set, horizon)

	s.log.InfoContext(ctx, "Prediction complete",
		logger.StringField("ticker", req.Ticker),
		logger.IntField("horizon", horizon),
		logger.IntField("days", len(views)))

	if req.Notify && s.notifier != nil {
		msg := telegram.FormatPrediction(req.Ticker, views)
		if err := s.notifier.SendMessage(msg); err != nil {
			// Notification is best-effort; the prediction itself succeeded.
			s.log.WarnContext(ctx, "Failed to send Telegram notification", logger.ErrorField(err))
		}
	}

	return &dto.PredictResponse{
		Ticker:      req.Ticker,
		PriceTable:  priceTable,
		Headlines:   headlines,
		Prompt:      utils.Truncate(prompt, promptDisplayLimit),
		Predictions: views,
	}, nil
}
