package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/internal/predictor/config"
	"golang-stock-trend/pkg/logger"
	"golang-stock-trend/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiAIRepository is an AIRepository backed by the Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	tokenLimiter := ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute)

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) Complete(ctx context.Context, prompt, model string) (string, error) {
	if r.cfg.Gemini.APIKey == "" {
		return "", fmt.Errorf("%w: no Gemini API key configured", entity.ErrModelUnavailable)
	}

	if model == "" {
		model = r.cfg.Gemini.Model
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	tokenResp, err := r.genAiClient.Models.CountTokens(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to count tokens: %v", entity.ErrModelUnavailable, err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(tokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)

	if err := r.tokenLimiter.Wait(ctx, int(tokenResp.TotalTokens)); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	if int(tokenResp.TotalTokens) > r.cfg.Gemini.MaxTokenPerMinute/2 {
		r.logger.Warn("Token has exceeded 50% of the limit", logger.IntField("remaining", r.tokenLimiter.GetRemaining()))
	}

	temperature := float32(r.cfg.Gemini.Temperature)
	genCfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(r.cfg.Gemini.MaxTokens),
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		r.logger.Error("Failed to send request to Gemini API", logger.ErrorField(err))
		return "", fmt.Errorf("%w: %v", entity.ErrModelUnavailable, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no content found in Gemini response", entity.ErrModelUnavailable)
	}

	return strings.TrimSpace(text), nil
}
