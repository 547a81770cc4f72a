package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/internal/predictor/config"
	"golang-stock-trend/internal/predictor/dto"
	"golang-stock-trend/pkg/logger"
	"golang-stock-trend/pkg/ratelimit"

	"golang.org/x/time/rate"
)

type openaiAIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewOpenAIRepository creates an AIRepository backed by the OpenAI chat
// completions API.
func NewOpenAIRepository(cfg *config.Config, logger *logger.Logger) AIRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.OpenAI.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	tokenLimiter := ratelimit.NewTokenLimiter(cfg.OpenAI.MaxTokenPerMinute)

	return &openaiAIRepository{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		cfg:            cfg,
		logger:         logger,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
	}
}

func (r *openaiAIRepository) Complete(ctx context.Context, prompt, model string) (string, error) {
	if r.cfg.OpenAI.APIKey == "" {
		return "", fmt.Errorf("%w: no OpenAI API key configured", entity.ErrModelUnavailable)
	}

	resp, err := r.sendRequest(ctx, prompt, model)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.Content) == 0 {
		return "", fmt.Errorf("%w: no content found in OpenAI response", entity.ErrModelUnavailable)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (r *openaiAIRepository) sendRequest(ctx context.Context, prompt, model string) (*dto.OpenAPIRes, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.logger.Error("failed to wait for request limit", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	if model == "" {
		model = r.cfg.OpenAI.Model
	}

	payload := dto.OpenAPIReq{
		Model: model,
		Messages: []dto.Message{
			{
				Role:    "system",
				Content: "You are a careful financial assistant that gives concise, conservative answers.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature: r.cfg.OpenAI.Temperature,
		MaxTokens:   r.cfg.OpenAI.MaxTokens,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.cfg.OpenAI.BaseURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.OpenAI.APIKey))

	r.logger.Debug("Sending request to OpenAI API", logger.StringField("url", r.cfg.OpenAI.BaseURL), logger.StringField("model", model))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Received non-OK response from OpenAI API", logger.IntField("status_code", resp.StatusCode), logger.StringField("model", model))
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %d - %s", entity.ErrModelUnavailable, resp.StatusCode, string(body))
	}

	var openaiResp dto.OpenAPIRes
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if openaiResp.Usage.TotalTokens > r.cfg.OpenAI.MaxTokenPerMinute/2 {
		r.logger.Warn("Token has exceeded 50% of the limit", logger.IntField("remaining", r.tokenLimiter.GetRemaining()))
	}

	if err := r.tokenLimiter.Wait(ctx, openaiResp.Usage.TotalTokens); err != nil {
		r.logger.Error("failed to wait for token limit", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to wait for token limit: %w", err)
	}

	return &openaiResp, nil
}
