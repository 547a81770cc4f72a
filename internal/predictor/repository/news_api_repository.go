package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/internal/predictor/config"
	"golang-stock-trend/internal/predictor/dto"
	"golang-stock-trend/pkg/logger"

	"golang.org/x/time/rate"
)

type newsAPIRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewNewsAPIRepository creates a HeadlineRepository backed by the NewsAPI
// "everything" endpoint. Without an API key it returns no headlines.
func NewNewsAPIRepository(cfg *config.Config, log *logger.Logger) HeadlineRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.NewsAPI.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	return &newsAPIRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		requestLimiter: requestLimiter,
	}
}

func (r *newsAPIRepository) GetHeadlines(ctx context.Context, query string, maxCount int) ([]string, error) {
	if r.cfg.NewsAPI.APIKey == "" {
		r.log.DebugContext(ctx, "No NewsAPI key configured, skipping headlines")
		return nil, nil
	}

	reqURL := fmt.Sprintf("%s/v2/everything?q=%s&language=en&sortBy=relevancy&pageSize=%d",
		r.cfg.NewsAPI.BaseURL, url.QueryEscape(query), maxCount)

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrHeadlineSourceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrHeadlineSourceUnavailable, err)
	}
	req.Header.Set("X-Api-Key", r.cfg.NewsAPI.APIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrHeadlineSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.log.ErrorContext(ctx, "Received non-OK response from NewsAPI",
			logger.IntField("status_code", resp.StatusCode), logger.StringField("query", query))
		return nil, fmt.Errorf("%w: %d - %s", entity.ErrHeadlineSourceUnavailable, resp.StatusCode, string(body))
	}

	var response dto.NewsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrHeadlineSourceUnavailable, err)
	}

	headlines := make([]string, 0, maxCount)
	for _, article := range response.Articles {
		if article.Title == "" {
			continue
		}
		headlines = append(headlines, article.Title)
		if len(headlines) >= maxCount {
			break
		}
	}

	r.log.DebugContext(ctx, "Fetched headlines from NewsAPI",
		logger.StringField("query", query), logger.IntField("count", len(headlines)))

	return headlines, nil
}
