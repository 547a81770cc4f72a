package config

import (
	"time"

	"golang-stock-trend/pkg/config"
)

// Predictor holds defaults for the prediction pipeline.
type Predictor struct {
	LookbackDays  int           `mapstructure:"lookback_days"`
	HeadlineCount int           `mapstructure:"headline_count"`
	Horizon       int           `mapstructure:"horizon"`
	TrialPause    time.Duration `mapstructure:"trial_pause"`
}

// OpenAI holds the configuration for the OpenAI chat completions API.
type OpenAI struct {
	APIKey              string  `mapstructure:"api_key"`
	BaseURL             string  `mapstructure:"base_url"`
	Model               string  `mapstructure:"model"`
	Temperature         float64 `mapstructure:"temperature"`
	MaxTokens           int     `mapstructure:"max_tokens"`
	MaxRequestPerMinute int     `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int     `mapstructure:"max_token_per_minute"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string  `mapstructure:"api_key"`
	Model               string  `mapstructure:"model"`
	Temperature         float64 `mapstructure:"temperature"`
	MaxTokens           int     `mapstructure:"max_tokens"`
	MaxRequestPerMinute int     `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int     `mapstructure:"max_token_per_minute"`
}

// AI holds configuration for AI providers.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// NewsAPI holds the configuration for the NewsAPI headline source.
type NewsAPI struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// YahooFinance holds the configuration for the Yahoo Finance chart API.
type YahooFinance struct {
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Telegram holds configuration for the optional Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the trend service.
type Config struct {
	App          config.App    `mapstructure:"app"`
	Logger       config.Logger `mapstructure:"logger"`
	API          config.API    `mapstructure:"api"`
	Predictor    Predictor     `mapstructure:"predictor"`
	AI           AI            `mapstructure:"ai"`
	OpenAI       OpenAI        `mapstructure:"openai"`
	Gemini       Gemini        `mapstructure:"gemini"`
	NewsAPI      NewsAPI       `mapstructure:"news_api"`
	YahooFinance YahooFinance  `mapstructure:"yahoo_finance"`
	Telegram     Telegram      `mapstructure:"telegram"`
}

// Load loads the trend service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
