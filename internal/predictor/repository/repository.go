package repository

import (
	"context"

	"golang-stock-trend/internal/entity"
)

// PriceRepository fetches daily OHLCV history for a ticker.
type PriceRepository interface {
	// GetDailyPrices returns at most days rows, ascending by date. An
	// unknown ticker yields entity.ErrDataUnavailable.
	GetDailyPrices(ctx context.Context, ticker string, days int) ([]entity.PriceRow, error)
	// GetMarketContext describes today's move versus SPY and the VIX. It
	// returns a fixed placeholder when fewer than two sessions exist.
	GetMarketContext(ctx context.Context, ticker string) (string, error)
}

// HeadlineRepository fetches ranked news headlines for a query.
type HeadlineRepository interface {
	// GetHeadlines returns up to maxCount headline strings. A missing
	// credential yields an empty slice, not an error.
	GetHeadlines(ctx context.Context, query string, maxCount int) ([]string, error)
}

// AIRepository is a chat completion provider.
type AIRepository interface {
	// Complete sends the prompt and returns the model's raw text. The model
	// name overrides the configured default when non-empty. A missing
	// credential or transport failure yields entity.ErrModelUnavailable.
	Complete(ctx context.Context, prompt, model string) (string, error)
}
