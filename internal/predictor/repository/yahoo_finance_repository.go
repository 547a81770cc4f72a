package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/internal/predictor/config"
	"golang-stock-trend/internal/predictor/dto"
	"golang-stock-trend/pkg/logger"
	"golang-stock-trend/pkg/utils"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

type yahooFinanceRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	chartCache     *cache.Cache
}

// NewYahooFinanceRepository creates a PriceRepository backed by the Yahoo
// Finance v8 chart endpoint.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) PriceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	return &yahooFinanceRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: requestLimiter,
		chartCache:     cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *yahooFinanceRepository) GetDailyPrices(ctx context.Context, ticker string, days int) ([]entity.PriceRow, error) {
	rows, err := r.fetchChart(ctx, ticker, utils.ChartRange(days))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrDataUnavailable, ticker)
	}
	if len(rows) > days {
		rows = rows[len(rows)-days:]
	}
	return rows, nil
}

func (r *yahooFinanceRepository) GetMarketContext(ctx context.Context, ticker string) (string, error) {
	stock, err := r.fetchChart(ctx, ticker, "5d")
	if err != nil {
		return "", err
	}
	if len(stock) < 2 {
		return "Market context unavailable.", nil
	}
	spy, err := r.fetchChart(ctx, "SPY", "5d")
	if err != nil {
		return "", err
	}
	vix, err := r.fetchChart(ctx, "^VIX", "5d")
	if err != nil {
		return "", err
	}
	if len(spy) < 2 || len(vix) < 1 {
		return "Market context unavailable.", nil
	}

	prev := stock[len(stock)-2]
	last := stock[len(stock)-1]
	todayChange := (last.Close - prev.Close) / prev.Close * 100
	gap := (last.Open - prev.Close) / prev.Close * 100
	spyChange := (spy[len(spy)-1].Close - spy[len(spy)-2].Close) / spy[len(spy)-2].Close * 100
	vixLevel := vix[len(vix)-1].Close

	text := fmt.Sprintf(`TODAY'S MARKET CONTEXT:
- %s change today: %.2f%%
- Gap at open: %.2f%%
- S&P 500 (SPY) change: %.2f%%
- VIX level: %.2f

Interpretation guidance:
- Positive SPY + falling VIX = risk-on
- Negative SPY + rising VIX = risk-off
- Large gap-ups often retrace intraday
`, ticker, todayChange, gap, spyChange, vixLevel)

	return text, nil
}

func (r *yahooFinanceRepository) fetchChart(ctx context.Context, symbol, chartRange string) ([]entity.PriceRow, error) {
	cacheKey := symbol + ":" + chartRange
	if cached, found := r.chartCache.Get(cacheKey); found {
		return cached.([]entity.PriceRow), nil
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d", r.cfg.YahooFinance.BaseURL, symbol, chartRange)
	body, err := r.sendRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	var response dto.YahooChartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chart response: %w", err)
	}
	if len(response.Chart.Result) == 0 || len(response.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrDataUnavailable, symbol)
	}

	result := response.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	rows := make([]entity.PriceRow, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil || quote.Open[i] == nil ||
			quote.High[i] == nil || quote.Low[i] == nil {
			continue
		}
		var volume int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volume = *quote.Volume[i]
		}
		rows = append(rows, entity.PriceRow{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   *quote.Open[i],
			High:   *quote.High[i],
			Low:    *quote.Low[i],
			Close:  *quote.Close[i],
			Volume: volume,
		})
	}

	r.chartCache.Set(cacheKey, rows, cache.DefaultExpiration)
	r.log.DebugContext(ctx, "Fetched Yahoo Finance chart", logger.StringField("symbol", symbol), logger.IntField("rows", len(rows)))

	return rows, nil
}

func (r *yahooFinanceRepository) sendRequest(ctx context.Context, url string) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to wait for request limit", logger.ErrorField(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; trend-service)")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Yahoo Finance API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.log.ErrorContext(ctx, "Received non-OK response from Yahoo Finance API",
			logger.IntField("status_code", resp.StatusCode), logger.StringField("url", url))
		return nil, fmt.Errorf("received non-OK response from Yahoo Finance API: %d - %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
