package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/internal/predictor/dto"
	"golang-stock-trend/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePredictorService struct {
	resp *dto.PredictResponse
	err  error
}

func (f *fakePredictorService) Predict(_ context.Context, _ *dto.PredictRequest) (*dto.PredictResponse, error) {
	return f.resp, f.err
}

type fakeBacktestService struct {
	report *entity.BacktestReport
	err    error
}

func (f *fakeBacktestService) Run(_ context.Context, _ *dto.BacktestRequest) (*entity.BacktestReport, error) {
	return f.report, f.err
}

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return log
}

func TestPredict_MissingTicker(t *testing.T) {
	h := NewPredictHandler(&fakePredictorService{}, &fakeBacktestService{}, testLogger(t))
	c, rec := newTestContext(t, `{"horizon":1}`)

	require.NoError(t, h.Predict(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredict_Success(t *testing.T) {
	svc := &fakePredictorService{resp: &dto.PredictResponse{
		Ticker: "AAPL",
		Predictions: []dto.DayPredictionView{
			{Label: "Day 1", Trend: "UP", Confidence: 82},
		},
	}}
	h := NewPredictHandler(svc, &fakeBacktestService{}, testLogger(t))
	c, rec := newTestContext(t, `{"ticker":"AAPL","horizon":1}`)

	require.NoError(t, h.Predict(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trend":"UP"`)
}

func TestPredict_ModelUnavailableMapsToBadGateway(t *testing.T) {
	h := NewPredictHandler(&fakePredictorService{err: entity.ErrModelUnavailable}, &fakeBacktestService{}, testLogger(t))
	c, rec := newTestContext(t, `{"ticker":"AAPL"}`)

	require.NoError(t, h.Predict(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestBacktest_InsufficientDataMapsToNotFound(t *testing.T) {
	h := NewPredictHandler(&fakePredictorService{}, &fakeBacktestService{err: entity.ErrInsufficientData}, testLogger(t))
	c, rec := newTestContext(t, `{"ticker":"AAPL","days_for_prediction":5,"trial_count":3}`)

	require.NoError(t, h.Backtest(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBacktest_RejectsNonPositiveCounts(t *testing.T) {
	h := NewPredictHandler(&fakePredictorService{}, &fakeBacktestService{}, testLogger(t))
	c, rec := newTestContext(t, `{"ticker":"AAPL","days_for_prediction":0,"trial_count":3}`)

	require.NoError(t, h.Backtest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
