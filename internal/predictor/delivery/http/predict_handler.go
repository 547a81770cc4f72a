package http

import (
	"errors"
	"net/http"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/internal/predictor/dto"
	"golang-stock-trend/internal/predictor/service"
	"golang-stock-trend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictHandler handles HTTP requests for predictions and backtests.
type PredictHandler struct {
	predictorSvc service.PredictorService
	backtestSvc  service.BacktestService
	logger       *logger.Logger
}

// NewPredictHandler creates a new PredictHandler.
func NewPredictHandler(predictorSvc service.PredictorService, backtestSvc service.BacktestService, logger *logger.Logger) *PredictHandler {
	return &PredictHandler{predictorSvc: predictorSvc, backtestSvc: backtestSvc, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group.
func (h *PredictHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/predictions", h.Predict)
	g.POST("/backtests", h.Backtest)
}

// Predict godoc
// @Summary Run a trend prediction
// @Description Fetches prices and headlines for a ticker, asks the model, and returns the parsed per-day prediction
// @Tags predictions
// @Accept  json
// @Produce  json
// @Param   request  body    dto.PredictRequest   true    "Prediction parameters"
// @Success 200 {object} dto.PredictResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /predictions [post]
func (h *PredictHandler) Predict(c echo.Context) error {
	var req dto.PredictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.Ticker == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticker is required"})
	}

	resp, err := h.predictorSvc.Predict(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

// Backtest godoc
// @Summary Run a backtest
// @Description Replays the prediction pipeline over historical sliding windows and reports accuracy
// @Tags backtests
// @Accept  json
// @Produce  json
// @Param   request  body    dto.BacktestRequest   true    "Backtest parameters"
// @Success 200 {object} dto.BacktestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /backtests [post]
func (h *PredictHandler) Backtest(c echo.Context) error {
	var req dto.BacktestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.Ticker == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticker is required"})
	}
	if req.DaysForPrediction <= 0 || req.TrialCount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "days_for_prediction and trial_count must be positive"})
	}

	report, err := h.backtestSvc.Run(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, dto.BacktestResponse{Report: report})
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrDataUnavailable), errors.Is(err, entity.ErrInsufficientData):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrModelUnavailable), errors.Is(err, entity.ErrHeadlineSourceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
