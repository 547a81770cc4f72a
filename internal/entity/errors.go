package entity

import "errors"

var (
	// ErrDataUnavailable indicates no price rows exist for the ticker/range.
	ErrDataUnavailable = errors.New("no price data available")
	// ErrInsufficientData indicates too few rows for the requested backtest.
	ErrInsufficientData = errors.New("not enough data to backtest")
	// ErrModelUnavailable indicates a missing credential or a transport
	// failure talking to the LLM endpoint.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrHeadlineSourceUnavailable indicates the headline source failed with
	// a credential configured. A missing credential is not an error.
	ErrHeadlineSourceUnavailable = errors.New("headline source unavailable")
)
