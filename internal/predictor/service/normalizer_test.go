package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"golang-stock-trend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRows(n int, startClose float64) []entity.PriceRow {
	rows := make([]entity.PriceRow, n)
	base := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range rows {
		close := startClose + float64(i)
		rows[i] = entity.PriceRow{
			Date:   base.AddDate(0, 0, i),
			Open:   close - 0.5,
			High:   close + 1,
			Low:    close - 1,
			Close:  close,
			Volume: int64(1000 + i),
		}
	}
	return rows
}

func TestNormalizeWindow_Empty(t *testing.T) {
	_, err := NormalizeWindow(nil, 5)
	assert.ErrorIs(t, err, entity.ErrDataUnavailable)
}

func TestNormalizeWindow_Length(t *testing.T) {
	for _, tc := range []struct {
		rows     int
		lookback int
		want     int
	}{
		{10, 5, 5},
		{3, 5, 3},
		{7, 7, 7},
		{1, 30, 1},
	} {
		window, err := NormalizeWindow(makeRows(tc.rows, 100), tc.lookback)
		require.NoError(t, err)
		assert.Len(t, window, tc.want, "rows=%d lookback=%d", tc.rows, tc.lookback)
	}
}

func TestNormalizeWindow_SMA7Defined(t *testing.T) {
	window, err := NormalizeWindow(makeRows(10, 100), 10)
	require.NoError(t, err)

	for i, row := range window {
		assert.Greater(t, row.SMA7, 0.0, "row %d", i)
	}
	// First row averages only itself, row 7+ averages a full 7 sessions.
	assert.InDelta(t, 100.0, window[0].SMA7, 1e-9)
	assert.InDelta(t, (100+101+102+103+104+105+106)/7.0, window[6].SMA7, 1e-9)
	assert.InDelta(t, (101+102+103+104+105+106+107)/7.0, window[7].SMA7, 1e-9)
}

func TestNormalizeWindow_SMA7UsesPreTrimHistory(t *testing.T) {
	window, err := NormalizeWindow(makeRows(10, 100), 3)
	require.NoError(t, err)

	require.Len(t, window, 3)
	// The retained tail keeps averages computed over the full input.
	assert.InDelta(t, (103+104+105+106+107+108+109)/7.0, window[2].SMA7, 1e-9)
}

func TestFormatPriceTable(t *testing.T) {
	window, err := NormalizeWindow(makeRows(2, 100), 2)
	require.NoError(t, err)

	table := FormatPriceTable(window)
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date Open High Low Close Volume SMA7", lines[0])
	assert.Equal(t, "2025-01-02 99.50 101.00 99.00 100.00 1000 100.00", lines[1])
	assert.Equal(t, fmt.Sprintf("2025-01-03 100.50 102.00 100.00 101.00 1001 %.2f", 100.5), lines[2])
}
