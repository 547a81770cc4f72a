package service

import (
	"fmt"
	"strings"
	"testing"

	"golang-stock-trend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrediction_WellFormed(t *testing.T) {
	text := "Day 1: Direction: UP, Confidence: 82,\n- reason A\n- reason B\n"

	set := ParsePrediction(text, 1)

	require.Len(t, set, 1)
	day := set.Day(1)
	require.NotNil(t, day)
	assert.Equal(t, "UP", day.Trend)
	assert.Equal(t, 82, day.Confidence)
	assert.Equal(t, []string{"reason A", "reason B"}, day.Reasoning)
}

func TestParsePrediction_MultiDay(t *testing.T) {
	text := strings.Join([]string{
		"Day 1: Direction: UP, Confidence: 75,",
		"- momentum is positive",
		"Day 2: Direction: DOWN, Confidence: 61,",
		"- likely pullback",
		"Day 3: Direction: SIDEWAYS, Confidence: 50,",
		"- no clear signal",
	}, "\n")

	set := ParsePrediction(text, 3)

	require.Len(t, set, 3)
	assert.Equal(t, "UP", set.Day(1).Trend)
	assert.Equal(t, "DOWN", set.Day(2).Trend)
	assert.Equal(t, 61, set.Day(2).Confidence)
	assert.Equal(t, []string{"no clear signal"}, set.Day(3).Reasoning)
}

func TestParsePrediction_NoDayLines(t *testing.T) {
	text := "The market looks uncertain.\nNothing to report.\n"

	set := ParsePrediction(text, 3)

	require.Len(t, set, 3)
	for i := 1; i <= 3; i++ {
		day := set.Day(i)
		require.NotNil(t, day, "day %d missing", i)
		assert.Equal(t, "SIDEWAYS", day.Trend)
		assert.Equal(t, 50, day.Confidence)
		assert.Equal(t, []string{"Market unclear"}, day.Reasoning)
	}
}

func TestParsePrediction_MalformedConfidence(t *testing.T) {
	text := "Day 1: Direction: UP, Confidence: ???,\n- something\n"

	set := ParsePrediction(text, 1)

	day := set.Day(1)
	require.NotNil(t, day)
	// Extraction is atomic: a bad confidence also discards the trend.
	assert.Equal(t, "SIDEWAYS", day.Trend)
	assert.Equal(t, 50, day.Confidence)
	assert.Equal(t, []string{"something"}, day.Reasoning)
}

func TestParsePrediction_MissingConfidenceMarker(t *testing.T) {
	text := "Day 1: Direction: UP\n"

	set := ParsePrediction(text, 1)

	day := set.Day(1)
	require.NotNil(t, day)
	assert.Equal(t, "SIDEWAYS", day.Trend)
	assert.Equal(t, 50, day.Confidence)
	assert.Empty(t, day.Reasoning)
}

func TestParsePrediction_PartialResponseFillsGaps(t *testing.T) {
	text := "Day 2: Direction: DOWN, Confidence: 90,\n- bad earnings\n"

	set := ParsePrediction(text, 3)

	require.Len(t, set, 3)
	assert.Equal(t, "DOWN", set.Day(2).Trend)
	assert.Equal(t, []string{"Market unclear"}, set.Day(1).Reasoning)
	assert.Equal(t, []string{"Market unclear"}, set.Day(3).Reasoning)
}

func TestParsePrediction_DuplicateLabelsLastWins(t *testing.T) {
	text := strings.Join([]string{
		"Day 1: Direction: UP, Confidence: 70,",
		"Day 1: Direction: DOWN, Confidence: 65,",
	}, "\n")

	set := ParsePrediction(text, 1)

	require.Len(t, set, 1)
	assert.Equal(t, "DOWN", set.Day(1).Trend)
	assert.Equal(t, 65, set.Day(1).Confidence)
}

func TestParsePrediction_OutOfRangeLabelKept(t *testing.T) {
	text := "Day 9: Direction: UP, Confidence: 77,\n"

	set := ParsePrediction(text, 2)

	require.Len(t, set, 3)
	assert.Equal(t, "UP", set["Day 9"].Trend)
	assert.Equal(t, "SIDEWAYS", set.Day(1).Trend)
	assert.Equal(t, "SIDEWAYS", set.Day(2).Trend)
}

func TestParsePrediction_CaseInsensitiveDayPrefix(t *testing.T) {
	text := "day 1: Direction: UP, Confidence: 66,\n"

	set := ParsePrediction(text, 1)

	// The label is taken verbatim, so "day 1" does not fill the canonical
	// "Day 1" slot; the completion pass synthesizes it.
	require.Len(t, set, 2)
	assert.Equal(t, "UP", set["day 1"].Trend)
	assert.Equal(t, "SIDEWAYS", set.Day(1).Trend)
}

func TestParsePrediction_BulletWithoutOpenDayIgnored(t *testing.T) {
	text := "- orphan bullet\nDay 1: Direction: UP, Confidence: 80,\n"

	set := ParsePrediction(text, 1)

	assert.Empty(t, set.Day(1).Reasoning)
}

func TestParsePrediction_PassThroughLowConfidenceTrend(t *testing.T) {
	text := "Day 1: Direction: UP, Confidence: 30,\n"

	set := ParsePrediction(text, 1)

	// The parser transcribes; the confidence<60 rule is a prompt
	// instruction, not a parser rewrite.
	assert.Equal(t, "UP", set.Day(1).Trend)
	assert.Equal(t, 30, set.Day(1).Confidence)
}

func TestParsePrediction_RequestedFormatRoundTrip(t *testing.T) {
	for horizon := 1; horizon <= 7; horizon++ {
		var b strings.Builder
		for i := 1; i <= horizon; i++ {
			fmt.Fprintf(&b, "%s: Direction: UP, Confidence: 75,\n- Bullet 1\n- Bullet 2\n", entity.DayKey(i))
		}

		set := ParsePrediction(b.String(), horizon)

		assert.Len(t, set, horizon, "horizon %d", horizon)
		for i := 1; i <= horizon; i++ {
			require.NotNil(t, set.Day(i))
			assert.Equal(t, "UP", set.Day(i).Trend)
		}
	}
}
