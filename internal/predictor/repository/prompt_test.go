package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTrendPrompt_Headlines(t *testing.T) {
	prompt := BuildTrendPrompt("AAPL", "Date Open High Low Close Volume SMA7", []string{"first headline", "second headline"}, "context", 3)

	assert.Contains(t, prompt, "1. first headline")
	assert.Contains(t, prompt, "2. second headline")
	assert.Contains(t, prompt, "HISTORICAL PRICE DATA for AAPL:")
	assert.Contains(t, prompt, "Predict each of the next 3 trading days")
	assert.Contains(t, prompt, "...continue through Day 3.")
}

func TestBuildTrendPrompt_NoHeadlines(t *testing.T) {
	prompt := BuildTrendPrompt("AAPL", "table", nil, "context", 1)

	assert.Contains(t, prompt, "(No headlines available)")
}

func TestBuildTrendPrompt_FormatContract(t *testing.T) {
	prompt := BuildTrendPrompt("AAPL", "table", nil, "context", 2)

	// The requested output format must stay parseable by ParsePrediction.
	assert.Contains(t, prompt, "Day 1: Direction: UP, Confidence: 75,")
	assert.Contains(t, prompt, "- Bullet 1")
	assert.Contains(t, prompt, "Direction must be one of [UP, DOWN, SIDEWAYS]")
	assert.Contains(t, prompt, "If confidence < 60%, Direction MUST be SIDEWAYS")
}
