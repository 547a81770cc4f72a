package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde\n... (truncated)", Truncate("abcdefgh", 5))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "82", DigitsOnly(" 82% "))
	assert.Equal(t, "", DigitsOnly("???"))
	assert.Equal(t, "1005", DigitsOnly("10a0b5"))
}
