package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNonEmptyText(t *testing.T) {
	assert.True(t, IsNonEmptyText("alice"))
	assert.True(t, IsNonEmptyText("  a  "))
	assert.False(t, IsNonEmptyText(""))
	assert.False(t, IsNonEmptyText("   "))
	assert.False(t, IsNonEmptyText("\t\n"))
}

func TestClassifyGuess(t *testing.T) {
	tests := []struct {
		input   string
		verdict GuessVerdict
		value   int
	}{
		{"42", GuessValid, 42},
		{"1", GuessValid, 1},
		{"100", GuessValid, 100},
		{"0", GuessValid, 0},
		{"101", GuessValid, 101},
		{"500", GuessValid, 500},
		{"42.5", GuessDecimal, 0},
		{"0.1", GuessDecimal, 0},
		{"abc", GuessNotANumber, 0},
		{"", GuessNotANumber, 0},
		{"-5", GuessNotANumber, 0},
		{"4a", GuessNotANumber, 0},
		{" 42", GuessNotANumber, 0},
		{"42.", GuessNotANumber, 0},
		{".5", GuessNotANumber, 0},
	}

	for _, tt := range tests {
		value, verdict := ClassifyGuess(tt.input)
		assert.Equal(t, tt.verdict, verdict, "input %q", tt.input)
		assert.Equal(t, tt.value, value, "input %q", tt.input)
	}
}

func TestGuessInRange(t *testing.T) {
	assert.True(t, GuessInRange(1))
	assert.True(t, GuessInRange(42))
	assert.True(t, GuessInRange(100))
	assert.False(t, GuessInRange(0))
	assert.False(t, GuessInRange(101))
	assert.False(t, GuessInRange(500))
}
