package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuessSessionBudgets(t *testing.T) {
	assert.Equal(t, 10, NewGuessSession(LevelEasy, 50).AttemptsRemaining())
	assert.Equal(t, 5, NewGuessSession(LevelMedium, 50).AttemptsRemaining())
	assert.Equal(t, 3, NewGuessSession(LevelHard, 50).AttemptsRemaining())
}

func TestGuessWinImmediately(t *testing.T) {
	s := NewGuessSession(LevelEasy, 42)

	result, err := s.Guess(42)
	require.NoError(t, err)

	assert.Equal(t, SessionWon, result.State)
	assert.Equal(t, 1, result.AttemptsUsed)
	assert.Equal(t, SessionWon, s.State())
}

func TestGuessHints(t *testing.T) {
	s := NewGuessSession(LevelEasy, 42)

	result, err := s.Guess(50)
	require.NoError(t, err)
	assert.Equal(t, SessionInProgress, result.State)
	assert.True(t, result.TooHigh)

	result, err = s.Guess(10)
	require.NoError(t, err)
	assert.Equal(t, SessionInProgress, result.State)
	assert.False(t, result.TooHigh)

	assert.Equal(t, 2, s.AttemptsUsed())
	assert.Equal(t, 8, s.AttemptsRemaining())
}

func TestGuessLossAfterExhaustion(t *testing.T) {
	s := NewGuessSession(LevelHard, 42)

	for _, g := range []int{1, 2} {
		result, err := s.Guess(g)
		require.NoError(t, err)
		assert.Equal(t, SessionInProgress, result.State)
	}

	result, err := s.Guess(3)
	require.NoError(t, err)
	assert.Equal(t, SessionLost, result.State)
	assert.Equal(t, 42, result.Secret, "secret is revealed on loss")
	assert.Equal(t, 3, result.AttemptsUsed)
}

func TestGuessWinOnFinalAttempt(t *testing.T) {
	s := NewGuessSession(LevelHard, 42)

	_, _ = s.Guess(1)
	_, _ = s.Guess(2)

	result, err := s.Guess(42)
	require.NoError(t, err)
	assert.Equal(t, SessionWon, result.State, "win is checked before exhaustion")
	assert.Equal(t, 3, result.AttemptsUsed)
}

func TestGuessOutOfRangeDoesNotConsumeAttempt(t *testing.T) {
	s := NewGuessSession(LevelHard, 42)

	_, err := s.Guess(0)
	assert.ErrorIs(t, err, ErrGuessOutOfRange)

	_, err = s.Guess(101)
	assert.ErrorIs(t, err, ErrGuessOutOfRange)

	assert.Equal(t, 0, s.AttemptsUsed())
	assert.Equal(t, 3, s.AttemptsRemaining())
}

func TestGuessOnFinishedSession(t *testing.T) {
	s := NewGuessSession(LevelEasy, 42)
	_, _ = s.Guess(42)

	_, err := s.Guess(42)
	assert.ErrorIs(t, err, ErrSessionFinished)
}
