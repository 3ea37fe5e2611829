package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Score errors
	ErrScoreNotFound = errors.New("score not found")

	// Session errors
	ErrSessionFinished    = errors.New("guessing session already finished")
	ErrSessionNotFinished = errors.New("guessing session still in progress")
	ErrGuessOutOfRange    = errors.New("guess out of range")
)
