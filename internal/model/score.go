package model

import "time"

// ScoreRecord is a player's best result at a level. There is exactly one
// logical record per (PlayerName, Level) pair; Attempts holds the minimum
// attempt count ever achieved, and AchievedAt is refreshed whenever the
// record is replaced. Earlier AchievedAt ranks higher among equal Attempts.
type ScoreRecord struct {
	PlayerName string
	Level      Level
	Attempts   int
	AchievedAt time.Time
}

// Better reports whether r would replace other under the ledger's
// best-score rule (strictly fewer attempts; equal is not an improvement).
func (r *ScoreRecord) Better(other *ScoreRecord) bool {
	if other == nil {
		return true
	}
	return r.Attempts < other.Attempts
}
