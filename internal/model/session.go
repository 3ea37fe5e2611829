package model

// SessionState represents the current phase of a guessing session
type SessionState string

const (
	SessionInProgress SessionState = "in_progress"
	SessionWon        SessionState = "won"
	SessionLost       SessionState = "lost"
)

// GuessSession is the turn-based guessing state machine for one game.
// It lives purely in memory and is discarded after a terminal outcome.
type GuessSession struct {
	level             Level
	secret            int
	attemptsRemaining int
	attemptsUsed      int
	state             SessionState
}

// GuessResult is the outcome of consuming one guess
type GuessResult struct {
	State        SessionState
	AttemptsUsed int
	// TooHigh is meaningful only while the session is still in progress
	TooHigh bool
	// Secret is revealed only on a loss
	Secret int
}

// NewGuessSession starts a session at the given level. The secret must
// already be drawn uniformly from [SecretMin, SecretMax].
func NewGuessSession(level Level, secret int) *GuessSession {
	return &GuessSession{
		level:             level,
		secret:            secret,
		attemptsRemaining: level.AttemptBudget(),
		state:             SessionInProgress,
	}
}

func (s *GuessSession) Level() Level        { return s.level }
func (s *GuessSession) State() SessionState { return s.state }
func (s *GuessSession) AttemptsUsed() int   { return s.attemptsUsed }

// AttemptsRemaining returns how many guesses are left
func (s *GuessSession) AttemptsRemaining() int { return s.attemptsRemaining }

// Guess consumes one attempt. A guess outside [SecretMin, SecretMax] is
// rejected without consuming an attempt; callers are expected to have
// validated the format already. The win check happens before the
// exhaustion check, so a correct guess on the final attempt still wins.
func (s *GuessSession) Guess(n int) (GuessResult, error) {
	if s.state != SessionInProgress {
		return GuessResult{}, ErrSessionFinished
	}
	if n < SecretMin || n > SecretMax {
		return GuessResult{}, ErrGuessOutOfRange
	}

	s.attemptsRemaining--
	s.attemptsUsed++

	if n == s.secret {
		s.state = SessionWon
		return GuessResult{State: SessionWon, AttemptsUsed: s.attemptsUsed}, nil
	}

	if s.attemptsRemaining == 0 {
		s.state = SessionLost
		return GuessResult{State: SessionLost, AttemptsUsed: s.attemptsUsed, Secret: s.secret}, nil
	}

	return GuessResult{
		State:        SessionInProgress,
		AttemptsUsed: s.attemptsUsed,
		TooHigh:      n > s.secret,
	}, nil
}
