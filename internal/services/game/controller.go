package game

import (
	"context"
	"log/slog"

	"github.com/divin-k/guessquest/internal/dependencies/random"
	"github.com/divin-k/guessquest/internal/model"
	"github.com/divin-k/guessquest/internal/services/ledger"
)

// Controller manages guessing sessions and hands terminal outcomes to the
// score ledger
type Controller struct {
	ledger *ledger.Service
	random random.Random
	logger *slog.Logger
}

// NewController creates a new game Controller
func NewController(ledger *ledger.Service, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		ledger: ledger,
		random: random,
		logger: logger,
	}
}

// StartSession begins a session at the given level with a secret drawn
// uniformly from [SecretMin, SecretMax]
func (c *Controller) StartSession(level model.Level) *model.GuessSession {
	secret := c.random.Intn(model.SecretMax-model.SecretMin+1) + model.SecretMin

	c.logger.Info("session started",
		slog.String("level", string(level)),
		slog.Int("budget", level.AttemptBudget()),
	)

	return model.NewGuessSession(level, secret)
}

// FinishSession records the session's attempts-used as a best-score
// candidate. Losses are submitted too: a loss uses the full budget, which
// can never beat a prior win, but the candidate call is still made.
func (c *Controller) FinishSession(ctx context.Context, playerName string, session *model.GuessSession) error {
	if session.State() == model.SessionInProgress {
		return model.ErrSessionNotFinished
	}

	_, err := c.ledger.RecordIfBetter(ctx, playerName, session.Level(), session.AttemptsUsed())
	if err != nil {
		return err
	}

	c.logger.Info("session finished",
		slog.String("player", playerName),
		slog.String("level", string(session.Level())),
		slog.String("outcome", string(session.State())),
		slog.Int("attempts_used", session.AttemptsUsed()),
	)
	return nil
}
