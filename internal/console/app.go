package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/divin-k/guessquest/internal/model"
	"github.com/divin-k/guessquest/internal/services/auth"
	"github.com/divin-k/guessquest/internal/services/game"
	"github.com/divin-k/guessquest/internal/services/ledger"
	"github.com/divin-k/guessquest/internal/validation"
)

var errInputClosed = errors.New("input closed")

// App drives the interactive menu flow: auth menu, level menu, guess
// loop, leaderboard display. The authenticated player is threaded through
// explicitly rather than held in package state. All prompts are strictly
// sequential; a storage failure ends the loop with an error.
type App struct {
	scanner *bufio.Scanner
	out     io.Writer
	auth    *auth.Service
	game    *game.Controller
	ledger  *ledger.Service
	logger  *slog.Logger
}

// New creates a console App reading prompts from in and writing to out
func New(
	in io.Reader,
	out io.Writer,
	authService *auth.Service,
	gameController *game.Controller,
	ledgerService *ledger.Service,
	logger *slog.Logger,
) *App {
	return &App{
		scanner: bufio.NewScanner(in),
		out:     out,
		auth:    authService,
		game:    gameController,
		ledger:  ledgerService,
		logger:  logger,
	}
}

// Run executes the interactive flow until the player exits via the level
// menu, the input is closed, or a storage error occurs
func (a *App) Run(ctx context.Context) error {
	err := a.run(ctx)
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func (a *App) run(ctx context.Context) error {
	player, err := a.authLoop(ctx)
	if err != nil {
		return err
	}
	return a.levelLoop(ctx, player)
}

// prompt writes the label and reads one line of input
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return a.scanner.Text(), nil
}

// authLoop shows the auth menu until a login succeeds
func (a *App) authLoop(ctx context.Context) (*model.Player, error) {
	for {
		fmt.Fprintln(a.out, "Welcome to Number Guessing Game")
		fmt.Fprintln(a.out, "1. Register")
		fmt.Fprintln(a.out, "2. Login")

		choice, err := a.prompt("Choose an option: ")
		if err != nil {
			return nil, err
		}

		switch choice {
		case "1":
			if err := a.register(ctx); err != nil {
				return nil, err
			}
		case "2":
			player, err := a.login(ctx)
			if err != nil {
				return nil, err
			}
			if player != nil {
				return player, nil
			}
		default:
			fmt.Fprintln(a.out, "Invalid choice!")
			fmt.Fprintln(a.out)
		}
	}
}

// register runs the registration flow. Validation and auth failures print
// a message and return nil so the auth menu is shown again; only storage
// failures propagate.
func (a *App) register(ctx context.Context) error {
	username, err := a.prompt("Enter username: ")
	if err != nil {
		return err
	}
	if !validation.IsNonEmptyText(username) {
		fmt.Fprintln(a.out, "Username cannot be empty")
		fmt.Fprintln(a.out)
		return nil
	}

	// Duplicate check happens before the password prompt, matching the
	// prompt ordering contract
	taken, err := a.auth.UsernameTaken(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		fmt.Fprintln(a.out, "Username already exists")
		fmt.Fprintln(a.out)
		return nil
	}

	password, err := a.prompt("Enter password: ")
	if err != nil {
		return err
	}
	if !validation.IsNonEmptyText(password) {
		fmt.Fprintln(a.out, "Password cannot be empty")
		fmt.Fprintln(a.out)
		return nil
	}

	if _, err := a.auth.Register(ctx, username, password); err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			fmt.Fprintln(a.out, "Username already exists")
			fmt.Fprintln(a.out)
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Registration successful!")
	fmt.Fprintln(a.out)
	return nil
}

// login runs the login flow. Returns (nil, nil) on bad credentials so the
// auth menu is shown again.
func (a *App) login(ctx context.Context) (*model.Player, error) {
	username, err := a.prompt("Enter username: ")
	if err != nil {
		return nil, err
	}
	password, err := a.prompt("Enter password: ")
	if err != nil {
		return nil, err
	}

	player, err := a.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid credentials")
			fmt.Fprintln(a.out)
			return nil, nil
		}
		return nil, err
	}

	fmt.Fprintf(a.out, "\nWelcome %s! Login successful.\n\n", player.Username)
	return player, nil
}

// levelLoop shows the level menu until the player exits
func (a *App) levelLoop(ctx context.Context, player *model.Player) error {
	for {
		fmt.Fprintln(a.out, "1. Easy (10 chances)")
		fmt.Fprintln(a.out, "2. Medium (5 chances)")
		fmt.Fprintln(a.out, "3. Hard (3 chances)")
		fmt.Fprintln(a.out, "4. Exit")

		choice, err := a.prompt("Choice: ")
		if err != nil {
			return err
		}

		var level model.Level
		switch choice {
		case "1":
			level = model.LevelEasy
		case "2":
			level = model.LevelMedium
		case "3":
			level = model.LevelHard
		case "4":
			boards, err := a.ledger.AllLevels(ctx, ledger.DisplayLimit)
			if err != nil {
				return err
			}
			RenderFinalLeaderboards(a.out, boards)
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice")
			fmt.Fprintln(a.out)
			continue
		}

		if err := a.play(ctx, player, level); err != nil {
			return err
		}
	}
}

// play runs one guessing session and shows the level leaderboard after
// the terminal outcome. Format and range rejections never consume an
// attempt; they just reprompt.
func (a *App) play(ctx context.Context, player *model.Player, level model.Level) error {
	session := a.game.StartSession(level)

	fmt.Fprintf(a.out, "\n%s Level | Guess between %d and %d\n", level, model.SecretMin, model.SecretMax)

	for session.State() == model.SessionInProgress {
		input, err := a.prompt("Enter your guess: ")
		if err != nil {
			return err
		}

		n, verdict := validation.ClassifyGuess(input)
		switch verdict {
		case validation.GuessDecimal:
			fmt.Fprintf(a.out, "%q is a decimal value. Enter a whole number between %d and %d.\n",
				input, model.SecretMin, model.SecretMax)
			continue
		case validation.GuessNotANumber:
			fmt.Fprintf(a.out, "%q is not a valid number. Enter a whole number between %d and %d.\n",
				input, model.SecretMin, model.SecretMax)
			continue
		}

		if !validation.GuessInRange(n) {
			fmt.Fprintf(a.out, "Number must be between %d and %d\n", model.SecretMin, model.SecretMax)
			continue
		}

		result, err := session.Guess(n)
		if err != nil {
			return err
		}

		switch result.State {
		case model.SessionWon:
			fmt.Fprintf(a.out, "You won in %d attempts!\n\n", result.AttemptsUsed)
		case model.SessionLost:
			fmt.Fprintf(a.out, "Game Over! Number was %d\n\n", result.Secret)
		default:
			if result.TooHigh {
				fmt.Fprintln(a.out, "Too high!")
			} else {
				fmt.Fprintln(a.out, "Too low!")
			}
		}
	}

	if err := a.game.FinishSession(ctx, player.Username, session); err != nil {
		return err
	}

	records, err := a.ledger.TopN(ctx, level, ledger.DisplayLimit)
	if err != nil {
		return err
	}
	RenderLevelLeaderboard(a.out, level, records)
	return nil
}
