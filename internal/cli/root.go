package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/divin-k/guessquest/internal/console"
	"github.com/divin-k/guessquest/internal/factory"
	redisstorage "github.com/divin-k/guessquest/internal/storage/redis"
)

// NewRootCmd creates the root command. Running it with no subcommand
// starts the interactive game.
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "guessquest",
		Short: "Console number-guessing game with accounts and leaderboards",
		Long: `guessquest is a console number-guessing game.

Register or log in, pick a difficulty, and guess the secret number within
the attempt budget. Your best attempt count per level is persisted and
shown on top-3 leaderboards.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, cfg)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType,
		"Storage backend: memory, redis (env: GUESSQUEST_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL,
		"Redis connection URL (env: REDIS_URL)")

	rootCmd.AddCommand(newLeaderboardCmd(cfg))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the application logger. Logs go to stderr so they
// don't interleave with the game's prompts on stdout.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// buildApp wires the application. A storage connection failure here is
// fatal: the error propagates before any menu is shown.
func buildApp(cfg *Config, logger *slog.Logger) (*factory.App, error) {
	fcfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		fcfg.RedisConfig = &redisCfg
	}

	return factory.New(fcfg)
}

func runGame(cmd *cobra.Command, cfg *Config) error {
	logger := newLogger()

	app, err := buildApp(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}

	game := console.New(os.Stdin, os.Stdout,
		app.AuthService,
		app.GameController,
		app.LedgerService,
		logger,
	)

	if err := game.Run(cmd.Context()); err != nil {
		logger.Error("session ended with error", slog.String("error", err.Error()))
		return err
	}
	return nil
}
