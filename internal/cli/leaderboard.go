package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/divin-k/guessquest/internal/console"
	"github.com/divin-k/guessquest/internal/services/ledger"
)

func newLeaderboardCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the combined leaderboards without playing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			app, err := buildApp(cfg, logger)
			if err != nil {
				logger.Error("failed to create application", slog.String("error", err.Error()))
				return err
			}

			boards, err := app.LedgerService.AllLevels(cmd.Context(), ledger.DisplayLimit)
			if err != nil {
				logger.Error("failed to fetch leaderboards", slog.String("error", err.Error()))
				return err
			}

			console.RenderFinalLeaderboards(os.Stdout, boards)
			return nil
		},
	}
}
