package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/divin-k/guessquest/internal/model"
	"github.com/divin-k/guessquest/internal/services/ledger"
)

// RenderLevelLeaderboard writes the top rankings for one level
func RenderLevelLeaderboard(w io.Writer, level model.Level, records []*model.ScoreRecord) {
	fmt.Fprintf(w, "\n%s LEADERBOARD\n", strings.ToUpper(string(level)))
	if len(records) == 0 {
		fmt.Fprintln(w, "No players yet")
	} else {
		for i, r := range records {
			fmt.Fprintf(w, "%d. %s - %d attempts\n", i+1, r.PlayerName, r.Attempts)
		}
	}
	fmt.Fprintln(w)
}

// RenderFinalLeaderboards writes the combined view across all levels
func RenderFinalLeaderboards(w io.Writer, boards []ledger.LevelBoard) {
	fmt.Fprintln(w, "\nFINAL LEADERBOARDS")
	for _, board := range boards {
		fmt.Fprintf(w, "\n%s-level\n", board.Level)
		if len(board.Records) == 0 {
			fmt.Fprintln(w, "No players yet")
		} else {
			for i, r := range board.Records {
				fmt.Fprintf(w, "%d. %s - %d\n", i+1, r.PlayerName, r.Attempts)
			}
		}
	}
}
