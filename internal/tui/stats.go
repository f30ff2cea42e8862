package tui

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/sakethpatnayakuni/offline-chess/internal/storage"
)

var (
	winText  = color.New(color.FgGreen)
	lossText = color.New(color.FgRed)
	drawText = color.New(color.FgYellow)
)

// PrintStats writes the aggregate results followed by one line per game,
// starting with the game's ID.
func PrintStats(w io.Writer, stats *storage.GameStats, records []*storage.GameRecord) error {
	_, err := fmt.Fprintf(w, "Games: %d  Wins: %d  Losses: %d  Draws: %d  Win rate: %.1f%%\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.GetWinRate())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Streak: %d  Best streak: %d  Play time: %s\n",
		stats.CurrentStreak, stats.LongestWinStrk, stats.TotalPlayTime.Round(time.Second))
	if err != nil {
		return err
	}

	methods := make([]string, 0, len(stats.ByMethod))
	for m := range stats.ByMethod {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	for _, m := range methods {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", m, stats.ByMethod[m]); err != nil {
			return err
		}
	}

	for _, rec := range records {
		c := lossText
		switch rec.Result {
		case storage.ResultWin:
			c = winText
		case storage.ResultDraw:
			c = drawText
		}
		_, err := fmt.Fprintf(w, "%s  %s  %s  ", rec.ID, rec.Started.Format(time.DateTime), rec.Outcome)
		if err != nil {
			return err
		}
		if _, err := c.Fprintf(w, "%-4s", rec.Result); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s\n", rec.Method); err != nil {
			return err
		}
	}
	return nil
}
