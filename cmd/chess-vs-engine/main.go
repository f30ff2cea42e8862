// chess-vs-engine plays white against a UCI engine such as Stockfish.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/sakethpatnayakuni/offline-chess/internal/config"
	"github.com/sakethpatnayakuni/offline-chess/internal/engine"
	"github.com/sakethpatnayakuni/offline-chess/internal/storage"
	"github.com/sakethpatnayakuni/offline-chess/internal/tui"
	"github.com/sakethpatnayakuni/offline-chess/internal/ui"
)

func main() {
	fs := config.NewFlagSet("chess-vs-engine")
	fs.String("engine", "", "path to the UCI engine binary")
	fs.Duration("move-time", 0, "engine search time per move")
	fs.Duration("reply-delay", 0, "pause before the engine replies")
	fs.String("assets", "", "directory holding the piece SVGs")
	showStats := fs.Bool("stats", false, "print game statistics and exit")
	showGame := fs.String("game", "", "print the PGN of a recorded game and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(fs, 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Log.SetupLogging()

	var store *storage.Storage
	if cfg.Storage.Enabled {
		store, err = storage.Open(cfg.Storage.Dir)
		if err != nil {
			log.Warn().Err(err).Msg("storage unavailable, games will not be recorded")
		} else {
			defer store.Close()
		}
	}

	if *showGame != "" {
		if err := printGame(store, *showGame); err != nil {
			log.Fatal().Err(err).Str("id", *showGame).Msg("print game")
		}
		return
	}

	if *showStats {
		if err := printStats(store); err != nil {
			log.Fatal().Err(err).Msg("print stats")
		}
		return
	}

	opp, err := engine.NewUCIOpponent(cfg.Engine.Path, cfg.Engine.MoveTime)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Engine.Path).Msg("failed to start engine")
	}

	g, err := ui.NewVersusGame(engine.NewMatch(chess.White), opp, store, ui.Options{
		TileSize:  cfg.UI.TileSize,
		AssetsDir: cfg.UI.AssetsDir,
		Sound:     cfg.UI.Sound,
	}, cfg.Engine.MoveTime, cfg.Engine.ReplyDelay)
	if err != nil {
		opp.Close()
		log.Fatal().Err(err).Msg("failed to load pieces")
	}

	if err := g.Run(); err != nil {
		g.Close()
		log.Fatal().Err(err).Msg("chess-vs-engine exited")
	}
}

func printStats(store *storage.Storage) error {
	if store == nil {
		return errors.New("storage is disabled")
	}
	stats, err := store.LoadStats()
	if err != nil {
		return err
	}
	records, err := store.ListGameRecords()
	if err != nil {
		return err
	}
	return tui.PrintStats(os.Stdout, stats, records)
}

func printGame(store *storage.Storage, id string) error {
	if store == nil {
		return errors.New("storage is disabled")
	}
	rec, err := store.LoadGameRecord(id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, rec.PGN)
	return err
}
