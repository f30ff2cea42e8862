// offline-chess is a two-player chess board for one screen.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/sakethpatnayakuni/offline-chess/internal/config"
	"github.com/sakethpatnayakuni/offline-chess/internal/game"
	"github.com/sakethpatnayakuni/offline-chess/internal/storage"
	"github.com/sakethpatnayakuni/offline-chess/internal/tui"
	"github.com/sakethpatnayakuni/offline-chess/internal/ui"
)

func main() {
	fs := config.NewFlagSet("offline-chess")
	fs.String("frontend", "", "desktop or terminal")
	fs.String("glyph-font", "", "TrueType font with chess glyphs")
	fresh := fs.Bool("new", false, "start a new game instead of resuming")
	printOnly := fs.Bool("print", false, "print the board and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(fs, 80)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Log.SetupLogging()

	var store *storage.Storage
	if cfg.Storage.Enabled {
		store, err = storage.Open(cfg.Storage.Dir)
		if err != nil {
			log.Warn().Err(err).Msg("storage unavailable, game will not be saved")
		} else {
			defer store.Close()
		}
	}

	session := resume(store, *fresh)

	if *printOnly {
		if err := tui.PrintBoard(os.Stdout, session.Board()); err != nil {
			log.Fatal().Err(err).Msg("print board")
		}
		return
	}

	switch cfg.UI.Frontend {
	case config.FrontendTerminal:
		err = tui.New(session).Run()
		if store != nil {
			if serr := store.SaveOfflineGame(session.Snapshot()); serr != nil {
				log.Warn().Err(serr).Msg("failed to save game")
			}
		}
	default:
		err = ui.NewOfflineGame(session, store, ui.Options{
			TileSize:  cfg.UI.TileSize,
			GlyphFont: cfg.UI.GlyphFont,
			Sound:     cfg.UI.Sound,
		}).Run()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("offline-chess exited")
	}
}

// resume restores the last saved game, or starts a new one.
func resume(store *storage.Storage, fresh bool) *game.Session {
	if store == nil {
		return game.NewSession()
	}
	if fresh {
		if err := store.ClearOfflineGame(); err != nil {
			log.Warn().Err(err).Msg("failed to clear saved game")
		}
		return game.NewSession()
	}

	snap, err := store.LoadOfflineGame()
	if errors.Is(err, storage.ErrNotFound) {
		return game.NewSession()
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to load saved game")
		return game.NewSession()
	}

	session, err := game.Restore(snap)
	if err != nil {
		log.Warn().Err(err).Msg("saved game is corrupt, starting over")
		return game.NewSession()
	}
	log.Info().
		Int("moves", len(session.History())).
		Int("pieces", session.Board().Count()).
		Msg("resumed saved game")
	return session
}
