package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/notnil/chess"
	"github.com/notnil/chess/uci"
	"github.com/rs/zerolog/log"
)

var (
	// ErrNoMove is returned when the engine produced no move.
	ErrNoMove = errors.New("engine returned no move")
	// ErrCloseTimeout is returned when the engine process does not stop in time.
	ErrCloseTimeout = errors.New("engine did not stop in time")
)

// closeTimeout bounds how long Close waits for the engine process.
const closeTimeout = 2 * time.Second

// Opponent picks moves for the non-human side.
type Opponent interface {
	BestMove(ctx context.Context, pos *chess.Position) (*chess.Move, error)
	Close() error
}

// UCIOpponent drives an external UCI engine process such as Stockfish.
type UCIOpponent struct {
	mu       sync.Mutex // held for the duration of one search
	eng      *uci.Engine
	moveTime time.Duration

	closeOnce sync.Once
	closeErr  error
}

// NewUCIOpponent starts the engine at path and performs the UCI handshake.
// It fails when the process cannot be started or does not answer.
func NewUCIOpponent(path string, moveTime time.Duration) (*UCIOpponent, error) {
	eng, err := uci.New(path)
	if err != nil {
		return nil, fmt.Errorf("start engine %s: %w", path, err)
	}
	if err := eng.Run(uci.CmdUCI, uci.CmdIsReady, uci.CmdUCINewGame); err != nil {
		eng.Close()
		return nil, fmt.Errorf("engine handshake: %w", err)
	}

	log.Info().Str("path", path).Dur("move_time", moveTime).Msg("engine started")
	return &UCIOpponent{eng: eng, moveTime: moveTime}, nil
}

// BestMove searches pos for the configured move time. If ctx ends first the
// search keeps running in the engine but its result is discarded.
func (o *UCIOpponent) BestMove(ctx context.Context, pos *chess.Position) (*chess.Move, error) {
	type result struct {
		move *chess.Move
		err  error
	}
	done := make(chan result, 1)

	go func() {
		o.mu.Lock()
		defer o.mu.Unlock()

		cmdPos := uci.CmdPosition{Position: pos}
		cmdGo := uci.CmdGo{MoveTime: o.moveTime}
		if err := o.eng.Run(cmdPos, cmdGo); err != nil {
			done <- result{err: fmt.Errorf("engine search: %w", err)}
			return
		}
		mv := o.eng.SearchResults().BestMove
		if mv == nil {
			done <- result{err: ErrNoMove}
			return
		}
		done <- result{move: mv}
	}()

	select {
	case r := <-done:
		return r.move, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the engine process. It does not wait for a running search,
// which may never finish if the engine hangs, and gives up after
// closeTimeout. Later calls return the first result.
func (o *UCIOpponent) Close() error {
	o.closeOnce.Do(func() {
		done := make(chan error, 1)
		go func() { done <- o.eng.Close() }()

		select {
		case o.closeErr = <-done:
		case <-time.After(closeTimeout):
			o.closeErr = ErrCloseTimeout
		}
		if o.closeErr != nil {
			log.Warn().Err(o.closeErr).Msg("engine close")
		}
	})
	return o.closeErr
}

// RequestMove asks opp for a move on a goroutine after delay and delivers the
// result on the returned channel. The search is bounded by timeout.
func RequestMove(ctx context.Context, opp Opponent, pos *chess.Position, delay, timeout time.Duration) <-chan MoveResult {
	out := make(chan MoveResult, 1)
	go func() {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			out <- MoveResult{Err: ctx.Err()}
			return
		}

		searchCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		mv, err := opp.BestMove(searchCtx, pos)
		out <- MoveResult{Move: mv, Err: err}
	}()
	return out
}

// MoveResult is the outcome of an asynchronous engine search.
type MoveResult struct {
	Move *chess.Move
	Err  error
}
