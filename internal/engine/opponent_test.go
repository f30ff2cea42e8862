package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

// stallingEngine answers the UCI handshake but never finishes a search.
const stallingEngine = `#!/bin/sh
while read line; do
  case "$line" in
    uci) echo "id name stall"; echo "uciok" ;;
    isready) echo "readyok" ;;
    go*) sleep 30 ;;
    quit) exit 0 ;;
  esac
done
`

func writeEngine(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "engine.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestCloseDoesNotWaitForHungSearch(t *testing.T) {
	opp, err := NewUCIOpponent(writeEngine(t, stallingEngine), 100*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err = opp.BestMove(ctx, chess.StartingPosition())
	require.ErrorIs(t, err, context.DeadlineExceeded)

	closed := make(chan error, 1)
	go func() { closed <- opp.Close() }()

	select {
	case <-closed:
	case <-time.After(closeTimeout + 2*time.Second):
		t.Fatal("Close blocked behind the stalled search")
	}

	// A second Close returns at once.
	done := make(chan struct{})
	go func() {
		opp.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second Close blocked")
	}
}
