package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

const (
	maxWaitDuration = 10 * time.Second

	defaultBoardSize = 3
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game *sos.Game
}

// New - builds a fresh game for one test. The returned context is canceled when the test ends.
func New(t *testing.T, mode entity.Mode) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	game, err := sos.New(defaultBoardSize, mode)
	if err != nil {
		t.Fatalf("could not create game: %v", err)
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Game:   game,
	}
}

// Play - places each move for whoever is on turn and fails the test on the first rejected one.
func (that *Suite) Play(moves ...entity.Move) {
	that.Helper()

	for _, move := range moves {
		if _, ok := that.Game.Place(move.Row, move.Col, move.Symbol); !ok {
			that.Fatalf("move %s at (%d,%d) was rejected", move.Symbol, move.Row, move.Col)
		}
	}
}
