package sos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

func newGame(t *testing.T, size int, mode entity.Mode) *Game {
	t.Helper()

	game, err := New(size, mode)
	require.NoError(t, err)

	return game
}

// snapshot - everything a rejected move must leave untouched.
type snapshot struct {
	Board     entity.Board
	Turn      entity.Player
	Scores    entity.Scores
	MoveCount int
}

func takeSnapshot(game *Game) snapshot {
	return snapshot{
		Board:     game.Board(),
		Turn:      game.Turn(),
		Scores:    game.Scores(),
		MoveCount: game.MoveCount(),
	}
}

func TestNew(t *testing.T) {
	t.Run("Creates an empty game", func(t *testing.T) {
		// Given: a new 4x4 general game
		game := newGame(t, 4, entity.GeneralMode)

		// Then: the game should be in its initial state
		assert.Equal(t, 4, game.Size())
		assert.Equal(t, entity.GeneralMode, game.Mode())
		assert.Equal(t, entity.PlayerBlue, game.Turn())
		assert.Equal(t, entity.Scores{}, game.Scores())
		assert.Equal(t, 0, game.MoveCount())
		assert.False(t, game.IsBoardFull())
		assert.Equal(t, entity.NewBoard(4), game.Board())
	})

	t.Run("Rejects a board smaller than 3", func(t *testing.T) {
		// When: creating a 2x2 game
		game, err := New(2, entity.SimpleMode)

		// Then: ErrInvalidConfiguration should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		assert.Nil(t, game)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		// When: creating a game with a mode outside the enumeration
		game, err := New(3, entity.Mode(7))

		// Then: ErrInvalidConfiguration should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		assert.Nil(t, game)
	})
}

func TestGame_SetBoardSize(t *testing.T) {
	t.Run("Resets the game at the new size", func(t *testing.T) {
		// Given: a general game with a move played
		game := newGame(t, 3, entity.GeneralMode)
		require.True(t, game.MakeMove(0, 0, "S"))

		// When: the size changes to 5
		err := game.SetBoardSize(5)

		// Then: the board is fresh and the mode is kept
		require.NoError(t, err)
		assert.Equal(t, 5, game.Size())
		assert.Equal(t, entity.GeneralMode, game.Mode())
		assert.Equal(t, entity.NewBoard(5), game.Board())
		assert.Equal(t, 0, game.MoveCount())
		assert.Equal(t, entity.PlayerBlue, game.Turn())
	})

	t.Run("Size 2 fails and leaves the board untouched", func(t *testing.T) {
		// Given: a 3x3 game with one move
		game := newGame(t, 3, entity.SimpleMode)
		require.True(t, game.MakeMove(1, 1, "O"))
		before := takeSnapshot(game)

		// When: setting the size to 2
		err := game.SetBoardSize(2)

		// Then: the error is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		assert.Equal(t, 3, game.Size())
		assert.Equal(t, before, takeSnapshot(game))
	})
}

func TestGame_SetMode(t *testing.T) {
	t.Run("Does not reset the board", func(t *testing.T) {
		// Given: a simple game with a move
		game := newGame(t, 3, entity.SimpleMode)
		require.True(t, game.MakeMove(0, 0, "S"))

		// When: switching to general mode
		require.NoError(t, game.SetMode(entity.GeneralMode))

		// Then: the move is still on the board
		assert.Equal(t, entity.GeneralMode, game.Mode())
		assert.Equal(t, entity.S, game.Cell(0, 0))
		assert.Equal(t, 1, game.MoveCount())
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		game := newGame(t, 3, entity.GeneralMode)

		err := game.SetMode(entity.Mode(42))

		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		assert.Equal(t, entity.GeneralMode, game.Mode())
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a general game with a scored move
	game := newGame(t, 4, entity.GeneralMode)
	require.True(t, game.MakeMove(0, 0, "S"))
	require.True(t, game.MakeMove(0, 1, "O"))
	require.True(t, game.MakeMove(0, 2, "S"))
	require.Equal(t, 1, game.Scores().Blue)

	// When: the game is reset twice
	game.Reset()
	game.Reset()

	// Then: the game is back to its initial state with size and mode unchanged
	assert.Equal(t, entity.NewBoard(4), game.Board())
	assert.Equal(t, entity.PlayerBlue, game.Turn())
	assert.Equal(t, entity.Scores{}, game.Scores())
	assert.Equal(t, 0, game.MoveCount())
	assert.Equal(t, 4, game.Size())
	assert.Equal(t, entity.GeneralMode, game.Mode())
}

func TestGame_BoardAfterReset(t *testing.T) {
	game := newGame(t, 3, entity.SimpleMode)

	for size := 3; size <= 20; size++ {
		require.NoError(t, game.SetBoardSize(size))
		require.True(t, game.MakeMove(size-1, size-1, "O"))

		game.Reset()

		board := game.Board()
		assert.Len(t, board, size)
		assert.Equal(t, entity.NewBoard(size), board, "size %d", size)
		assert.False(t, game.IsBoardFull())
	}
}

func TestGame_Queries(t *testing.T) {
	game := newGame(t, 3, entity.SimpleMode)
	require.True(t, game.MakeMove(2, 0, "s"))

	tests := []struct {
		name      string
		r, c      int
		inBounds  bool
		empty     bool
		symbol    entity.Symbol
		onTheGrid bool
	}{
		{name: "empty cell", r: 0, c: 0, inBounds: true, empty: true, symbol: entity.Empty, onTheGrid: true},
		{name: "occupied cell", r: 2, c: 0, inBounds: true, empty: false, symbol: entity.S, onTheGrid: true},
		{name: "negative row", r: -1, c: 0},
		{name: "column past the edge", r: 0, c: 3},
		{name: "row past the edge", r: 3, c: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inBounds, game.InBounds(tt.r, tt.c))
			assert.Equal(t, tt.empty, game.CellEmpty(tt.r, tt.c))
			assert.Equal(t, tt.symbol, game.Cell(tt.r, tt.c))

			symbol, ok := game.Lookup(tt.r, tt.c)
			assert.Equal(t, tt.onTheGrid, ok)
			assert.Equal(t, tt.symbol, symbol)
		})
	}
}

func TestGame_BoardIsACopy(t *testing.T) {
	// Given: a game and a snapshot of its board
	game := newGame(t, 3, entity.SimpleMode)
	board := game.Board()

	// When: the snapshot is modified
	board[1][1] = entity.O

	// Then: the game is unaffected
	assert.True(t, game.CellEmpty(1, 1))
	assert.Equal(t, 0, game.MoveCount())
}

func TestGame_MakeMove(t *testing.T) {
	t.Run("Simple mode scenario", func(t *testing.T) {
		// Given: a simple 3x3 game
		game := newGame(t, 3, entity.SimpleMode)

		// When: blue places S at (0,0)
		require.True(t, game.MakeMove(0, 0, "S"))

		// Then: it is red's turn
		assert.Equal(t, entity.PlayerRed, game.Turn())

		// When: red places O at (1,1)
		require.True(t, game.MakeMove(1, 1, "O"))

		// Then: it is blue's turn again
		assert.Equal(t, entity.PlayerBlue, game.Turn())
		assert.Equal(t, entity.O, game.Cell(1, 1))
	})

	t.Run("Normalizes the symbol", func(t *testing.T) {
		game := newGame(t, 3, entity.SimpleMode)

		require.True(t, game.MakeMove(0, 0, "  o "))

		assert.Equal(t, entity.O, game.Cell(0, 0))
	})

	t.Run("Rejections leave the game unchanged", func(t *testing.T) {
		tests := []struct {
			name   string
			r, c   int
			symbol string
		}{
			{name: "occupied cell", r: 0, c: 0, symbol: "O"},
			{name: "out of bounds", r: 3, c: 0, symbol: "S"},
			{name: "negative column", r: 0, c: -1, symbol: "S"},
			{name: "unknown symbol", r: 1, c: 1, symbol: "X"},
			{name: "empty symbol", r: 1, c: 1, symbol: "   "},
			{name: "two symbols", r: 1, c: 1, symbol: "SO"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Given: a general game with one move played
				game := newGame(t, 3, entity.GeneralMode)
				require.True(t, game.MakeMove(0, 0, "S"))
				before := takeSnapshot(game)

				// When: an invalid move is made
				ok := game.MakeMove(tt.r, tt.c, tt.symbol)

				// Then: the move is rejected and nothing changed
				assert.False(t, ok)
				assert.Equal(t, before, takeSnapshot(game))
			})
		}
	})

	t.Run("Place rejects the empty symbol", func(t *testing.T) {
		game := newGame(t, 3, entity.SimpleMode)

		_, ok := game.Place(0, 0, entity.Empty)

		assert.False(t, ok)
		assert.Equal(t, 0, game.MoveCount())
	})

	t.Run("Simple mode never scores and always alternates", func(t *testing.T) {
		// Given: a simple game where S-O-S lines will be formed
		game := newGame(t, 3, entity.SimpleMode)
		moves := []struct {
			r, c   int
			symbol string
		}{
			{0, 0, "S"}, {0, 1, "O"}, {0, 2, "S"},
			{1, 0, "O"}, {2, 0, "S"}, {1, 1, "O"},
			{2, 2, "S"}, {1, 2, "O"}, {2, 1, "S"},
		}

		expected := entity.PlayerBlue
		for _, m := range moves {
			// When: each move is played
			require.True(t, game.MakeMove(m.r, m.c, m.symbol))
			expected = expected.Other()

			// Then: the turn toggles regardless of the board
			assert.Equal(t, expected, game.Turn())
			assert.Equal(t, entity.Scores{}, game.Scores())
		}

		assert.True(t, game.IsBoardFull())
	})

	t.Run("General mode scenario", func(t *testing.T) {
		// Given: a general 3x3 game
		game := newGame(t, 3, entity.GeneralMode)

		// When: blue plays S at (0,0), red plays O at (1,1)
		require.True(t, game.MakeMove(0, 0, "S"))
		assert.Equal(t, entity.PlayerRed, game.Turn())
		require.True(t, game.MakeMove(1, 1, "O"))
		assert.Equal(t, entity.PlayerBlue, game.Turn())

		// When: blue completes the diagonal with S at (2,2)
		move, ok := game.Place(2, 2, entity.S)

		// Then: blue gets exactly one point and keeps the turn
		require.True(t, ok)
		assert.Equal(t, entity.Move{Player: entity.PlayerBlue, Row: 2, Col: 2, Symbol: entity.S, Points: 1}, move)
		assert.Equal(t, entity.Scores{Blue: 1}, game.Scores())
		assert.Equal(t, entity.PlayerBlue, game.Turn())
	})

	t.Run("Completing with O does not score", func(t *testing.T) {
		// Given: S at both ends of a row
		game := newGame(t, 3, entity.GeneralMode)
		require.True(t, game.MakeMove(0, 0, "S"))
		require.True(t, game.MakeMove(0, 2, "S"))

		// When: blue plays O in the middle
		move, ok := game.Place(0, 1, entity.O)

		// Then: nothing is scored and the turn passes
		require.True(t, ok)
		assert.Equal(t, 0, move.Points)
		assert.Equal(t, entity.PlayerRed, game.Turn())
	})
}

func TestGame_MoveCountMatchesBoard(t *testing.T) {
	game := newGame(t, 4, entity.GeneralMode)
	symbols := []string{"S", "O"}

	attempts := 0
	for r := -1; r <= 4; r++ {
		for c := -1; c <= 4; c++ {
			attempts++
			game.MakeMove(r, c, symbols[attempts%2])
			game.MakeMove(r, c, "S")

			assert.Equal(t, game.Board().Filled(), game.MoveCount())
			assert.Equal(t, game.MoveCount() == 16, game.IsBoardFull())
		}
	}

	assert.True(t, game.IsBoardFull())
	assert.False(t, game.MakeMove(0, 0, "S"))
}

func TestGame_Result(t *testing.T) {
	fill := func(t *testing.T, game *Game, rows []string) {
		t.Helper()
		for r, row := range rows {
			for c, symbol := range row {
				require.True(t, game.MakeMove(r, c, string(symbol)), "move (%d,%d)", r, c)
			}
		}
	}

	t.Run("Ongoing until the board is full", func(t *testing.T) {
		game := newGame(t, 3, entity.GeneralMode)
		require.True(t, game.MakeMove(0, 0, "S"))

		result := game.Result()

		assert.Equal(t, entity.OutcomeOngoing, result.Outcome)
		assert.False(t, result.IsFinished())
	})

	t.Run("Simple game ends without a winner", func(t *testing.T) {
		game := newGame(t, 3, entity.SimpleMode)
		fill(t, game, []string{"SSS", "SSS", "SSS"})

		result := game.Result()

		assert.Equal(t, entity.OutcomeFull, result.Outcome)
		_, ok := result.Winner()
		assert.False(t, ok)
	})

	t.Run("General game without points is a tie", func(t *testing.T) {
		game := newGame(t, 3, entity.GeneralMode)
		fill(t, game, []string{"OOO", "OOO", "OOO"})

		result := game.Result()

		assert.Equal(t, entity.OutcomeTie, result.Outcome)
		assert.True(t, result.IsFinished())
	})

	t.Run("General game goes to the higher score", func(t *testing.T) {
		// Given: blue completes the top row and the rest of the board is filled with O
		game := newGame(t, 3, entity.GeneralMode)
		require.True(t, game.MakeMove(0, 0, "S"))
		require.True(t, game.MakeMove(0, 1, "O"))
		require.True(t, game.MakeMove(0, 2, "S"))
		require.Equal(t, entity.Scores{Blue: 1}, game.Scores())
		fill(t, game, []string{"", "OOO", "OOO"})

		// When: the result is requested
		result := game.Result()

		// Then: blue wins 1 - 0
		assert.Equal(t, entity.OutcomeBlueWins, result.Outcome)
		winner, ok := result.Winner()
		require.True(t, ok)
		assert.Equal(t, entity.PlayerBlue, winner)
		assert.Equal(t, entity.Scores{Blue: 1}, result.Scores)
	})
}
