package sos

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// Game - the SOS game state machine. It is meant for a single owner and is not safe for concurrent use.
type Game struct {
	size      int
	mode      entity.Mode
	board     entity.Board
	turn      entity.Player
	scores    entity.Scores
	moveCount int
}

func New(size int, mode entity.Mode) (*Game, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	if err := validateMode(mode); err != nil {
		return nil, err
	}

	game := &Game{size: size, mode: mode}
	game.Reset()

	return game, nil
}

// SetBoardSize - changes the board size and starts over. The mode is kept.
func (that *Game) SetBoardSize(size int) error {
	if err := validateSize(size); err != nil {
		return err
	}

	that.size = size
	that.Reset()

	return nil
}

// SetMode - swaps the mode without touching the board.
func (that *Game) SetMode(mode entity.Mode) error {
	if err := validateMode(mode); err != nil {
		return err
	}

	that.mode = mode

	return nil
}

func (that *Game) Reset() {
	that.board = entity.NewBoard(that.size)
	that.turn = entity.PlayerBlue
	that.scores = entity.Scores{}
	that.moveCount = 0
}

func (that *Game) InBounds(r, c int) bool {
	return r >= 0 && r < that.size && c >= 0 && c < that.size
}

func (that *Game) CellEmpty(r, c int) bool {
	return that.InBounds(r, c) && that.board[r][c] == entity.Empty
}

// Cell - returns entity.Empty both for empty and out of bounds cells.
func (that *Game) Cell(r, c int) entity.Symbol {
	symbol, _ := that.Lookup(r, c)
	return symbol
}

// Lookup - like Cell, but ok is false when (r, c) is off the board.
func (that *Game) Lookup(r, c int) (entity.Symbol, bool) {
	if !that.InBounds(r, c) {
		return entity.Empty, false
	}

	return that.board[r][c], true
}

func (that *Game) IsBoardFull() bool {
	return that.moveCount >= that.size*that.size
}

// Board - returns a copy of the grid.
func (that *Game) Board() entity.Board {
	return that.board.Clone()
}

func (that *Game) Size() int {
	return that.size
}

func (that *Game) Mode() entity.Mode {
	return that.mode
}

func (that *Game) Turn() entity.Player {
	return that.turn
}

func (that *Game) Scores() entity.Scores {
	return that.scores
}

func (that *Game) MoveCount() int {
	return that.moveCount
}

// MakeMove - places a symbol given as text. Returns false and leaves the game untouched when the move is rejected.
func (that *Game) MakeMove(r, c int, symbol string) bool {
	parsed, ok := entity.ParseSymbol(symbol)
	if !ok {
		return false
	}

	_, ok = that.Place(r, c, parsed)

	return ok
}

// Place - the typed form of MakeMove that also reports who moved and how many points it scored.
func (that *Game) Place(r, c int, symbol entity.Symbol) (entity.Move, bool) {
	if !symbol.IsPlayable() || !that.CellEmpty(r, c) {
		return entity.Move{}, false
	}

	move := entity.Move{
		Player: that.turn,
		Row:    r,
		Col:    c,
		Symbol: symbol,
	}

	that.board[r][c] = symbol
	that.moveCount++

	if that.mode == entity.GeneralMode {
		move.Points = countSOS(that.board, r, c)
		that.scores.Add(that.turn, move.Points)
	}

	// a scoring player moves again
	if !move.Scored() {
		that.turn = that.turn.Other()
	}

	return move, true
}

// Result - reports the outcome. The game is only decided once the board is full.
func (that *Game) Result() entity.Result {
	result := entity.Result{Outcome: entity.OutcomeOngoing, Scores: that.scores}

	if !that.IsBoardFull() {
		return result
	}

	switch {
	case that.mode == entity.SimpleMode:
		result.Outcome = entity.OutcomeFull
	case that.scores.Blue > that.scores.Red:
		result.Outcome = entity.OutcomeBlueWins
	case that.scores.Red > that.scores.Blue:
		result.Outcome = entity.OutcomeRedWins
	default:
		result.Outcome = entity.OutcomeTie
	}

	return result
}

func validateSize(size int) error {
	if size < entity.MinBoardSize {
		return fmt.Errorf("%w: board size must be >= %d, got %d", apperror.ErrInvalidConfiguration, entity.MinBoardSize, size)
	}

	return nil
}

func validateMode(mode entity.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %s", apperror.ErrInvalidConfiguration, mode)
	}

	return nil
}
