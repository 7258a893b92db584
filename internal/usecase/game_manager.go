package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

type gameEngine interface {
	SetBoardSize(size int) error
	SetMode(mode entity.Mode) error
	Reset()

	Place(r, c int, symbol entity.Symbol) (entity.Move, bool)
	InBounds(r, c int) bool

	Size() int
	Mode() entity.Mode
	Board() entity.Board
	Turn() entity.Player
	Scores() entity.Scores
	MoveCount() int
	IsBoardFull() bool
	Result() entity.Result
}

// GameManager - drives one game for the presentation layer and logs what happens to it.
type GameManager struct {
	logger *slog.Logger
	game   gameEngine
}

func NewGameManager(logger *slog.Logger, game gameEngine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		game:   game,
	}
}

// StartNewGame - applies size and mode and starts over. Nothing changes if either is invalid.
func (that *GameManager) StartNewGame(size int, rawMode string) (entity.GameState, error) {
	mode, err := entity.ParseMode(rawMode)
	if err != nil {
		return that.State(), fmt.Errorf("failed to parse mode: %w", err)
	}

	if err = that.game.SetBoardSize(size); err != nil {
		return that.State(), fmt.Errorf("failed to set board size: %w", err)
	}

	if err = that.game.SetMode(mode); err != nil {
		return that.State(), fmt.Errorf("failed to set mode: %w", err)
	}

	that.game.Reset()

	that.logger.Info("New game started", "size", size, "mode", mode.String())

	return that.State(), nil
}

func (that *GameManager) Reset() entity.GameState {
	that.game.Reset()

	that.logger.Info("Game reset", "size", that.game.Size(), "mode", that.game.Mode().String())

	return that.State()
}

// MakeTurn - plays symbol at (row, col) for the current player.
func (that *GameManager) MakeTurn(row, col int, rawSymbol string) (entity.Move, error) {
	if that.game.IsBoardFull() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	symbol, ok := entity.ParseSymbol(rawSymbol)
	if !ok {
		that.logger.Debug("Move rejected", "reason", "symbol", "symbol", rawSymbol)
		return entity.Move{}, fmt.Errorf("%w: symbol must be S or O, got %q", apperror.ErrInvalidMove, rawSymbol)
	}

	move, ok := that.game.Place(row, col, symbol)
	if !ok {
		reason := "cell is already occupied"
		if !that.game.InBounds(row, col) {
			reason = "cell is out of bounds"
		}

		that.logger.Debug("Move rejected", "reason", reason, "row", row, "col", col)

		return entity.Move{}, fmt.Errorf("%w: (%d,%d) %s", apperror.ErrInvalidMove, row, col, reason)
	}

	that.logger.Debug("Move accepted",
		"player", move.Player.String(),
		"row", move.Row,
		"col", move.Col,
		"symbol", move.Symbol.String(),
		"points", move.Points,
	)

	if result := that.game.Result(); result.IsFinished() {
		that.logger.Info("Game finished",
			"outcome", result.Outcome,
			"blue", result.Scores.Blue,
			"red", result.Scores.Red,
		)
	}

	return move, nil
}

func (that *GameManager) State() entity.GameState {
	return entity.GameState{
		Size:      that.game.Size(),
		Mode:      that.game.Mode(),
		Board:     that.game.Board(),
		Turn:      that.game.Turn(),
		Scores:    that.game.Scores(),
		MoveCount: that.game.MoveCount(),
		Result:    that.game.Result(),
	}
}
