package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
)

var ErrWrongArguments = errors.New("wrong arguments")

const helpText = `Commands:
  move <row> <col> <S|O>       place a symbol for the current player
  new <size> <simple|general>  start a new game
  reset                        start over with the same settings
  board                        show the board
  score                        show the scores
  help                         show this help
  quit                         leave the game
`

func (that *Server) handleMove(args []string, out io.Writer) error {
	if len(args) != 3 {
		return reportError(out, fmt.Errorf("%w: usage: move <row> <col> <S|O>", ErrWrongArguments))
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return reportError(out, fmt.Errorf("%w: row %q is not a number", ErrWrongArguments, args[0]))
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return reportError(out, fmt.Errorf("%w: column %q is not a number", ErrWrongArguments, args[1]))
	}

	move, err := that.uGame.MakeTurn(row, col, args[2])
	switch {
	case errors.Is(err, apperror.ErrInvalidMove):
		_, err = fmt.Fprintf(out, "Invalid move at (%d,%d). Try again. (%v)\n", row, col, err)
		return err
	case err != nil:
		return reportError(out, err)
	}

	state := that.uGame.State()

	if _, err = fmt.Fprintf(out, "%s placed by %s at (%d,%d).\n", move.Symbol, move.Player, move.Row, move.Col); err != nil {
		return err
	}

	if move.Scored() {
		if _, err = fmt.Fprintf(out, "%s scored %d and plays again.\n", move.Player, move.Points); err != nil {
			return err
		}
	}

	if _, err = io.WriteString(out, renderState(state)); err != nil {
		return err
	}

	if state.Result.IsFinished() {
		_, err = fmt.Fprintf(out, "Game over: %s\n", renderResult(state.Mode, state.Result))
		return err
	}

	return nil
}

func (that *Server) handleNewGame(args []string, out io.Writer) error {
	if len(args) != 2 {
		return reportError(out, fmt.Errorf("%w: usage: new <size> <simple|general>", ErrWrongArguments))
	}

	size, err := strconv.Atoi(args[0])
	if err != nil {
		return reportError(out, fmt.Errorf("%w: size %q is not a number", ErrWrongArguments, args[0]))
	}

	state, err := that.uGame.StartNewGame(size, args[1])
	if err != nil {
		return reportError(out, err)
	}

	if _, err = fmt.Fprintf(out, "Started %s game (%dx%d)\n", state.Mode, state.Size, state.Size); err != nil {
		return err
	}

	_, err = io.WriteString(out, renderState(state))

	return err
}

func (that *Server) handleReset(_ []string, out io.Writer) error {
	_, err := io.WriteString(out, renderState(that.uGame.Reset()))
	return err
}

func (that *Server) handleBoard(_ []string, out io.Writer) error {
	_, err := io.WriteString(out, renderState(that.uGame.State()))
	return err
}

func (that *Server) handleScore(_ []string, out io.Writer) error {
	state := that.uGame.State()

	_, err := fmt.Fprintf(out, "Blue: %d   |   Red: %d\n", state.Scores.Blue, state.Scores.Red)

	return err
}

func (that *Server) handleHelp(_ []string, out io.Writer) error {
	_, err := io.WriteString(out, helpText)
	return err
}

func (that *Server) handleQuit(_ []string, out io.Writer) error {
	if _, err := io.WriteString(out, "Bye!\n"); err != nil {
		return err
	}

	return errQuit
}

func reportError(out io.Writer, err error) error {
	_, writeErr := fmt.Fprintf(out, "Error: %v\n", err)
	return writeErr
}
