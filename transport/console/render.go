package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

const emptyCell = "."

// renderState - draws the grid with row and column numbers, the turn and, in general mode, the scores.
func renderState(state entity.GameState) string {
	var sb strings.Builder

	width := len(fmt.Sprint(state.Size - 1))

	sb.WriteString(strings.Repeat(" ", width+1))
	for c := range state.Size {
		fmt.Fprintf(&sb, " %*d", width, c)
	}
	sb.WriteString("\n")

	for r, row := range state.Board {
		fmt.Fprintf(&sb, "%*d ", width, r)
		for _, cell := range row {
			text := cell.String()
			if cell == entity.Empty {
				text = emptyCell
			}
			fmt.Fprintf(&sb, " %*s", width, text)
		}
		sb.WriteString("\n")
	}

	if !state.Result.IsFinished() {
		fmt.Fprintf(&sb, "Current turn: %s\n", state.Turn)
	}

	if state.Mode == entity.GeneralMode {
		fmt.Fprintf(&sb, "Blue: %d   |   Red: %d\n", state.Scores.Blue, state.Scores.Red)
	}

	return sb.String()
}

func renderResult(mode entity.Mode, result entity.Result) string {
	blue, red := result.Scores.Blue, result.Scores.Red

	switch {
	case mode == entity.SimpleMode:
		return "Board is full! Simple game ended."
	case result.Outcome == entity.OutcomeBlueWins:
		return fmt.Sprintf("Blue wins! (%d - %d)", blue, red)
	case result.Outcome == entity.OutcomeRedWins:
		return fmt.Sprintf("Red wins! (%d - %d)", red, blue)
	default:
		return fmt.Sprintf("It's a tie! (%d - %d)", blue, red)
	}
}
