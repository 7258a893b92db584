package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
)

const MinBoardSize = 3

// Symbol - a marker a player may place on a cell. Empty is the no-value sentinel.
type Symbol uint8

const (
	Empty Symbol = iota
	S
	O
)

// ParseSymbol - resolves user input to S or O, case-insensitive and whitespace-trimmed.
func ParseSymbol(raw string) (Symbol, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "S":
		return S, true
	case "O":
		return O, true
	default:
		return Empty, false
	}
}

func (that Symbol) IsPlayable() bool {
	return that == S || that == O
}

func (that Symbol) String() string {
	switch that {
	case S:
		return "S"
	case O:
		return "O"
	default:
		return ""
	}
}

type Mode uint8

const (
	SimpleMode Mode = iota
	GeneralMode
)

// ParseMode - resolves "simple" or "general", any case.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "simple":
		return SimpleMode, nil
	case "general":
		return GeneralMode, nil
	default:
		return SimpleMode, fmt.Errorf("%w: unknown mode %q", apperror.ErrInvalidConfiguration, raw)
	}
}

func (that Mode) IsValid() bool {
	return that == SimpleMode || that == GeneralMode
}

func (that Mode) String() string {
	switch that {
	case SimpleMode:
		return "simple"
	case GeneralMode:
		return "general"
	default:
		return fmt.Sprintf("mode(%d)", uint8(that))
	}
}

type Player uint8

const (
	PlayerBlue Player = iota
	PlayerRed
)

func (that Player) Other() Player {
	if that == PlayerBlue {
		return PlayerRed
	}
	return PlayerBlue
}

func (that Player) String() string {
	if that == PlayerRed {
		return "red"
	}
	return "blue"
}

type Scores struct {
	Blue int `json:"blue"`
	Red  int `json:"red"`
}

func (that Scores) Of(player Player) int {
	if player == PlayerRed {
		return that.Red
	}
	return that.Blue
}

func (that *Scores) Add(player Player, points int) {
	if player == PlayerRed {
		that.Red += points
		return
	}
	that.Blue += points
}

// Board - a detached copy of the grid, indexed [row][col].
type Board [][]Symbol

func NewBoard(size int) Board {
	board := make(Board, size)
	for r := range board {
		board[r] = make([]Symbol, size)
	}

	return board
}

// Clone - returns a deep copy so callers never share rows.
func (that Board) Clone() Board {
	board := make(Board, len(that))
	for r, row := range that {
		board[r] = append([]Symbol(nil), row...)
	}

	return board
}

func (that Board) Size() int {
	return len(that)
}

// Filled - number of non-empty cells.
func (that Board) Filled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != Empty {
				filled++
			}
		}
	}

	return filled
}

// Move - an accepted placement and the points it scored.
type Move struct {
	Player Player `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Symbol Symbol `json:"symbol"`
	Points int    `json:"points"`
}

func (that Move) Scored() bool {
	return that.Points > 0
}

const (
	OutcomeOngoing  = "ongoing"
	OutcomeFull     = "full"
	OutcomeBlueWins = "blue"
	OutcomeRedWins  = "red"
	OutcomeTie      = "tie"
)

// Result - the outcome of a game, derived from the board and scores.
type Result struct {
	Outcome string `json:"outcome"`
	Scores  Scores `json:"scores"`
}

func (that Result) IsFinished() bool {
	return that.Outcome != OutcomeOngoing
}

// Winner - reports the winning player, false on a tie, an undecided or a simple game.
func (that Result) Winner() (Player, bool) {
	switch that.Outcome {
	case OutcomeBlueWins:
		return PlayerBlue, true
	case OutcomeRedWins:
		return PlayerRed, true
	default:
		return PlayerBlue, false
	}
}

// GameState - a read-only view of a game handed to the presentation layer.
type GameState struct {
	Size      int    `json:"size"`
	Mode      Mode   `json:"mode"`
	Board     Board  `json:"board"`
	Turn      Player `json:"player_turn"`
	Scores    Scores `json:"scores"`
	MoveCount int    `json:"move_count"`
	Result    Result `json:"result"`
}
