package sos

import "github.com/rocketscienceinc/sos-backend/internal/entity"

type direction struct {
	dr, dc int
}

// horizontal, vertical and both diagonals; each is also checked negated.
var axes = [4]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// countSOS - counts S-O-S lines that start at (r, c). Forward and backward checks of one axis count separately.
func countSOS(board entity.Board, r, c int) int {
	count := 0
	for _, axis := range axes {
		if formsSOS(board, r, c, axis.dr, axis.dc) {
			count++
		}

		if formsSOS(board, r, c, -axis.dr, -axis.dc) {
			count++
		}
	}

	return count
}

func formsSOS(board entity.Board, r, c, dr, dc int) bool {
	size := board.Size()
	for step := range 3 {
		rr, cc := r+step*dr, c+step*dc
		if rr < 0 || rr >= size || cc < 0 || cc >= size {
			return false
		}
	}

	return board[r][c] == entity.S &&
		board[r+dr][c+dc] == entity.O &&
		board[r+2*dr][c+2*dc] == entity.S
}
