package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	WinX = 1
	WinO = -1
	Draw = 0
)

// WinLines lists every row, column and diagonal. Winner checks them in this order.
var WinLines = [8][3]entity.Action{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// InitialState returns the empty board.
func InitialState() entity.Board {
	return entity.Board{}
}

// Player returns the mark that moves next. X moves whenever the counts are equal.
func Player(board entity.Board) entity.Mark {
	if board.Count(entity.PlayerX) <= board.Count(entity.PlayerO) {
		return entity.PlayerX
	}

	return entity.PlayerO
}

// Actions returns the empty cells in row-major order, or nothing for a terminal board.
func Actions(board entity.Board) []entity.Action {
	if Winner(board) != entity.Empty {
		return []entity.Action{}
	}

	actions := make([]entity.Action, 0, entity.BoardSize*entity.BoardSize)
	for row := range board {
		for col, cell := range board[row] {
			if cell == entity.Empty {
				actions = append(actions, entity.Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Result returns a copy of board with the mover's mark placed at action.
func Result(board entity.Board, action entity.Action) (entity.Board, error) {
	if !action.InBounds() {
		return board, fmt.Errorf("%w: %s is out of range", apperror.ErrInvalidAction, action)
	}

	if board.Cell(action) != entity.Empty {
		return board, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, action)
	}

	return place(board, action), nil
}

// place skips validation; the search only feeds it actions from Actions.
func place(board entity.Board, action entity.Action) entity.Board {
	board[action.Row][action.Col] = Player(board)
	return board
}

// Winner returns the owner of the first completed line, or entity.Empty.
func Winner(board entity.Board) entity.Mark {
	for _, line := range WinLines {
		a, b, c := board.Cell(line[0]), board.Cell(line[1]), board.Cell(line[2])
		if a != entity.Empty && a == b && b == c {
			return a
		}
	}

	return entity.Empty
}

func Terminal(board entity.Board) bool {
	if Winner(board) != entity.Empty {
		return true
	}

	return board.Count(entity.Empty) == 0
}

// Utility scores a terminal board: WinX, WinO or Draw. Non-terminal boards score Draw.
func Utility(board entity.Board) int {
	switch Winner(board) {
	case entity.PlayerX:
		return WinX
	case entity.PlayerO:
		return WinO
	default:
		return Draw
	}
}

// Outcome is Utility that refuses non-terminal boards.
func Outcome(board entity.Board) (int, error) {
	if !Terminal(board) {
		return 0, fmt.Errorf("%w: outcome of unfinished board %s", apperror.ErrImproperUse, board)
	}

	return Utility(board), nil
}
