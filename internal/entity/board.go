package entity

import (
	"errors"
	"fmt"
	"strings"
)

const BoardSize = 3

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	Empty Mark = ""
)

var ErrInvalidBoard = errors.New("invalid board")

// Board is a 3x3 grid of marks. It is an array, so every assignment copies it.
type Board [BoardSize][BoardSize]Mark

// Action targets one cell by row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// InBounds reports whether both coordinates fall inside the board.
func (that Action) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Board) Cell(action Action) Mark {
	return that[action.Row][action.Col]
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

// String renders the board as 9 row-major characters, "." for an empty cell.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)

	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}

// ParseBoard reads the format produced by Board.String. "-" and "_" are also
// accepted for empty cells, "/" and whitespace are ignored.
func ParseBoard(raw string) (Board, error) {
	var board Board

	i := 0
	for _, r := range raw {
		switch r {
		case '/', ' ', '\t', '\n':
			continue
		}

		if i >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: too many cells in %q", ErrInvalidBoard, raw)
		}

		var mark Mark
		switch r {
		case 'X', 'x':
			mark = PlayerX
		case 'O', 'o':
			mark = PlayerO
		case '.', '-', '_':
			mark = Empty
		default:
			return Board{}, fmt.Errorf("%w: unknown cell %q", ErrInvalidBoard, r)
		}

		board[i/BoardSize][i%BoardSize] = mark
		i++
	}

	if i != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, BoardSize*BoardSize, i)
	}

	return board, nil
}
