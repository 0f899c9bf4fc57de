package application

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// render draws the board as a grid, one line per row.
func (that *Dispatcher) render(board entity.Board) string {
	var sb strings.Builder

	for row := range board {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col, cell := range board[row] {
			if col > 0 {
				sb.WriteByte('|')
			}

			sb.WriteByte(' ')
			if cell == entity.Empty {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(that.colorMark(cell))
			}
			sb.WriteByte(' ')
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Dispatcher) colorMark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.au.Cyan(string(mark)).Bold().String()
	case entity.PlayerO:
		return that.au.Magenta(string(mark)).Bold().String()
	default:
		return string(mark)
	}
}
