package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Decision is the value of a position together with the move that secures it.
// Action is nil for terminal boards.
type Decision struct {
	Value  int            `json:"value"`
	Action *entity.Action `json:"action,omitempty"`
}

// Searcher runs minimax and counts the positions it visits.
type Searcher struct {
	nodes int
}

func NewSearcher() *Searcher {
	return &Searcher{}
}

// Nodes returns how many positions the last Decide call visited.
func (that *Searcher) Nodes() int {
	return that.nodes
}

// Decide returns the optimal decision for the player to move.
func (that *Searcher) Decide(board entity.Board) Decision {
	that.nodes = 0

	if Terminal(board) {
		that.nodes++
		return Decision{Value: Utility(board)}
	}

	if Player(board) == entity.PlayerX {
		return that.maxValue(board)
	}

	return that.minValue(board)
}

// maxValue stops as soon as X can force a win; nothing scores higher.
func (that *Searcher) maxValue(board entity.Board) Decision {
	that.nodes++

	if Terminal(board) {
		return Decision{Value: Utility(board)}
	}

	best := Decision{Value: math.MinInt}
	for _, action := range Actions(board) {
		reply := that.minValue(place(board, action))
		if reply.Value > best.Value {
			best = Decision{Value: reply.Value, Action: &action}

			if best.Value == WinX {
				break
			}
		}
	}

	return best
}

// minValue stops as soon as O can force a win.
func (that *Searcher) minValue(board entity.Board) Decision {
	that.nodes++

	if Terminal(board) {
		return Decision{Value: Utility(board)}
	}

	best := Decision{Value: math.MaxInt}
	for _, action := range Actions(board) {
		reply := that.maxValue(place(board, action))
		if reply.Value < best.Value {
			best = Decision{Value: reply.Value, Action: &action}

			if best.Value == WinO {
				break
			}
		}
	}

	return best
}

// Evaluate returns the game-theoretic value of board and the move that achieves it.
func Evaluate(board entity.Board) Decision {
	return NewSearcher().Decide(board)
}

// Minimax returns an optimal move for the player to move, or nil if the game is over.
func Minimax(board entity.Board) *entity.Action {
	return Evaluate(board).Action
}
