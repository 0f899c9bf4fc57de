package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.Empty
)

func TestInitialState(t *testing.T) {
	// When: getting the initial state
	board := InitialState()

	// Then: every cell should be empty and X should move first
	assert.Equal(t, 9, board.Count(entity.Empty))
	assert.Equal(t, entity.PlayerX, Player(board))
}

func TestPlayer(t *testing.T) {
	t.Run("Turns alternate along a game", func(t *testing.T) {
		// Given: a sequence of legal moves from the initial state
		moves := []entity.Action{
			{Row: 1, Col: 1}, {Row: 0, Col: 0}, {Row: 2, Col: 2},
			{Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 2, Col: 1},
		}

		board := InitialState()
		expected := entity.PlayerX

		for _, action := range moves {
			// Then: the mover should match the expected alternation
			require.Equal(t, expected, Player(board))

			next, err := Result(board, action)
			require.NoError(t, err)

			// And: the placed mark should belong to the mover
			assert.Equal(t, expected, next.Cell(action))

			board = next
			if expected == entity.PlayerX {
				expected = entity.PlayerO
			} else {
				expected = entity.PlayerX
			}
		}
	})

	t.Run("O moves when X is ahead", func(t *testing.T) {
		// Given: a board where X has one more mark
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}

		// Then: it should be O's turn
		assert.Equal(t, entity.PlayerO, Player(board))
	})
}

func TestActions(t *testing.T) {
	t.Run("All cells on the initial state", func(t *testing.T) {
		// When: listing actions on the empty board
		actions := Actions(InitialState())

		// Then: all nine cells should be listed in row-major order
		require.Len(t, actions, 9)
		assert.Equal(t, entity.Action{Row: 0, Col: 0}, actions[0])
		assert.Equal(t, entity.Action{Row: 0, Col: 1}, actions[1])
		assert.Equal(t, entity.Action{Row: 2, Col: 2}, actions[8])
	})

	t.Run("Only empty cells", func(t *testing.T) {
		// Given: a partially filled board
		board := entity.Board{
			{x, o, x},
			{e, o, e},
			{x, e, o},
		}

		// When: listing actions
		actions := Actions(board)

		// Then: the empty cells should be returned in row-major order
		assert.Equal(t, []entity.Action{{Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}, actions)
	})

	t.Run("Nothing on a won board", func(t *testing.T) {
		// Given: a board X has already won
		board := entity.Board{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		}

		// Then: no actions should be available
		assert.Empty(t, Actions(board))
	})
}

func TestResult(t *testing.T) {
	t.Run("Places the mover's mark", func(t *testing.T) {
		// Given: a board where O is to move
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}

		// When: applying an action
		next, err := Result(board, entity.Action{Row: 1, Col: 1})

		// Then: O should occupy the target cell
		require.NoError(t, err)
		assert.Equal(t, entity.Board{
			{x, e, e},
			{e, o, e},
			{e, e, e},
		}, next)
	})

	t.Run("Input board is left unmodified", func(t *testing.T) {
		// Given: a board and a snapshot of it
		board := entity.Board{
			{x, o, e},
			{e, e, e},
			{e, e, e},
		}
		snapshot := board

		// When: applying an action
		_, err := Result(board, entity.Action{Row: 2, Col: 2})
		require.NoError(t, err)

		// Then: the original should equal the snapshot
		assert.Equal(t, snapshot, board)
	})

	t.Run("Error on out of range action", func(t *testing.T) {
		for _, action := range []entity.Action{{Row: 3, Col: 0}, {Row: 0, Col: -1}, {Row: 5, Col: 5}} {
			// When: applying an action outside the board
			_, err := Result(InitialState(), action)

			// Then: ErrInvalidAction should be returned
			require.ErrorIs(t, err, apperror.ErrInvalidAction, action.String())
			assert.NotErrorIs(t, err, apperror.ErrCellOccupied)
		}
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with X in the centre
		board := entity.Board{
			{e, e, e},
			{e, x, e},
			{e, e, e},
		}

		// When: O tries to play the centre
		_, err := Result(board, entity.Action{Row: 1, Col: 1})

		// Then: ErrCellOccupied should be returned, which is also an invalid action
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.ErrorIs(t, err, apperror.ErrInvalidAction)
	})
}

func TestWinner(t *testing.T) {
	t.Run("Every line for both marks", func(t *testing.T) {
		for _, mark := range []entity.Mark{x, o} {
			for _, line := range WinLines {
				// Given: a board holding only this line
				var board entity.Board
				for _, cell := range line {
					board[cell.Row][cell.Col] = mark
				}

				// Then: the line's mark should win
				assert.Equal(t, mark, Winner(board), board.String())
			}
		}
	})

	t.Run("No winner on an unfinished board", func(t *testing.T) {
		board := entity.Board{
			{x, o, e},
			{e, x, e},
			{e, e, o},
		}

		assert.Equal(t, entity.Empty, Winner(board))
	})

	t.Run("No winner on a drawn board", func(t *testing.T) {
		board := entity.Board{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		}

		assert.Equal(t, entity.Empty, Winner(board))
	})

	t.Run("Two winning lines report the first one checked", func(t *testing.T) {
		// Given: an unreachable board with a completed line for each mark
		board := entity.Board{
			{o, o, o},
			{x, x, x},
			{e, e, e},
		}

		// Then: the top row should be reported
		assert.Equal(t, entity.PlayerO, Winner(board))
	})
}

func TestTerminal(t *testing.T) {
	t.Run("Initial state is not terminal", func(t *testing.T) {
		assert.False(t, Terminal(InitialState()))
	})

	t.Run("Won board is terminal", func(t *testing.T) {
		board := entity.Board{
			{x, o, e},
			{x, o, e},
			{x, e, e},
		}

		assert.True(t, Terminal(board))
		assert.Equal(t, WinX, Utility(board))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no three in a row
		board := entity.Board{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		}

		// When: checking the outcome
		outcome, err := Outcome(board)

		// Then: the board should be terminal and drawn
		require.NoError(t, err)
		assert.True(t, Terminal(board))
		assert.Equal(t, Draw, outcome)
	})

	t.Run("O win scores minus one", func(t *testing.T) {
		board := entity.Board{
			{x, x, o},
			{x, o, e},
			{o, e, e},
		}

		outcome, err := Outcome(board)

		require.NoError(t, err)
		assert.Equal(t, WinO, outcome)
	})
}

func TestOutcome_ImproperUse(t *testing.T) {
	// When: asking for the outcome of an unfinished board
	_, err := Outcome(InitialState())

	// Then: ErrImproperUse should be returned
	assert.ErrorIs(t, err, apperror.ErrImproperUse)
}
