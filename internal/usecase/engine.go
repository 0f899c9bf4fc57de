package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type solutionRepo interface {
	Save(ctx context.Context, board entity.Board, decision tictactoe.Decision) error
	GetByBoard(ctx context.Context, board entity.Board) (tictactoe.Decision, error)
}

// Engine picks moves with tictactoe.Searcher and remembers solved positions.
type Engine struct {
	logger    *slog.Logger
	solutions solutionRepo
}

// NewEngine builds an engine. solutions may be nil, in which case every position is searched.
func NewEngine(logger *slog.Logger, solutions solutionRepo) *Engine {
	return &Engine{
		logger:    logger.With("component", "engine"),
		solutions: solutions,
	}
}

// ChooseMove returns an optimal move for the player to move, or nil if the game is over.
func (that *Engine) ChooseMove(ctx context.Context, board entity.Board) (*entity.Action, error) {
	decision, err := that.Evaluate(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate board: %w", err)
	}

	return decision.Action, nil
}

// Evaluate returns the value of board and the move that achieves it.
func (that *Engine) Evaluate(ctx context.Context, board entity.Board) (tictactoe.Decision, error) {
	log := that.logger.With("method", "Evaluate", "board", board.String())

	if err := ctx.Err(); err != nil {
		return tictactoe.Decision{}, fmt.Errorf("evaluation canceled: %w", err)
	}

	if tictactoe.Terminal(board) {
		return tictactoe.Decision{Value: tictactoe.Utility(board)}, nil
	}

	if decision, ok := that.lookup(ctx, board); ok {
		log.Debug("solution cache hit", "value", decision.Value)
		return decision, nil
	}

	searcher := tictactoe.NewSearcher()
	decision := searcher.Decide(board)

	log.Debug("position searched", "nodes", searcher.Nodes(), "value", decision.Value)

	that.store(ctx, board, decision)

	return decision, nil
}

// PlayOut lets the engine play both sides from start until the game ends.
func (that *Engine) PlayOut(ctx context.Context, start entity.Board) (*entity.Game, error) {
	log := that.logger.With("method", "PlayOut")

	game := entity.NewGame(start)

	for !tictactoe.Terminal(game.Board) {
		action, err := that.ChooseMove(ctx, game.Board)
		if err != nil {
			return game, fmt.Errorf("failed to choose move: %w", err)
		}

		next, err := tictactoe.Result(game.Board, *action)
		if err != nil {
			return game, fmt.Errorf("failed to apply move %s: %w", action, err)
		}

		log.Debug("move played", "player", tictactoe.Player(game.Board), "action", action.String())

		game.Board = next
		game.Moves = append(game.Moves, *action)
	}

	utility, err := tictactoe.Outcome(game.Board)
	if err != nil {
		return game, fmt.Errorf("failed to score finished game: %w", err)
	}

	game.Finish(tictactoe.Winner(game.Board), utility)

	log.Info("game finished", "winner", game.Winner, "moves", len(game.Moves))

	return game, nil
}

// MakeTurn plays action for the player to move, then answers with the engine's reply
// unless the game is already over.
func (that *Engine) MakeTurn(ctx context.Context, board entity.Board, action entity.Action) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn")

	if tictactoe.Terminal(board) {
		return nil, apperror.ErrGameFinished
	}

	game := entity.NewGame(board)

	next, err := tictactoe.Result(board, action)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	game.Board = next
	game.Moves = append(game.Moves, action)

	if !tictactoe.Terminal(game.Board) {
		reply, err := that.ChooseMove(ctx, game.Board)
		if err != nil {
			return nil, fmt.Errorf("engine failed to reply: %w", err)
		}

		// reply always names an empty cell
		game.Board, _ = tictactoe.Result(game.Board, *reply)
		game.Moves = append(game.Moves, *reply)

		log.Debug("engine replied", "action", reply.String())
	}

	if tictactoe.Terminal(game.Board) {
		game.Finish(tictactoe.Winner(game.Board), tictactoe.Utility(game.Board))
	}

	return game, nil
}

func (that *Engine) lookup(ctx context.Context, board entity.Board) (tictactoe.Decision, bool) {
	if that.solutions == nil {
		return tictactoe.Decision{}, false
	}

	decision, err := that.solutions.GetByBoard(ctx, board)
	if errors.Is(err, repository.ErrSolutionNotFound) {
		return tictactoe.Decision{}, false
	}

	if err != nil {
		that.logger.Warn("failed to read solution cache", "board", board.String(), "error", err)
		return tictactoe.Decision{}, false
	}

	// a stale entry must still name a legal move
	if decision.Action == nil || !decision.Action.InBounds() || board.Cell(*decision.Action) != entity.Empty {
		that.logger.Warn("ignoring invalid cached solution", "board", board.String())
		return tictactoe.Decision{}, false
	}

	return decision, true
}

func (that *Engine) store(ctx context.Context, board entity.Board, decision tictactoe.Decision) {
	if that.solutions == nil {
		return
	}

	if err := that.solutions.Save(ctx, board, decision); err != nil {
		that.logger.Warn("failed to write solution cache", "board", board.String(), "error", err)
	}
}
