package application

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const noneOutput = "None"

type gameEngine interface {
	ChooseMove(ctx context.Context, board entity.Board) (*entity.Action, error)
	Evaluate(ctx context.Context, board entity.Board) (tictactoe.Decision, error)
	PlayOut(ctx context.Context, start entity.Board) (*entity.Game, error)
	MakeTurn(ctx context.Context, board entity.Board, action entity.Action) (*entity.Game, error)
}

// Dispatcher maps command names to engine operations.
type Dispatcher struct {
	engine gameEngine
	out    io.Writer
	au     aurora.Aurora
}

func NewDispatcher(engine gameEngine, out io.Writer, colors bool) *Dispatcher {
	return &Dispatcher{
		engine: engine,
		out:    out,
		au:     aurora.NewAurora(colors),
	}
}

func (that *Dispatcher) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given, expected one of %s", apperror.ErrUnknownCommand, strings.Join(Commands, ", "))
	}

	name, params := args[0], args[1:]

	switch name {
	case "initial_state":
		return that.writeLine(tictactoe.InitialState().String())
	case "player":
		return that.withBoard(params, 1, func(board entity.Board) error {
			return that.writeLine(string(tictactoe.Player(board)))
		})
	case "actions":
		return that.withBoard(params, 1, that.actions)
	case "result":
		return that.withBoard(params, 3, func(board entity.Board) error {
			action, err := parseAction(params[1:])
			if err != nil {
				return err
			}

			next, err := tictactoe.Result(board, action)
			if err != nil {
				return fmt.Errorf("failed to apply action: %w", err)
			}

			return that.writeLine(next.String())
		})
	case "winner":
		return that.withBoard(params, 1, func(board entity.Board) error {
			return that.writeLine(markOrNone(tictactoe.Winner(board)))
		})
	case "terminal":
		return that.withBoard(params, 1, func(board entity.Board) error {
			return that.writeLine(strconv.FormatBool(tictactoe.Terminal(board)))
		})
	case "utility":
		return that.withBoard(params, 1, func(board entity.Board) error {
			utility, err := tictactoe.Outcome(board)
			if err != nil {
				return fmt.Errorf("failed to score board: %w", err)
			}

			return that.writeLine(strconv.Itoa(utility))
		})
	case "minimax":
		return that.withBoard(params, 1, func(board entity.Board) error {
			action, err := that.engine.ChooseMove(ctx, board)
			if err != nil {
				return fmt.Errorf("failed to choose move: %w", err)
			}

			return that.writeLine(actionOrNone(action))
		})
	case "evaluate":
		return that.withBoard(params, 1, func(board entity.Board) error {
			decision, err := that.engine.Evaluate(ctx, board)
			if err != nil {
				return fmt.Errorf("failed to evaluate board: %w", err)
			}

			return that.writeLine(fmt.Sprintf("%d %s", decision.Value, actionOrNone(decision.Action)))
		})
	case "show":
		return that.withBoard(params, 1, func(board entity.Board) error {
			return that.write(that.render(board))
		})
	case "move":
		return that.withBoard(params, 3, func(board entity.Board) error {
			return that.move(ctx, board, params[1:])
		})
	case "play":
		return that.play(ctx, params)
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, name)
	}
}

// Commands lists every name Run accepts.
var Commands = []string{
	"initial_state", "player", "actions", "result", "winner", "terminal",
	"utility", "minimax", "evaluate", "show", "move", "play",
}

func (that *Dispatcher) actions(board entity.Board) error {
	for _, action := range tictactoe.Actions(board) {
		if err := that.writeLine(action.String()); err != nil {
			return err
		}
	}

	return nil
}

func (that *Dispatcher) move(ctx context.Context, board entity.Board, params []string) error {
	action, err := parseAction(params)
	if err != nil {
		return err
	}

	game, err := that.engine.MakeTurn(ctx, board, action)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.write(that.render(game.Board)); err != nil {
		return err
	}

	return that.printStatus(game)
}

func (that *Dispatcher) play(ctx context.Context, params []string) error {
	start := tictactoe.InitialState()

	if len(params) > 0 {
		board, err := entity.ParseBoard(params[0])
		if err != nil {
			return fmt.Errorf("failed to read board: %w", err)
		}
		start = board
	}

	game, err := that.engine.PlayOut(ctx, start)
	if err != nil {
		return fmt.Errorf("failed to play out game: %w", err)
	}

	board := game.Start
	for i, action := range game.Moves {
		player := tictactoe.Player(board)
		board, _ = tictactoe.Result(board, action)

		if err = that.writeLine(fmt.Sprintf("%d. %s %s", i+1, that.colorMark(player), action)); err != nil {
			return err
		}
	}

	if err = that.write(that.render(game.Board)); err != nil {
		return err
	}

	return that.printStatus(game)
}

func (that *Dispatcher) printStatus(game *entity.Game) error {
	switch {
	case game.IsOngoing():
		return that.writeLine(fmt.Sprintf("%s to move", that.colorMark(tictactoe.Player(game.Board))))
	case game.IsTie():
		return that.writeLine("draw")
	default:
		return that.writeLine(fmt.Sprintf("%s wins", that.colorMark(game.Winner)))
	}
}

// withBoard checks that exactly want parameters were given and parses the first one as a board.
func (that *Dispatcher) withBoard(params []string, want int, run func(board entity.Board) error) error {
	if len(params) != want {
		return fmt.Errorf("%w: expected %d arguments, got %d", apperror.ErrImproperUse, want, len(params))
	}

	board, err := entity.ParseBoard(params[0])
	if err != nil {
		return fmt.Errorf("failed to read board: %w", err)
	}

	return run(board)
}

func (that *Dispatcher) writeLine(line string) error {
	return that.write(line + "\n")
}

func (that *Dispatcher) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func parseAction(params []string) (entity.Action, error) {
	row, err := strconv.Atoi(params[0])
	if err != nil {
		return entity.Action{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidAction, params[0])
	}

	col, err := strconv.Atoi(params[1])
	if err != nil {
		return entity.Action{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidAction, params[1])
	}

	return entity.Action{Row: row, Col: col}, nil
}

func markOrNone(mark entity.Mark) string {
	if mark == entity.Empty {
		return noneOutput
	}

	return string(mark)
}

func actionOrNone(action *entity.Action) string {
	if action == nil {
		return noneOutput
	}

	return action.String()
}
