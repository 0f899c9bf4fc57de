package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAction  = errors.New("invalid action")
	ErrCellOccupied   = fmt.Errorf("%w: cell is already occupied", ErrInvalidAction)
	ErrImproperUse    = errors.New("improper use")
	ErrGameFinished   = errors.New("game is already finished")
	ErrUnknownCommand = errors.New("unknown command")
)
