package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidMove          = errors.New("invalid move")
	ErrGameFinished         = errors.New("game is already finished")
	ErrUnknownCommand       = errors.New("unknown command")
)
