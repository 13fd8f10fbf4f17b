package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("cell is out of the board")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrGameIsFull       = errors.New("game already has two players")
	ErrAlreadyInGame    = errors.New("player is already in another game")
)
