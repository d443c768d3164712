package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrSessionNotFound = errors.New("session not found")
)
