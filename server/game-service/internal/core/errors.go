package core

import "errors"

var (
	ErrInvalidThrow    = errors.New("invalid throw")
	ErrNotYourTurn     = errors.New("not this player's turn")
	ErrMatchFinished   = errors.New("match is already finished")
	ErrNotFound        = errors.New("not found")
	ErrBusy            = errors.New("match is busy, retry")
	ErrInvalidSettings = errors.New("invalid match settings")
)
