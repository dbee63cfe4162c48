package blackjack

import (
	"errors"
	"fmt"
)

// ErrGameEnded is returned by Update() once the round is settled.
// The caller must call ResetGame() before ticking again.
var ErrGameEnded = errors.New("game is ended")

// ErrHandNotOwned is returned when a bet mutator is handed a hand that does
// not belong to the player. This is host misuse, not player input.
var ErrHandNotOwned = errors.New("hand does not belong to this player")

// ErrNoBetPlaced is returned when insurance is attempted before a bet
var ErrNoBetPlaced = errors.New("no placed bet")

// ErrTableFull is returned when adding a player past the configured limit
var ErrTableFull = errors.New("table is full")

// PlayerActionError is returned when a player's pending double, split,
// insurance, or even-money move no longer passes its precondition.
// It is recoverable; the host should re-prompt the player.
type PlayerActionError struct {
	Name   string
	Action string
}

func (e *PlayerActionError) Error() string {
	return fmt.Sprintf("%s cannot perform `%s`", e.Name, e.Action)
}
