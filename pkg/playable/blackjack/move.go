package blackjack

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Move is a pending one-shot intent of a player or the dealer.
// Consuming a move resets it to MoveNone.
type Move int

// Move constants
const (
	MoveNone Move = iota
	MoveHit
	MoveStand
	MoveDouble
	MoveSplit
	MoveInsurance
	MoveEvenMoney
)

func (m Move) String() string {
	switch m {
	case MoveNone:
		return "none"
	case MoveHit:
		return "hit"
	case MoveStand:
		return "stand"
	case MoveDouble:
		return "double"
	case MoveSplit:
		return "split"
	case MoveInsurance:
		return "insurance"
	case MoveEvenMoney:
		return "even money"
	}

	panic(fmt.Sprintf("invalid move: %d", m))
}

// MarshalJSON encodes the JSON
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(m),
		Name: m.String(),
	})
}

// MoveFromString returns a Move from a string
func MoveFromString(move string) (Move, error) {
	switch strings.ToLower(move) {
	case "hit":
		return MoveHit, nil
	case "stand":
		return MoveStand, nil
	case "double":
		return MoveDouble, nil
	case "split":
		return MoveSplit, nil
	case "insurance":
		return MoveInsurance, nil
	case "even money", "even-money":
		return MoveEvenMoney, nil
	}

	return MoveNone, fmt.Errorf("invalid move: %s", move)
}
