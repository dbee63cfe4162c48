package blackjack

// State is the lifecycle state of a single hand
type State string

// State constants
const (
	// StateWait means the hand has not acted yet this round
	StateWait State = "wait"

	// StateMoving means the hand is the one currently acting
	StateMoving State = "moving"

	// StateEnough means the hand is done acting and awaits settlement
	StateEnough State = "enough"

	// StateWin, StateLose and StatePush are settlement results
	StateWin  State = "win"
	StateLose State = "lose"
	StatePush State = "push"

	// StateEvenMoney means the hand took the even-money payout and is
	// settled ahead of the dealer's turn
	StateEvenMoney State = "even-money"
)

var endStates = []State{StateWin, StateLose, StatePush, StateEvenMoney}

// IsEndState returns true if the state is terminal for settlement purposes
func IsEndState(s State) bool {
	for _, es := range endStates {
		if s == es {
			return true
		}
	}

	return false
}
