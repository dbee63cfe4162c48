package blackjack

import (
	"encoding/json"
	"fmt"

	"blackjacktable/pkg/deck"
)

// blackjack is a race to this score
const maxScore = 21

// Hand is an ordered set of cards with a bet and a lifecycle state.
// A hand is owned by exactly one player or the dealer.
type Hand struct {
	Cards deck.Hand
	Bet   int
	State State
}

// NewHand returns a new, empty hand waiting to act
func NewHand() *Hand {
	return &Hand{
		Cards: deck.Hand{},
		State: StateWait,
	}
}

// Score returns the blackjack value of the hand. Face cards count ten and an
// ace counts eleven when that does not bust the hand. Only one ace can be
// promoted; a second promotion would always bust.
func (h *Hand) Score() int {
	score := 0
	containsAce := false
	for _, card := range h.Cards {
		score += card.BlackjackValue()
		if card.Rank == deck.Ace {
			containsAce = true
		}
	}

	if containsAce && score <= 11 {
		score += 10
	}

	return score
}

// IsBusted returns true if the hand scores over twenty-one
func (h *Hand) IsBusted() bool {
	return h.Score() > maxScore
}

// IsBlackjack returns true if the hand scores exactly twenty-one
func (h *Hand) IsBlackjack() bool {
	return h.Score() == maxScore
}

// Reset discards all cards, clears the bet, and puts the hand back in wait
func (h *Hand) Reset() {
	h.Cards = deck.Hand{}
	h.Bet = 0
	h.State = StateWait
}

// GiveLastCards moves the last count cards from this hand onto the end of
// another hand. Cards move, they are never copied. Used for splits.
func (h *Hand) GiveLastCards(to *Hand, count int) error {
	if len(h.Cards) < count {
		return fmt.Errorf("cannot give %d cards from a hand of %d", count, len(h.Cards))
	}

	for i := 0; i < count; i++ {
		to.Cards.AddCard(h.Cards.PopLastCard())
	}

	return nil
}

func (h *Hand) String() string {
	return h.Cards.String()
}

// MarshalJSON encodes the JSON
func (h *Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Cards  deck.Hand `json:"cards"`
		Bet    int       `json:"bet"`
		State  State     `json:"state"`
		Score  int       `json:"score"`
		Busted bool      `json:"busted"`
	}{
		Cards:  h.Cards,
		Bet:    h.Bet,
		State:  h.State,
		Score:  h.Score(),
		Busted: h.IsBusted(),
	})
}
