package blackjack

import (
	"encoding/json"

	"blackjacktable/pkg/deck"
)

// the dealer hits below this score and stands at or above it
const dealerStandScore = 17

// Dealer is the house seat. It holds exactly one hand and never doubles,
// splits, or insures.
type Dealer struct {
	Name  string
	Chips int
	Hand  *Hand

	move Move
}

// NewDealer returns a new dealer holding the house bank
func NewDealer(bank int) *Dealer {
	return &Dealer{
		Name:  "Dealer",
		Chips: bank,
		Hand:  NewHand(),
	}
}

// SetMove records the dealer's pending move for the next tick
func (d *Dealer) SetMove(move Move) {
	d.move = move
}

func (d *Dealer) makeMove() Move {
	move := d.move
	d.move = MoveNone
	return move
}

// AddChips credits the dealer's bank
func (d *Dealer) AddChips(amount int) {
	d.Chips += amount
}

// NextMove is the fixed house rule: hit below seventeen, otherwise stand
func (d *Dealer) NextMove() Move {
	if d.Hand.Score() < dealerStandScore {
		return MoveHit
	}

	return MoveStand
}

// UpCard returns the dealer's face-up card, or nil before the deal
func (d *Dealer) UpCard() *deck.Card {
	return d.Hand.Cards.FirstCard()
}

// ResetHand discards the dealer's hand
func (d *Dealer) ResetHand() {
	d.Hand.Reset()
}

// MarshalJSON encodes the JSON
func (d *Dealer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string `json:"name"`
		Chips int    `json:"chips"`
		Hand  *Hand  `json:"hand"`
	}{
		Name:  d.Name,
		Chips: d.Chips,
		Hand:  d.Hand,
	})
}
