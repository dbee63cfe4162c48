package blackjack

import (
	"encoding/json"

	"blackjacktable/internal/util"
	"blackjacktable/pkg/deck"
)

// participant is a seat capable of holding chips and issuing moves.
// Both players and the dealer satisfy it.
type participant interface {
	// makeMove atomically reads and clears the pending move. A second call
	// without a new SetMove yields MoveNone.
	makeMove() Move

	// AddChips credits (or debits, when negative) the participant's chips
	AddChips(amount int)
}

// GiveChips transfers chips from one participant to another.
// No balance floor is enforced; bankruptcy policy belongs to the table.
func GiveChips(from, to participant, chips int) {
	from.AddChips(-chips)
	to.AddChips(chips)
}

// Player is a named seat at the table
type Player struct {
	ID        int64
	Name      string
	Chips     int
	IsBot     bool
	Insurance int

	move  Move
	hands []*Hand
}

// NewPlayer returns a new player with a single empty hand
func NewPlayer(id int64, name string, chips int) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Chips: chips,
		hands: []*Hand{NewHand()},
	}
}

// NewBotPlayer returns a new bot player with a generated name
func NewBotPlayer(id int64, chips int) *Player {
	player := NewPlayer(id, util.GetRandomName(), chips)
	player.IsBot = true
	return player
}

// SetMove records the player's pending intent for the next tick
func (p *Player) SetMove(move Move) {
	p.move = move
}

func (p *Player) makeMove() Move {
	move := p.move
	p.move = MoveNone
	return move
}

// AddChips credits the player's chips
func (p *Player) AddChips(amount int) {
	p.Chips += amount
}

// Hands returns the player's hands in play order
func (p *Player) Hands() []*Hand {
	return p.hands
}

// ResetHands discards every hand, deals the player a single fresh hand, and
// clears any insurance stake
func (p *Player) ResetHands() {
	p.hands = []*Hand{NewHand()}
	p.Insurance = 0
}

// GetCurrentHand returns the hand the player should act on: the moving hand
// if there is one, otherwise the first hand still waiting, otherwise the
// first hand. Deterministic when splits created several hands.
func (p *Player) GetCurrentHand() *Hand {
	var waitHand *Hand

	for _, hand := range p.hands {
		if hand.State == StateMoving {
			return hand
		}
		if hand.State == StateWait && waitHand == nil {
			waitHand = hand
		}
	}

	if waitHand != nil {
		return waitHand
	}

	return p.hands[0]
}

func (p *Player) ownsHand(hand *Hand) bool {
	for _, h := range p.hands {
		if h == hand {
			return true
		}
	}

	return false
}

// PlaceBet debits the player and adds the amount to the hand's bet.
// The hand must belong to the player.
func (p *Player) PlaceBet(hand *Hand, amount int) error {
	if !p.ownsHand(hand) {
		return ErrHandNotOwned
	}

	p.Chips -= amount
	hand.Bet += amount
	return nil
}

// ResetBet refunds the hand's bet to the player's chips
func (p *Player) ResetBet(hand *Hand) error {
	if !p.ownsHand(hand) {
		return ErrHandNotOwned
	}

	p.Chips += hand.Bet
	hand.Bet = 0
	return nil
}

// ApplyInsurance stakes an insurance side-bet equal to the primary bet,
// debiting half of it from the player's chips
func (p *Player) ApplyInsurance() error {
	if p.hands[0].Bet == 0 {
		return ErrNoBetPlaced
	}

	p.Insurance = p.hands[0].Bet
	p.Chips -= p.Insurance / 2
	return nil
}

// Split moves one card from the current hand into a new hand, matches the
// bet on the new hand, and appends it. The caller must have verified
// CanSplit first.
func (p *Player) Split() error {
	newHand := NewHand()
	currentHand := p.GetCurrentHand()
	if err := currentHand.GiveLastCards(newHand, 1); err != nil {
		return err
	}

	newHand.Bet = currentHand.Bet
	p.Chips -= newHand.Bet
	p.hands = append(p.hands, newHand)
	return nil
}

// CanDouble returns true if the current hand has exactly two cards and the
// player can cover a matching bet
func (p *Player) CanDouble() bool {
	hand := p.GetCurrentHand()

	if p.Chips-hand.Bet < 0 {
		return false
	}

	return len(hand.Cards) == 2
}

// CanSplit returns true if the current hand is a two-card pair, the player
// can cover a matching bet, and the split limit hasn't been reached
func (p *Player) CanSplit(maxSplits int) bool {
	hand := p.GetCurrentHand()

	if !p.CanDouble() {
		return false
	}

	if len(p.hands) > maxSplits {
		return false
	}

	return hand.Cards[0].Rank == hand.Cards[1].Rank
}

// CanGetInsurance returns true if the player may stake insurance: their hand
// is the one acting, they hold no insurance yet, the dealer shows an ace,
// they can cover half the primary bet, and even money isn't on offer instead
func (p *Player) CanGetInsurance(dealer *Dealer) bool {
	if p.GetCurrentHand().State != StateMoving {
		return false
	}

	if p.Insurance != 0 {
		return false
	}

	upCard := dealer.UpCard()
	if upCard == nil || upCard.Rank != deck.Ace {
		return false
	}

	if p.Chips-(p.hands[0].Bet/2) < 0 {
		return false
	}

	return !p.CanEvenMoney(dealer)
}

// CanEvenMoney returns true if the player may take even money: their hand is
// the one acting, it scores exactly twenty-one, the dealer shows an ace, and
// no insurance was staked
func (p *Player) CanEvenMoney(dealer *Dealer) bool {
	hand := p.GetCurrentHand()

	if hand.State != StateMoving {
		return false
	}

	if !hand.IsBlackjack() {
		return false
	}

	upCard := dealer.UpCard()
	if upCard == nil || upCard.Rank != deck.Ace {
		return false
	}

	return p.Insurance == 0
}

// MarshalJSON encodes the JSON
func (p *Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Chips     int     `json:"chips"`
		IsBot     bool    `json:"isBot"`
		Insurance int     `json:"insurance"`
		Hands     []*Hand `json:"hands"`
	}{
		ID:        p.ID,
		Name:      p.Name,
		Chips:     p.Chips,
		IsBot:     p.IsBot,
		Insurance: p.Insurance,
		Hands:     p.hands,
	})
}
