package blackjack

import (
	"blackjacktable/internal/rng"
	"blackjacktable/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Table owns one shoe, one dealer, and an ordered list of players. The
// players slice defines turn order. A table is a single-writer aggregate:
// the host must serialize calls to Update() and the player mutators.
type Table struct {
	deck       *deck.Deck
	dealer     *Dealer
	players    []*Player
	options    Options
	rand       rng.Generator
	gamesCount int

	logger   logrus.FieldLogger
	notifier Notifier
}

// NewTable returns a new table with a shuffled shoe and no players
func NewTable(logger logrus.FieldLogger, options Options) *Table {
	options = options.withDefaults()

	t := &Table{
		deck:    deck.New(options.DecksCount),
		dealer:  NewDealer(options.DealerBank),
		players: make([]*Player, 0, options.MaxPlayers),
		options: options,
		rand:    rng.NewSource(options.Seed),
		logger:  logger,
	}

	t.deck.Shuffle(t.rand)
	return t
}

// SetNotifier registers the host's notifier for lifecycle events.
// The table keeps a single notifier; fan-out is the host's job.
func (t *Table) SetNotifier(n Notifier) {
	t.notifier = n
}

func (t *Table) emit(topic Topic, player *Player) {
	if t.notifier != nil {
		t.notifier.Notify(newEvent(topic, player))
	}
}

// Options returns the table's options
func (t *Table) Options() Options {
	return t.options
}

// Players returns the players in turn order
func (t *Table) Players() []*Player {
	return t.players
}

// Dealer returns the dealer
func (t *Table) Dealer() *Dealer {
	return t.dealer
}

// GamesCount returns how many rounds have been started at this table
func (t *Table) GamesCount() int {
	return t.gamesCount
}

// CardsLeft returns how many cards remain in the shoe
func (t *Table) CardsLeft() int {
	return t.deck.CardsLeft()
}

// IsGameEnded returns true once the dealer's hand reached a terminal state
func (t *Table) IsGameEnded() bool {
	return IsEndState(t.dealer.Hand.State)
}

// IsGameStarted returns true once the opening cards have been dealt
func (t *Table) IsGameStarted() bool {
	return len(t.dealer.Hand.Cards) > 0
}

// BetsArePlaced returns true if every seated player has a non-zero bet on
// their current hand. An empty table never has its bets placed.
func (t *Table) BetsArePlaced() bool {
	if len(t.players) == 0 {
		return false
	}

	for _, player := range t.players {
		if player.GetCurrentHand().Bet == 0 {
			return false
		}
	}

	return true
}

// GetCurrentMovingPlayer returns the player whose hand is acting, or nil
func (t *Table) GetCurrentMovingPlayer() *Player {
	for _, player := range t.players {
		if player.GetCurrentHand().State == StateMoving {
			return player
		}
	}

	return nil
}

// AddPlayer seats a player at the end of the turn order
func (t *Table) AddPlayer(player *Player) error {
	if len(t.players) >= t.options.MaxPlayers {
		return ErrTableFull
	}

	t.players = append(t.players, player)
	t.logger.WithField("player", player.Name).Debug("player joined")
	t.emit(TopicPlayerJoined, player)
	return nil
}

// RemovePlayer unseats a player. Removal is the only player destructor.
func (t *Table) RemovePlayer(player *Player, kicked bool) {
	for i, p := range t.players {
		if p != player {
			continue
		}

		t.players = append(t.players[:i], t.players[i+1:]...)
		if kicked {
			t.logger.WithField("player", player.Name).Debug("player kicked")
			t.emit(TopicPlayerKicked, player)
			return
		}

		t.logger.WithField("player", player.Name).Debug("player quit")
		t.emit(TopicPlayerQuit, player)
		return
	}
}

// ResetGame discards all hands, kicks bankrupt players, and applies the
// reshuffle policy. It is the only way out of the ended state.
func (t *Table) ResetGame() {
	t.dealer.ResetHand()

	players := make([]*Player, len(t.players))
	copy(players, t.players)
	for _, player := range players {
		player.ResetHands()
		if player.Chips <= 0 {
			t.RemovePlayer(player, true)
		}
	}

	t.updateDeck()
	t.emit(TopicGameReset, nil)
}

// updateDeck rebuilds and reshuffles the shoe when playing a single pack or
// when the remaining cards fall below the reshuffle threshold. The table's
// seeded generator drives the shuffle, so the order is reproducible.
func (t *Table) updateDeck() {
	if t.options.DecksCount == 1 || t.deck.CardsLeft() < t.options.ReshuffleThreshold {
		t.deck.Rebuild()
		t.deck.Shuffle(t.rand)
		t.logger.WithField("cards", t.deck.CardsLeft()).Debug("shoe reshuffled")
	}
}

func (t *Table) dealToHand(hand *Hand, count int) error {
	for i := 0; i < count; i++ {
		card, err := t.deck.Draw()
		if err != nil {
			return err
		}

		hand.Cards.AddCard(card)
	}

	return nil
}

// Update advances the table by at most one move. It is the single per-tick
// driver: the host calls it repeatedly to progress a round.
func (t *Table) Update() error {
	if t.IsGameEnded() {
		return ErrGameEnded
	}

	if t.BetsArePlaced() && !t.IsGameStarted() {
		return t.startNewGame()
	}

	for idx, player := range t.players {
		hand := player.GetCurrentHand()
		if hand.State != StateMoving {
			continue
		}

		if err := t.processMove(player, hand); err != nil {
			return err
		}

		hand = player.GetCurrentHand()
		if hand.State != StateEnough && hand.State != StateEvenMoney {
			return nil
		}

		// seat is done; pass control to the next seat or the dealer
		if idx+1 < len(t.players) {
			t.players[idx+1].hands[0].State = StateMoving
		} else {
			t.dealer.Hand.State = StateMoving
		}

		return nil
	}

	if t.dealer.Hand.State != StateMoving {
		return nil
	}

	t.dealer.SetMove(t.dealer.NextMove())
	if err := t.processMove(t.dealer, t.dealer.Hand); err != nil {
		return err
	}

	if t.dealer.Hand.State != StateEnough {
		return nil
	}

	t.setEndResults()
	t.emit(TopicGameEnded, nil)
	return nil
}

// startNewGame deals the opening two cards to every seat and hands control
// to the first player
func (t *Table) startNewGame() error {
	for _, player := range t.players {
		if err := t.dealToHand(player.GetCurrentHand(), 2); err != nil {
			return err
		}
	}

	t.players[0].GetCurrentHand().State = StateMoving
	if err := t.dealToHand(t.dealer.Hand, 2); err != nil {
		return err
	}

	t.gamesCount++
	t.logger.WithField("game", t.gamesCount).Debug("game started")
	t.emit(TopicGameStarted, nil)
	return nil
}

// processMove consumes the actor's pending move and applies it to the hand.
// A busted hand or an empty intent is a no-op; the host supplies a move each
// tick while a hand is acting.
func (t *Table) processMove(actor participant, hand *Hand) error {
	move := actor.makeMove()

	if hand.IsBusted() || move == MoveNone {
		return nil
	}

	switch move {
	case MoveStand:
		hand.State = StateEnough
	case MoveHit:
		if err := t.dealToHand(hand, 1); err != nil {
			return err
		}

		if hand.IsBusted() {
			hand.State = StateEnough
		}
	}

	player, ok := actor.(*Player)
	if !ok {
		// the dealer only ever hits or stands
		return nil
	}

	switch move {
	case MoveDouble:
		if !player.CanDouble() {
			return &PlayerActionError{Name: player.Name, Action: "double"}
		}

		if err := t.dealToHand(hand, 1); err != nil {
			return err
		}

		hand.State = StateEnough
		if err := player.PlaceBet(hand, hand.Bet); err != nil {
			return err
		}
	case MoveSplit:
		if !player.CanSplit(t.options.MaxSplits) {
			return &PlayerActionError{Name: player.Name, Action: "split"}
		}

		if err := player.Split(); err != nil {
			return err
		}
	case MoveInsurance:
		if !player.CanGetInsurance(t.dealer) {
			return &PlayerActionError{Name: player.Name, Action: "insurance"}
		}

		if err := player.ApplyInsurance(); err != nil {
			return err
		}
	case MoveEvenMoney:
		if !player.CanEvenMoney(t.dealer) {
			return &PlayerActionError{Name: player.Name, Action: "even money"}
		}

		hand.State = StateEvenMoney
	}

	// let a freshly split hand act without waiting a full extra tick
	if next := player.GetCurrentHand(); next.State == StateWait {
		next.State = StateMoving
	}

	return nil
}

// setPlayerHandResult marks a player hand win/lose/push against the dealer.
// Even-money hands were settled when the choice was made.
func (t *Table) setPlayerHandResult(hand *Hand) {
	if hand.State == StateEvenMoney {
		return
	}

	state := StateLose

	dealerBusted := t.dealer.Hand.IsBusted()
	handBusted := hand.IsBusted()

	dealerScore := t.dealer.Hand.Score()
	handScore := hand.Score()

	if dealerBusted && handBusted && handScore < dealerScore {
		state = StateWin
	} else if dealerBusted && !handBusted {
		state = StateWin
	} else if !dealerBusted && !handBusted {
		if handScore > dealerScore {
			state = StateWin
		} else if handScore == dealerScore {
			state = StatePush
		}
	}

	hand.State = state
}

// setEndResults settles every player hand and insurance stake against the
// dealer, then marks the dealer's hand from its own balance delta.
func (t *Table) setEndResults() {
	dealerChipsBefore := t.dealer.Chips

	for _, player := range t.players {
		for _, hand := range player.hands {
			reward := hand.Bet
			t.setPlayerHandResult(hand)

			if hand.State == StateWin || hand.State == StateEvenMoney {
				if hand.IsBlackjack() && hand.State != StateEvenMoney {
					// 3:2 on twenty-one
					reward += hand.Bet / 2
				}

				GiveChips(t.dealer, player, reward)
				player.Chips += hand.Bet
			} else if hand.State == StatePush {
				player.Chips += hand.Bet
			} else if hand.State == StateLose {
				t.dealer.Chips += hand.Bet
			}
		}

		if player.Insurance == 0 {
			continue
		}

		half := player.Insurance / 2
		if t.dealer.Hand.IsBlackjack() {
			GiveChips(t.dealer, player, player.Insurance-half)
			player.Chips += half
		} else {
			t.dealer.Chips += half
		}
	}

	if dealerChipsBefore < t.dealer.Chips {
		t.dealer.Hand.State = StateWin
	} else if dealerChipsBefore > t.dealer.Chips {
		t.dealer.Hand.State = StateLose
	} else {
		t.dealer.Hand.State = StatePush
	}
}
